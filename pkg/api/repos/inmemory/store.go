package inmemory

import (
	"sync"

	"github.com/junaway/serverless-stack/pkg/permissions"
)

// InMemoryStore serves concurrent HTTP handlers; every repo method takes
// the lock.
type InMemoryStore struct {
	lock       sync.RWMutex
	roles      map[string]permissions.ExecutionRole
	statements map[string][]permissions.Statement
}

func NewStore() *InMemoryStore {
	return &InMemoryStore{
		roles:      make(map[string]permissions.ExecutionRole),
		statements: make(map[string][]permissions.Statement),
	}
}
