package repos

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/logx"
)

type HasAccessQuery struct {
	RoleName string
	Action   string
	Resource string
}

type ListAllowedResourcesQuery struct {
	RoleName string
	Action   string
}

//go:generate counterfeiter . AccessRepo

type AccessRepo interface {
	HasAccess(
		ctx context.Context,
		logger logx.Logger,
		query HasAccessQuery,
	) (bool, error)

	ListAllowedResources(
		ctx context.Context,
		logger logx.Logger,
		query ListAllowedResourcesQuery,
	) ([]string, error)
}
