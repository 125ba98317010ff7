package recording

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/junaway/serverless-stack/pkg/monitor"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

//go:generate counterfeiter . DurationRecorder

type DurationRecorder interface {
	Observe(duration time.Duration) error
}

// Client wraps a monitor.Client and feeds the duration of every
// successful call into a DurationRecorder.
type Client struct {
	client   monitor.Client
	recorder DurationRecorder
	clock    clock.Clock
}

func NewClient(client monitor.Client, recorder DurationRecorder, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Client{
		client:   client,
		recorder: recorder,
		clock:    o.clock,
	}
}

func (c *Client) CreateRole(ctx context.Context, name string, statements ...permissions.Statement) (permissions.ExecutionRole, error) {
	start := c.clock.Now()
	role, err := c.client.CreateRole(ctx, name, statements...)
	if err != nil {
		return permissions.ExecutionRole{}, err
	}

	if err := c.recorder.Observe(c.clock.Since(start)); err != nil {
		return role, FailedToObserveDurationError{Err: err}
	}

	return role, nil
}

func (c *Client) DeleteRole(ctx context.Context, name string) error {
	start := c.clock.Now()
	if err := c.client.DeleteRole(ctx, name); err != nil {
		return err
	}

	if err := c.recorder.Observe(c.clock.Since(start)); err != nil {
		return FailedToObserveDurationError{Err: err}
	}

	return nil
}

func (c *Client) HasAccess(ctx context.Context, roleName, action, resource string) (bool, error) {
	start := c.clock.Now()
	hasAccess, err := c.client.HasAccess(ctx, roleName, action, resource)
	if err != nil {
		return false, err
	}

	if err := c.recorder.Observe(c.clock.Since(start)); err != nil {
		return false, FailedToObserveDurationError{Err: err}
	}

	return hasAccess, nil
}
