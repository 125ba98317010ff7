package monitor

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"

	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

const (
	ProbeRoleName = "system.probe"

	ProbeAttachedAction   = "system:ProbeAttachedAction"
	ProbeAttachedResource = "system.probe.attached-statement.resource"

	ProbeUnattachedAction   = "system:ProbeUnattachedAction"
	ProbeUnattachedResource = "system.probe.unattached-statement.resource"
)

//go:generate counterfeiter . Client

type Client interface {
	CreateRole(ctx context.Context, name string, statements ...permissions.Statement) (permissions.ExecutionRole, error)
	DeleteRole(ctx context.Context, name string) error
	HasAccess(ctx context.Context, roleName, action, resource string) (bool, error)
}

type Probe struct {
	client Client

	timeout        time.Duration
	cleanupTimeout time.Duration
	maxLatency     time.Duration
	clock          clock.Clock
}

type LabeledDuration struct {
	Label    string
	Duration time.Duration
}

func NewProbe(client Client, opts ...Option) *Probe {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Probe{
		client:         client,
		timeout:        o.timeout,
		cleanupTimeout: o.cleanupTimeout,
		maxLatency:     o.maxLatency,
		clock:          o.clock,
	}
}

// Timeout bounds a single setup or run phase.
func (p *Probe) Timeout() time.Duration {
	return p.timeout
}

// CleanupTimeout bounds the teardown of a probe role.
func (p *Probe) CleanupTimeout() time.Duration {
	return p.cleanupTimeout
}

// MaxLatency is the slowest acceptable response for a single query.
func (p *Probe) MaxLatency() time.Duration {
	return p.maxLatency
}

func probeRoleName(uniqueSuffix string) string {
	return ProbeRoleName + "." + uniqueSuffix
}

func (p *Probe) Setup(ctx context.Context, logger logx.Logger, uniqueSuffix string) ([]LabeledDuration, error) {
	type setupResult struct {
		Error     error
		Durations []LabeledDuration
	}

	logger.Debug(starting)
	doneChan := make(chan setupResult)
	defer logger.Debug(finished)

	go func() {
		duration, err := p.setupCreateRole(ctx, logger, uniqueSuffix)
		doneChan <- setupResult{err, []LabeledDuration{duration}}
	}()

	select {
	case <-ctx.Done():
		return []LabeledDuration{}, ctx.Err()
	case result := <-doneChan:
		return result.Durations, result.Error
	}
}

func (p *Probe) setupCreateRole(ctx context.Context, logger logx.Logger, uniqueSuffix string) (LabeledDuration, error) {
	roleName := probeRoleName(uniqueSuffix)

	statement := permissions.Statement{
		Effect:    permissions.Allow,
		Actions:   []string{ProbeAttachedAction},
		Resources: []string{ProbeAttachedResource},
	}

	start := p.clock.Now()
	_, err := p.client.CreateRole(ctx, roleName, statement)
	duration := p.clock.Since(start)

	if err != nil && err != permissions.ErrRoleAlreadyExists {
		logger.Error(failedToCreateRole, err, logx.Data{
			Key:   "role.name",
			Value: roleName,
		})

		return LabeledDuration{}, err
	}

	return LabeledDuration{Label: "CreateRole", Duration: duration}, nil
}

func (p *Probe) Cleanup(ctx context.Context, cleanupTimeout time.Duration, logger logx.Logger, uniqueSuffix string) ([]LabeledDuration, error) {
	type cleanupResult struct {
		Error     error
		Durations []LabeledDuration
	}

	doneChan := make(chan cleanupResult)
	cleanupTimeoutTimer := p.clock.NewTimer(cleanupTimeout)
	defer cleanupTimeoutTimer.Stop()

	go func() {
		logger.Debug(starting)
		defer logger.Debug(finished)

		roleName := probeRoleName(uniqueSuffix)

		start := p.clock.Now()
		err := p.client.DeleteRole(ctx, roleName)
		duration := p.clock.Since(start)

		result := cleanupResult{
			Durations: []LabeledDuration{{Label: "DeleteRole", Duration: duration}},
		}

		if err != nil && err != permissions.ErrRoleNotFound {
			logger.Error(failedToDeleteRole, err, logx.Data{
				Key:   "role.name",
				Value: roleName,
			})
			result.Error = err
		}

		doneChan <- result
	}()

	select {
	case result := <-doneChan:
		select {
		case <-ctx.Done():
			return []LabeledDuration{}, ctx.Err()
		default:
			return result.Durations, result.Error
		}
	case <-cleanupTimeoutTimer.C():
		return []LabeledDuration{}, context.DeadlineExceeded
	}
}

func (p *Probe) Run(
	ctx context.Context,
	logger logx.Logger,
	uniqueSuffix string,
) (correct bool, durations []LabeledDuration, err error) {
	logger.Debug(starting)
	defer logger.Debug(finished)

	type result struct {
		Correct   bool
		Durations []LabeledDuration
		Err       error
	}

	doneChan := make(chan result)
	go func() {
		allowed, duration, runErr := p.runAttachedStatement(ctx, logger, uniqueSuffix)
		r := result{}
		r.Durations = append(r.Durations, duration)
		if runErr != nil || !allowed {
			r.Err = runErr
			r.Correct = allowed
			doneChan <- r
			return
		}

		allowed, duration, runErr = p.runUnattachedStatement(ctx, logger, uniqueSuffix)
		r.Durations = append(r.Durations, duration)
		r.Err = runErr
		r.Correct = allowed
		doneChan <- r
	}()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	case result := <-doneChan:
		correct = result.Correct
		durations = result.Durations
		err = result.Err
		return
	}
}

func (p *Probe) runAttachedStatement(
	ctx context.Context,
	logger logx.Logger,
	uniqueSuffix string,
) (bool, LabeledDuration, error) {
	roleName := probeRoleName(uniqueSuffix)
	logger = logger.WithName("has-attached-access").WithData(logx.Data{
		Key:   "role.name",
		Value: roleName,
	}, logx.Data{
		Key:   "statement.action",
		Value: ProbeAttachedAction,
	}, logx.Data{
		Key:   "statement.resource",
		Value: ProbeAttachedResource,
	})

	start := p.clock.Now()
	hasAccess, err := p.client.HasAccess(ctx, roleName, ProbeAttachedAction, ProbeAttachedResource)
	duration := p.clock.Since(start)

	if err != nil {
		logger.Error(failedToCheckAccess, err)
		return false, LabeledDuration{}, err
	}

	if !hasAccess {
		logger.Info(incorrectResponse, logx.Data{
			Key:   "expected",
			Value: "true",
		}, logx.Data{
			Key:   "got",
			Value: "false",
		})
		return false, LabeledDuration{}, nil
	}

	return true, LabeledDuration{Label: "HasAccess", Duration: duration}, nil
}

func (p *Probe) runUnattachedStatement(
	ctx context.Context,
	logger logx.Logger,
	uniqueSuffix string,
) (bool, LabeledDuration, error) {
	roleName := probeRoleName(uniqueSuffix)
	logger = logger.WithName("has-unattached-access").WithData(logx.Data{
		Key:   "role.name",
		Value: roleName,
	}, logx.Data{
		Key:   "statement.action",
		Value: ProbeUnattachedAction,
	}, logx.Data{
		Key:   "statement.resource",
		Value: ProbeUnattachedResource,
	})

	start := p.clock.Now()
	hasAccess, err := p.client.HasAccess(ctx, roleName, ProbeUnattachedAction, ProbeUnattachedResource)
	duration := p.clock.Since(start)

	if err != nil {
		logger.Error(failedToCheckAccess, err)
		return false, LabeledDuration{}, err
	}

	if hasAccess {
		logger.Info(incorrectResponse, logx.Data{
			Key:   "expected",
			Value: "false",
		}, logx.Data{
			Key:   "got",
			Value: "true",
		})
		return false, LabeledDuration{}, nil
	}

	return true, LabeledDuration{Label: "HasAccess", Duration: duration}, nil
}
