package cmd

import (
	"context"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/monitor"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Probe

type Probe interface {
	Cleanup(
		ctx context.Context,
		cleanupTimeout time.Duration,
		logger logx.Logger,
		suffix string,
	) ([]monitor.LabeledDuration, error)

	Setup(
		ctx context.Context,
		logger logx.Logger,
		suffix string,
	) ([]monitor.LabeledDuration, error)

	Run(
		ctx context.Context,
		logger logx.Logger,
		suffix string,
	) (bool, []monitor.LabeledDuration, error)
}

// RunProbe provisions a uniquely named probe role, exercises the registry
// with queries that must and must not be allowed, and tears the role down
// again. The returned durations cover each individual query.
func RunProbe(
	ctx context.Context,
	logger logx.Logger,
	probe Probe,
	timeout time.Duration,
	cleanupTimeout time.Duration,
) (bool, []monitor.LabeledDuration, error) {
	u := uuid.NewV4()
	suffix := u.String()

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		cleanupLogger := logger.WithName("cleanup")
		_, err := probe.Cleanup(ctx, cleanupTimeout, cleanupLogger, suffix)
		if err != nil {
			cleanupLogger.Error(failedToCleanupProbe, err)
		}
	}()

	setupLogger := logger.WithName("setup")
	setupDurations, err := probe.Setup(cctx, setupLogger, suffix)
	if err != nil {
		setupLogger.Error(failedToSetupProbe, err)
		return false, nil, err
	}

	runLogger := logger.WithName("run")
	correct, runDurations, err := probe.Run(cctx, runLogger, suffix)
	durations := append(setupDurations, runDurations...)
	if err != nil {
		runLogger.Error(failedToRunProbe, err)
		return false, durations, err
	}

	return correct, durations, nil
}

// RecordProbeResults feeds the outcome of a single probe cycle to the
// statter: a failed or incorrect cycle is reported as such, and every query
// duration is checked against maxLatency.
func RecordProbeResults(
	ctx context.Context,
	logger logx.Logger,
	probe Probe,
	timeout time.Duration,
	cleanupTimeout time.Duration,
	statter monitor.ProbeStatter,
	maxLatency time.Duration,
) {
	metricsLogger := logger.WithName("metrics")

	correct, durations, err := RunProbe(ctx, logger, probe, timeout, cleanupTimeout)
	switch {
	case err != nil:
		statter.SendFailedProbe(metricsLogger)
	case !correct:
		statter.SendIncorrectProbe(metricsLogger)
	default:
		exceededMaxLatency := false

		for _, duration := range durations {
			statter.RecordProbeDuration(metricsLogger, duration.Duration)
			if duration.Duration > maxLatency {
				logger.Error(probeExceededMaxLatency, monitor.ExceededMaxLatencyError{}, logx.Data{
					Key:   "label",
					Value: duration.Label,
				})
				exceededMaxLatency = true
			}
		}

		if exceededMaxLatency {
			statter.SendFailedProbe(metricsLogger)
		} else {
			statter.SendCorrectProbe(metricsLogger)
		}
	}
}
