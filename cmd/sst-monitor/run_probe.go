package main

import (
	"context"
	"time"

	"github.com/junaway/serverless-stack/cmd"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/monitor"
)

// RunProbeWithFrequency drives probe cycles forever. Every frequency tick it
// runs a full cycle and reports the outcome; every histogram refresh tick it
// rotates the timing window and emits the latency gauges.
func RunProbeWithFrequency(
	ctx context.Context,
	logger logx.Logger,
	probe cmd.Probe,
	statter monitor.ProbeStatter,
	frequency time.Duration,
	timeout time.Duration,
	cleanupTimeout time.Duration,
	maxLatency time.Duration,
	histogramRefresh time.Duration,
) {
	probeTicker := time.NewTicker(frequency)
	defer probeTicker.Stop()

	histogramTicker := time.NewTicker(histogramRefresh)
	defer histogramTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(finished)
			return
		case <-histogramTicker.C:
			statter.Rotate()
		case <-probeTicker.C:
			cmd.RecordProbeResults(ctx, logger, probe, timeout, cleanupTimeout, statter, maxLatency)
			statter.SendStats(logger.WithName("metrics"))
		}
	}
}
