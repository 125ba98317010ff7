// Package statsdx adapts a statsd client to the metrics.Statter interface,
// logging send failures instead of surfacing them to callers.
package statsdx

import (
	"time"

	"github.com/cactus/go-statsd-client/statsd"

	"github.com/junaway/serverless-stack/pkg/logx"
)

const failureMessage = "failed-to-send-metric"

type Statter struct {
	statsdClient statsd.Statter
	logger       logx.Logger
}

func NewStatter(logger logx.Logger, statsdClient statsd.Statter) *Statter {
	return &Statter{
		statsdClient: statsdClient,
		logger:       logger,
	}
}

func (s *Statter) Inc(metric string, value int64, rate float32) error {
	if err := s.statsdClient.Inc(metric, value, rate); err != nil {
		s.logError(metric, value, err)
	}
	return nil
}

func (s *Statter) Gauge(metric string, value int64, rate float32) error {
	if err := s.statsdClient.Gauge(metric, value, rate); err != nil {
		s.logError(metric, value, err)
	}
	return nil
}

func (s *Statter) TimingDuration(metric string, value time.Duration, rate float32) error {
	if err := s.statsdClient.TimingDuration(metric, value, rate); err != nil {
		s.logError(metric, int64(value), err)
	}
	return nil
}

func (s *Statter) logError(metric string, value int64, err error) {
	s.logger.Error(failureMessage, err, logx.Data{
		Key:   "metric",
		Value: metric,
	}, logx.Data{
		Key:   "value",
		Value: value,
	})
}
