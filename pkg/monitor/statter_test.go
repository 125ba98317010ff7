package monitor_test

import (
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/logx/lagerx"
	"github.com/junaway/serverless-stack/pkg/metrics/testmetrics"
	. "github.com/junaway/serverless-stack/pkg/monitor"
)

var _ = Describe("Statter", func() {
	var (
		fakeStatsd *testmetrics.Statter

		logger logx.Logger

		subject *Statter
	)

	BeforeEach(func() {
		fakeStatsd = testmetrics.NewStatter()
		logger = lagerx.NewLogger(lagertest.NewTestLogger("statter-test"))

		subject = &Statter{
			Statter:   fakeStatsd,
			Histogram: NewThreadSafeHistogram(5, 3),
		}
	})

	Describe("#SendFailedProbe", func() {
		It("sends a failed runs.success gauge", func() {
			subject.SendFailedProbe(logger)

			calls := fakeStatsd.GaugeCalls()
			Expect(calls).To(HaveLen(1))
			Expect(calls[0].Metric).To(Equal(MetricProbeRunsSuccess))
			Expect(calls[0].Value).To(Equal(int64(MetricFailure)))
		})
	})

	Describe("#SendIncorrectProbe", func() {
		It("sends failed runs.success and runs.correct gauges", func() {
			subject.SendIncorrectProbe(logger)

			calls := fakeStatsd.GaugeCalls()
			Expect(calls).To(HaveLen(2))
			Expect(calls[0].Metric).To(Equal(MetricProbeRunsSuccess))
			Expect(calls[0].Value).To(Equal(int64(MetricFailure)))
			Expect(calls[1].Metric).To(Equal(MetricProbeRunsCorrect))
			Expect(calls[1].Value).To(Equal(int64(MetricFailure)))
		})
	})

	Describe("#SendCorrectProbe", func() {
		It("sends successful runs.success and runs.correct gauges", func() {
			subject.SendCorrectProbe(logger)

			calls := fakeStatsd.GaugeCalls()
			Expect(calls).To(HaveLen(2))
			Expect(calls[0].Metric).To(Equal(MetricProbeRunsSuccess))
			Expect(calls[0].Value).To(Equal(int64(MetricSuccess)))
			Expect(calls[1].Metric).To(Equal(MetricProbeRunsCorrect))
			Expect(calls[1].Value).To(Equal(int64(MetricSuccess)))
		})
	})

	Describe("#SendStats", func() {
		It("sends the timing quantile and max gauges from the histogram", func() {
			subject.RecordProbeDuration(logger, 10*time.Millisecond)
			subject.RecordProbeDuration(logger, 20*time.Millisecond)

			subject.SendStats(logger)

			calls := fakeStatsd.GaugeCalls()
			Expect(calls).To(HaveLen(4))
			Expect(calls[0].Metric).To(Equal(MetricProbeTimingP90))
			Expect(calls[1].Metric).To(Equal(MetricProbeTimingP99))
			Expect(calls[2].Metric).To(Equal(MetricProbeTimingP999))
			Expect(calls[3].Metric).To(Equal(MetricProbeTimingMax))
		})
	})
})
