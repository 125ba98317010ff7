package web_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/junaway/serverless-stack/pkg/api/web"
	"github.com/junaway/serverless-stack/pkg/metrics/testmetrics"
)

var _ = Describe("MetricsMiddleware", func() {
	var (
		statter *testmetrics.Statter
		router  *mux.Router
	)

	BeforeEach(func() {
		statter = testmetrics.NewStatter()

		router = mux.NewRouter()
		router.Use(web.MetricsMiddleware(statter))
		router.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}).Name("OK")
		router.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}).Name("Boom")
	})

	It("counts and times requests by route name", func() {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ok", nil))

		incCalls := statter.IncCalls()
		Expect(incCalls).To(HaveLen(1))
		Expect(incCalls[0].Metric).To(Equal("stack.api.count.OK"))
		Expect(incCalls[0].Value).To(Equal(int64(1)))

		timingCalls := statter.TimingDurationCalls()
		Expect(timingCalls).To(HaveLen(1))
		Expect(timingCalls[0].Metric).To(Equal("stack.api.duration.OK"))
		Expect(timingCalls[0].Value).To(BeNumerically(">", 0))
	})

	It("reports success for responses below 500", func() {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ok", nil))

		gaugeCalls := statter.GaugeCalls()
		Expect(gaugeCalls).To(HaveLen(1))
		Expect(gaugeCalls[0].Metric).To(Equal("stack.api.success.OK"))
		Expect(gaugeCalls[0].Value).To(Equal(int64(1)))
	})

	It("reports failure for 5xx responses", func() {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

		gaugeCalls := statter.GaugeCalls()
		Expect(gaugeCalls).To(HaveLen(1))
		Expect(gaugeCalls[0].Metric).To(Equal("stack.api.success.Boom"))
		Expect(gaugeCalls[0].Value).To(Equal(int64(0)))
	})
})
