package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording ingest metrics", func() {
			Convey("Then it should record processed observations", func() {
				So(func() {
					RecordObservationProcessed()
					RecordObservationProcessed()
				}, ShouldNotPanic)
			})

			Convey("And it should record duplicate observations", func() {
				So(func() {
					RecordObservationDuplicate()
				}, ShouldNotPanic)
			})

			Convey("And it should record assessment latency", func() {
				So(func() {
					RecordAssessmentLatency(12.0)
					RecordAssessmentLatency(30.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording engine output metrics", func() {
			So(func() {
				RecordReportFinalized()
				RecordReportScored()
				RecordPredictionResolved(3)
				RecordHypothesisOpened()
				RecordHypothesisTerminal("confirmed")
				RecordHypothesisTerminal("debunked")
			}, ShouldNotPanic)
		})

		Convey("When recording operational metrics", func() {
			So(func() {
				UpdateQueueSize(1000)
				UpdateQueueCapacity(10000)
				UpdateQueueUtilization(0.1)
				UpdateWorkerCount(8)
				UpdateWorkerActiveCount(8)
				UpdateTotalScouts(12)
				RecordQueueEnqueue()
				RecordQueueDequeue()
				RecordQueueEnqueueError()
				RecordQueueProcessingLatency(2.0)
				RecordWorkerProcessingLatency(5.0)
				RecordWorkerError()
				RecordStoreUpdateLatency(1.0)
				RecordStoreQueryLatency(0.5)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("/observations", "POST", "202")
				RecordHTTPRequestDuration("/observations", "POST", "202", 3.5)
				RecordErrorByComponent("api", "bad_request")
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("Then it should be available for the metrics endpoint", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
