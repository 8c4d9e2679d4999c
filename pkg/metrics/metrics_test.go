package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))
			So(manager, ShouldNotBeNil)
			So(manager.namespace, ShouldEqual, "mvp")
			So(manager.enabled, ShouldBeTrue)
		})

		Convey("When creating with a custom namespace", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("league"),
				WithPrometheusRegistry(registry),
			)
			manager.RecordRecordLoaded()

			Convey("Then metric names should start with it", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "league_ranking_records_loaded_total")
			})
		})

		Convey("When an empty namespace is given", func() {
			manager := NewManager(
				WithNamespace(""),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "mvp")
				So(manager.subsystem, ShouldEqual, "ranking")
				So(manager.histogramBuckets, ShouldNotBeEmpty)
			})
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given the global manager reconfigured", t, func() {
		Configure(WithNamespace("league"), WithMetricsEnabled(false))
		defer Configure()

		Convey("Then the registry should be fresh and recording off", func() {
			RecordRecordLoaded()
			So(globalManager.enabled, ShouldBeFalse)
			So(testutil.ToFloat64(globalManager.recordsLoaded), ShouldEqual, 0)

			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
			for _, f := range families {
				So(f.GetName(), ShouldStartWith, "league_ranking_")
			}
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When pipeline metrics are recorded", func() {
			m.RecordRecordLoaded()
			m.RecordRecordLoaded()
			m.RecordRecordEvaluated()
			m.UpdateRosterSize(5)
			m.UpdatePlayerScore("Nikola Jokic", 36)
			m.RecordPipelineRun()
			m.RecordEvaluationLatency(0.02)

			Convey("Then the collectors should hold the values", func() {
				So(testutil.ToFloat64(m.recordsLoaded), ShouldEqual, 2)
				So(testutil.ToFloat64(m.recordsEvaluated), ShouldEqual, 1)
				So(testutil.ToFloat64(m.rosterSize), ShouldEqual, 5)
				So(testutil.ToFloat64(m.playerScore.WithLabelValues("Nikola Jokic")), ShouldEqual, 36)
				So(testutil.ToFloat64(m.pipelineRuns), ShouldEqual, 1)
			})

			Convey("And resetting player scores should clear the vector", func() {
				m.ResetPlayerScores()
				So(testutil.CollectAndCount(m.playerScore), ShouldEqual, 0)
			})
		})

		Convey("When query and HTTP metrics are recorded", func() {
			m.RecordQuery("mvp")
			m.RecordQuery("mvp")
			m.RecordQueryError("leaderboard")
			m.RecordHTTPRequest("mvp", "GET", "200")
			m.RecordHTTPRequestDuration("mvp", "GET", "200", 1.5)

			Convey("Then counts should be split by label", func() {
				So(testutil.ToFloat64(m.rankingQueries.WithLabelValues("mvp")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.rankingErrors.WithLabelValues("leaderboard")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("mvp", "GET", "200")), ShouldEqual, 1)
			})
		})

		Convey("When system metrics are updated", func() {
			m.UpdateSystemMemoryUsage(1024)
			m.UpdateSystemGoroutineCount(12)
			So(testutil.ToFloat64(m.systemMemoryUsage), ShouldEqual, 1024)
			So(testutil.ToFloat64(m.systemGoroutineCount), ShouldEqual, 12)
		})
	})

	Convey("Given a disabled manager", t, func() {
		m := NewManager(WithMetricsEnabled(false), WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("Then recording should leave collectors untouched", func() {
			m.RecordRecordLoaded()
			m.UpdateRosterSize(3)
			So(testutil.ToFloat64(m.recordsLoaded), ShouldEqual, 0)
			So(testutil.ToFloat64(m.rosterSize), ShouldEqual, 0)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then package-level helpers should not panic", func() {
			So(func() {
				RecordRecordLoaded()
				RecordRecordEvaluated()
				RecordEvaluationLatency(0.01)
				UpdateRosterSize(5)
				UpdatePlayerScore("Luka Doncic", 33)
				ResetPlayerScores()
				RecordPipelineRun()
				RecordQuery("leaderboard")
				RecordQueryError("player")
				RecordHTTPRequest("leaderboard", "GET", "200")
				RecordHTTPRequestDuration("leaderboard", "GET", "200", 2)
				UpdateSystemMemoryUsage(2048)
				UpdateSystemGoroutineCount(4)
			}, ShouldNotPanic)
		})

		Convey("Then the registry should expose the collectors", func() {
			RecordRecordLoaded()
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(families, ShouldNotBeEmpty)
		})
	})
}
