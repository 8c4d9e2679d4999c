package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/okian/mvp/internal/adapters/repository"
	"github.com/okian/mvp/internal/adapters/roster"
	service "github.com/okian/mvp/internal/app"
	"github.com/okian/mvp/internal/domain/model"
	"github.com/okian/mvp/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should start without a run", func() {
			So(svc, ShouldNotBeNil)
			So(svc.RunID(), ShouldBeEmpty)
			stats := svc.GetStats()
			So(stats["players"], ShouldEqual, 0)
			So(stats["ready"], ShouldEqual, false)
		})
	})
}

func TestService_Run(t *testing.T) {
	Convey("Given a service with the sample roster", t, func() {
		ctx := context.Background()
		var diag bytes.Buffer
		svc := service.New(service.WithDiagnostics(&diag))
		So(svc.Run(ctx, roster.Default()), ShouldBeNil)

		Convey("Then every player should be scored once", func() {
			So(diag.String(), ShouldEqual,
				"Player: Nikola Jokic Points: 36\n"+
					"Player: Shai Gilgeous Alexander Points: 31\n"+
					"Player: Luka Doncic Points: 33\n"+
					"Player: Giannis Antetokounmpo Points: 31\n"+
					"Player: Jayson Tatum Points: 31\n")
		})

		Convey("Then the leaderboard should be ordered with ties in roster order", func() {
			entries, err := svc.Leaderboard(ctx, 0)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 5)

			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name
				So(e.Rank, ShouldEqual, i+1)
			}
			So(names, ShouldResemble, []string{
				"Nikola Jokic", "Luka Doncic", "Shai Gilgeous Alexander", "Giannis Antetokounmpo", "Jayson Tatum",
			})
		})

		Convey("Then a limit should cut the leaderboard", func() {
			entries, err := svc.Leaderboard(ctx, 2)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)
			So(entries[1].Name, ShouldEqual, "Luka Doncic")

			entries, err = svc.Leaderboard(ctx, 50)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 5)
		})

		Convey("Then a negative limit should be rejected", func() {
			_, err := svc.Leaderboard(ctx, -1)
			So(errors.Is(err, service.ErrInvalidLimit), ShouldBeTrue)
		})

		Convey("Then the MVP should be Jokic", func() {
			mvp, err := svc.MVP(ctx)
			So(err, ShouldBeNil)
			So(mvp.Name, ShouldEqual, "Nikola Jokic")
			So(mvp.Score, ShouldEqual, 36)
			So(mvp.Rank, ShouldEqual, 1)
		})

		Convey("Then a player lookup should return its position and breakdown", func() {
			var luka *model.Record
			for _, r := range svc.Records(ctx) {
				if r.Name == "Luka Doncic" {
					luka = r
				}
			}
			So(luka, ShouldNotBeNil)

			entry, breakdown, err := svc.Player(ctx, luka.ID)
			So(err, ShouldBeNil)
			So(entry.Rank, ShouldEqual, 2)
			So(entry.Score, ShouldEqual, 33)
			So(breakdown.Total, ShouldEqual, 33)
			So(breakdown.TeamRank, ShouldEqual, 5)
		})

		Convey("Then an unknown player should not be found", func() {
			_, _, err := svc.Player(ctx, "missing")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("Then stats should describe the run", func() {
			stats := svc.GetStats()
			So(stats["runId"], ShouldEqual, svc.RunID())
			So(stats["runs"], ShouldEqual, 1)
			So(stats["players"], ShouldEqual, 5)
			So(stats["evaluated"], ShouldEqual, 5)
			So(stats["ready"], ShouldEqual, true)
			So(stats, ShouldContainKey, "evaluatedAt")
		})

		Convey("When running again", func() {
			first := svc.RunID()
			So(svc.Run(ctx, roster.Default()), ShouldBeNil)

			Convey("Then a fresh run should replace the roster", func() {
				So(svc.RunID(), ShouldNotEqual, first)
				So(svc.Records(ctx), ShouldHaveLength, 5)
				So(svc.GetStats()["runs"], ShouldEqual, 2)
			})
		})
	})
}

func TestService_Stages(t *testing.T) {
	Convey("Given a loaded but unevaluated roster", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Load(ctx, roster.Default()), ShouldBeNil)
		So(svc.RunID(), ShouldNotBeEmpty)

		Convey("Then ranking queries should be refused", func() {
			_, err := svc.Leaderboard(ctx, 0)
			So(errors.Is(err, ranking.ErrNotEvaluated), ShouldBeTrue)

			_, err = svc.MVP(ctx)
			So(errors.Is(err, ranking.ErrNotEvaluated), ShouldBeTrue)

			_, _, err = svc.Player(ctx, svc.Records(ctx)[0].ID)
			So(errors.Is(err, ranking.ErrNotEvaluated), ShouldBeTrue)
		})

		Convey("When evaluating twice", func() {
			n, err := svc.Evaluate(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 5)

			n, err = svc.Evaluate(ctx)

			Convey("Then the second pass should score nothing", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
				mvp, err := svc.MVP(ctx)
				So(err, ShouldBeNil)
				So(mvp.Score, ShouldEqual, 36)
			})
		})

		Convey("When the context is cancelled before evaluation", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			n, err := svc.Evaluate(cctx)

			Convey("Then nothing should be scored", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
				So(n, ShouldEqual, 0)
			})
		})
	})

	Convey("Given an empty roster", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Run(ctx, nil), ShouldBeNil)

		Convey("Then queries should report empty input", func() {
			_, err := svc.Leaderboard(ctx, 0)
			So(errors.Is(err, ranking.ErrEmptyInput), ShouldBeTrue)

			_, err = svc.MVP(ctx)
			So(errors.Is(err, ranking.ErrEmptyInput), ShouldBeTrue)
		})
	})

	Convey("Given a roster with an invalid record", t, func() {
		ctx := context.Background()
		svc := service.New()
		records := roster.Default()
		records[2].Name = "  "

		Convey("Then loading should fail with a validation error", func() {
			err := svc.Load(ctx, records)
			var verr *model.ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
		})
	})
}
