package repository_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/okian/mvp/internal/adapters/repository"
	"github.com/okian/mvp/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("rec-%d", n)
	}
}

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(repository.WithCapacity(5), repository.WithIDGenerator(sequentialIDs()))

		Convey("Then it should hold nothing", func() {
			So(store.Len(ctx), ShouldEqual, 0)
			So(store.All(ctx), ShouldBeEmpty)
		})

		Convey("When records are added", func() {
			names := []string{"Nikola Jokic", "Luka Doncic", "Jayson Tatum"}
			added := make([]*model.Record, 0, len(names))
			for _, n := range names {
				r := model.New(n, model.Stats{TeamRank: 1})
				So(store.Add(ctx, r), ShouldBeNil)
				added = append(added, r)
			}

			Convey("Then All should return them in insertion order", func() {
				all := store.All(ctx)
				So(all, ShouldHaveLength, 3)
				for i := range added {
					So(all[i], ShouldPointTo, added[i])
				}
			})

			Convey("Then ids should be assigned", func() {
				So(added[0].ID, ShouldEqual, "rec-1")
				So(added[2].ID, ShouldEqual, "rec-3")
			})

			Convey("Then Get should return the stored pointer", func() {
				r, err := store.Get(ctx, "rec-2")
				So(err, ShouldBeNil)
				So(r, ShouldPointTo, added[1])
			})

			Convey("Then mutations through All should be visible to later reads", func() {
				So(store.All(ctx)[0].Resolve(36), ShouldBeNil)
				r, err := store.Get(ctx, "rec-1")
				So(err, ShouldBeNil)
				So(r.Score, ShouldEqual, 36)
			})

			Convey("Then reordering the returned slice should not affect the store", func() {
				all := store.All(ctx)
				all[0], all[2] = all[2], all[0]
				So(store.All(ctx)[0].Name, ShouldEqual, "Nikola Jokic")
			})

			Convey("And after a reset the store should be empty", func() {
				store.Reset(ctx)
				So(store.Len(ctx), ShouldEqual, 0)
				_, err := store.Get(ctx, "rec-1")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the same name is added twice", func() {
			So(store.Add(ctx, model.New("Twin", model.Stats{})), ShouldBeNil)
			So(store.Add(ctx, model.New("Twin", model.Stats{})), ShouldBeNil)

			Convey("Then both should be kept", func() {
				So(store.Len(ctx), ShouldEqual, 2)
			})
		})

		Convey("When a record with a preset id is added", func() {
			r := model.New("Preset", model.Stats{})
			r.ID = "fixed"
			So(store.Add(ctx, r), ShouldBeNil)

			Convey("Then the id should be kept", func() {
				got, err := store.Get(ctx, "fixed")
				So(err, ShouldBeNil)
				So(got, ShouldPointTo, r)
			})

			Convey("And reusing it should be rejected as invalid", func() {
				dup := model.New("Other", model.Stats{})
				dup.ID = "fixed"
				err := store.Add(ctx, dup)
				So(errors.Is(err, model.ErrInvalidRecord), ShouldBeTrue)
				So(store.Len(ctx), ShouldEqual, 1)
			})
		})

		Convey("When a malformed record is added", func() {
			err := store.Add(ctx, model.New("Broken", model.Stats{PointsPerGame: math.NaN()}))

			Convey("Then it should fail with a validation error and store nothing", func() {
				var verr *model.ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(verr.Field, ShouldEqual, "points_per_game")
				So(store.Len(ctx), ShouldEqual, 0)
			})
		})

		Convey("When an unknown id is requested", func() {
			_, err := store.Get(ctx, "missing")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestMemoryStore_DefaultIDs(t *testing.T) {
	Convey("Given a store with the default id generator", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		a := model.New("A", model.Stats{})
		b := model.New("B", model.Stats{})
		So(store.Add(ctx, a), ShouldBeNil)
		So(store.Add(ctx, b), ShouldBeNil)

		Convey("Then ids should be unique UUIDs", func() {
			So(a.ID, ShouldHaveLength, 36)
			So(a.ID, ShouldNotEqual, b.ID)
		})
	})
}
