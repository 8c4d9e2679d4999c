package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/mvp/internal/domain/model"
	types "github.com/okian/mvp/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewEntry(t *testing.T) {
	Convey("Given a scored record", t, func() {
		rec := model.New("Luka Doncic", model.Stats{
			PointsPerGame:   33.9,
			AssistsPerGame:  9.8,
			ReboundsPerGame: 9.2,
			TeamRank:        6,
		})
		rec.ID = "rec-1"
		rec.Image = "Luka Donic.jpg"
		So(rec.Resolve(33), ShouldBeNil)

		Convey("When it is flattened at position 2", func() {
			entry := types.NewEntry(2, rec)

			Convey("Then every field should be carried over", func() {
				So(entry.Rank, ShouldEqual, 2)
				So(entry.ID, ShouldEqual, "rec-1")
				So(entry.Name, ShouldEqual, "Luka Doncic")
				So(entry.Score, ShouldEqual, 33)
				So(entry.PointsPerGame, ShouldEqual, 33.9)
				So(entry.AssistsPerGame, ShouldEqual, 9.8)
				So(entry.ReboundsPerGame, ShouldEqual, 9.2)
				So(entry.TeamRank, ShouldEqual, 6)
				So(entry.PastMVPCount, ShouldEqual, 0)
				So(entry.Image, ShouldEqual, "Luka Donic.jpg")
			})
		})
	})
}

func TestEntryJSONShape(t *testing.T) {
	Convey("Given an entry without an image", t, func() {
		entry := types.Entry{Rank: 1, Name: "Nikola Jokic", Score: 36}

		Convey("When it is encoded", func() {
			raw, err := json.Marshal(entry)
			So(err, ShouldBeNil)

			Convey("Then it should use snake_case keys and omit the image", func() {
				s := string(raw)
				So(s, ShouldContainSubstring, `"rank":1`)
				So(s, ShouldContainSubstring, `"score":36`)
				So(s, ShouldContainSubstring, `"past_mvp_count":0`)
				So(s, ShouldNotContainSubstring, "image")
			})
		})
	})
}
