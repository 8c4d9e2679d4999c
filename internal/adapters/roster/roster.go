// Package roster supplies the player statistics a run starts from: the
// built-in sample roster or a YAML/JSON roster file.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/mvp/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// document is the on-disk roster shape.
type document struct {
	Players []entry `yaml:"players"`
}

// entry mirrors one player of a roster file. Pointers distinguish a missing
// statistic from a zero one.
type entry struct {
	Name     string   `yaml:"name"`
	PPG      *float64 `yaml:"ppg"`
	APG      *float64 `yaml:"apg"`
	RPG      *float64 `yaml:"rpg"`
	TeamRank *int     `yaml:"team_rank"`
	PastMVP  *int     `yaml:"past_mvp"`
	Image    string   `yaml:"image"`
}

func (e entry) record() (*model.Record, error) {
	missing := func(field string) error {
		return &model.ValidationError{Record: e.Name, Field: field, Reason: "is required"}
	}
	switch {
	case strings.TrimSpace(e.Name) == "":
		return nil, missing("name")
	case e.PPG == nil:
		return nil, missing("ppg")
	case e.APG == nil:
		return nil, missing("apg")
	case e.RPG == nil:
		return nil, missing("rpg")
	case e.TeamRank == nil:
		return nil, missing("team_rank")
	case e.PastMVP == nil:
		return nil, missing("past_mvp")
	}
	r := model.New(e.Name, model.Stats{
		PointsPerGame:   *e.PPG,
		AssistsPerGame:  *e.APG,
		ReboundsPerGame: *e.RPG,
		TeamRank:        *e.TeamRank,
		PastMVPCount:    *e.PastMVP,
	})
	r.Image = e.Image
	return r, nil
}

// Decode reads a roster document. Unknown keys, non-numeric statistics and
// missing fields are reported as *model.ValidationError.
func Decode(r io.Reader) ([]*model.Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRoster
		}
		return nil, &model.ValidationError{Field: "roster", Reason: "is malformed", Err: err}
	}
	if len(doc.Players) == 0 {
		return nil, ErrEmptyRoster
	}

	out := make([]*model.Record, 0, len(doc.Players))
	for i, e := range doc.Players {
		rec, err := e.record()
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Load reads the roster file at path.
func Load(path string) ([]*model.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	recs, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return recs, nil
}

// Resolve returns the roster at path, or the sample roster when path is empty.
func Resolve(path string) ([]*model.Record, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
