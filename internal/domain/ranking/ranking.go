// Package ranking orders scored records and picks the MVP.
package ranking

import (
	"sort"

	"github.com/okian/mvp/internal/domain/model"
	"github.com/okian/mvp/internal/domain/types"
)

// Rank returns records ordered by score, highest first. Records with equal
// scores keep their input order. The input slice is not modified; the
// returned slice shares the same record pointers.
func Rank(records []*model.Record) ([]*model.Record, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	mustBeEvaluated(records)

	out := make([]*model.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, nil
}

// Top returns the record with the highest score. On ties the earliest record
// in input order wins.
func Top(records []*model.Record) (*model.Record, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	mustBeEvaluated(records)

	best := records[0]
	for _, r := range records[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best, nil
}

// Entries numbers ranked records from 1.
func Entries(ranked []*model.Record) []types.Entry {
	out := make([]types.Entry, len(ranked))
	for i, r := range ranked {
		out[i] = types.NewEntry(i+1, r)
	}
	return out
}

func mustBeEvaluated(records []*model.Record) {
	for _, r := range records {
		if !r.Evaluated() {
			panic(&OrderingError{Record: r.Name})
		}
	}
}
