package roster

import "github.com/okian/mvp/internal/domain/model"

// Default returns a fresh copy of the sample roster.
func Default() []*model.Record {
	players := []struct {
		name  string
		image string
		stats model.Stats
	}{
		{"Nikola Jokic", "Nikola Jokic.jpg", model.Stats{PointsPerGame: 26.6, AssistsPerGame: 9, ReboundsPerGame: 12.4, TeamRank: 3, PastMVPCount: 2}},
		{"Shai Gilgeous Alexander", "Shai Alexander.jpg", model.Stats{PointsPerGame: 30.4, AssistsPerGame: 6.2, ReboundsPerGame: 5.6, TeamRank: 2}},
		{"Luka Doncic", "Luka Donic.jpg", model.Stats{PointsPerGame: 33.9, AssistsPerGame: 9.8, ReboundsPerGame: 9.2, TeamRank: 6}},
		{"Giannis Antetokounmpo", "Giannis Antetokounmpo.jpg", model.Stats{PointsPerGame: 30.4, AssistsPerGame: 6.5, ReboundsPerGame: 11.5, TeamRank: 8, PastMVPCount: 2}},
		{"Jayson Tatum", "Jayson Tatum.jpg", model.Stats{PointsPerGame: 26.9, AssistsPerGame: 4.9, ReboundsPerGame: 8.1, TeamRank: 1}},
	}
	out := make([]*model.Record, len(players))
	for i, p := range players {
		r := model.New(p.name, p.stats)
		r.Image = p.image
		out[i] = r
	}
	return out
}
