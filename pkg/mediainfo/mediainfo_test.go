package mediainfo

import "testing"

func TestEqual(t *testing.T) {
	info := &SeriesInfo{ID: "70327", Name: "Show"}
	tests := []struct {
		name string
		a, b Record
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", &Movie{Name: "Movie"}, nil, false},
		{
			"same imdb id",
			&Movie{Name: "Fight Club", IMDBID: "tt0137523"},
			&Movie{Name: "Fight Club (1999)", IMDBID: "tt0137523"},
			true,
		},
		{
			"movie structural match",
			&Movie{Name: "Fight Club", Year: 1999},
			&Movie{Name: "Fight Club", Year: 1999},
			true,
		},
		{
			"movie different year",
			&Movie{Name: "Fight Club", Year: 1999},
			&Movie{Name: "Fight Club", Year: 2006},
			false,
		},
		{
			"episode same numbering",
			&Episode{Season: 1, Episode: 2, Series: info},
			&Episode{Season: 1, Episode: 2, Series: info},
			true,
		},
		{
			"episode different special",
			&Episode{Season: 0, Episode: 0, Special: 1, Series: info},
			&Episode{Season: 0, Episode: 0, Special: 2, Series: info},
			false,
		},
		{
			"cross type",
			&Movie{Name: "Special"},
			&Episode{Title: "Special"},
			false,
		},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Equal() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEpisodeClone(t *testing.T) {
	ep := &Episode{ID: "388", Title: "Second", Season: 1, Episode: 2,
		Series: &SeriesInfo{ID: "70327", Name: "Show"}}
	c := ep.Clone()
	c.Series.Name = "Renamed"
	if ep.Series.Name != "Show" {
		t.Error("clone must not share series info with the original")
	}
}

func TestMovieWithPart(t *testing.T) {
	m := &Movie{Name: "Movie", Year: 2009, Aliases: []string{"Alt"}}
	p := m.WithPart(1, 2)
	if p.PartIndex != 1 || p.PartCount != 2 {
		t.Errorf("WithPart(1, 2) tagged %d/%d", p.PartIndex, p.PartCount)
	}
	if m.PartIndex != 0 || m.PartCount != 0 {
		t.Error("WithPart must not modify the original")
	}
	p.Aliases[0] = "Changed"
	if m.Aliases[0] != "Alt" {
		t.Error("WithPart must copy aliases")
	}
}
