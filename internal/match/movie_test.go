package match_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/mediamatch/internal/match"
	"github.com/vmunix/mediamatch/internal/match/mocks"
	"github.com/vmunix/mediamatch/internal/memory"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
	"go.uber.org/mock/gomock"

	_ "modernc.org/sqlite"
)

func testStore(t *testing.T) *memory.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	store, err := memory.NewStore(db)
	require.NoError(t, err)
	return store
}

func TestMovieMatcher_SingletonAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)

	movie := &mediainfo.Movie{Name: "Unknown Movie", Year: 2020, IMDBID: "tt0100000"}
	provider.EXPECT().
		Search(gomock.Any(), "unknown movie", 2020, "").
		Return([]*mediainfo.Movie{movie}, nil)

	m := match.NewMovieMatcher(provider, nil, nil, testLogger())
	got, err := m.Match(context.Background(), []string{"Unknown.Movie.2020.mkv"}, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Resolved())
	assert.Equal(t, "tt0100000", got[0].Record.RecordID())
	assert.NotSame(t, mediainfo.Record(movie), got[0].Record)
}

func TestMovieMatcher_UniqueSimilarityAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)

	want := &mediainfo.Movie{Name: "Unknown Movie", Year: 2020, IMDBID: "tt0100000"}
	other := &mediainfo.Movie{Name: "Zeta Project Report", Year: 1987, IMDBID: "tt0200000"}
	provider.EXPECT().
		Search(gomock.Any(), "unknown movie", 2020, "").
		Return([]*mediainfo.Movie{other, want}, nil)

	m := match.NewMovieMatcher(provider, nil, nil, testLogger())
	got, err := m.Match(context.Background(), []string{"Unknown.Movie.2020.mkv"}, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tt0100000", got[0].Record.RecordID())
}

func TestMovieMatcher_StrictRejectsAmbiguous(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)
	// No prompter expectations: strict mode never asks.

	candidates := []*mediainfo.Movie{
		{Name: "Zeta Project Report", Year: 1987, IMDBID: "tt0200000"},
		{Name: "Yankee Doodle Saga", Year: 1991, IMDBID: "tt0300000"},
	}
	provider.EXPECT().
		Search(gomock.Any(), "unknown movie", 2020, "").
		Return(candidates, nil)

	m := match.NewMovieMatcher(provider, prompter, nil, testLogger())
	got, err := m.Match(context.Background(), []string{"Unknown.Movie.2020.mkv"}, match.Options{Strict: true})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMovieMatcher_StrictRequiresYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	// No Search expectations: a year-less name is dropped before lookup.

	m := match.NewMovieMatcher(provider, nil, nil, testLogger())
	got, err := m.Match(context.Background(), []string{"Some.Movie.mkv"}, match.Options{Strict: true})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMovieMatcher_AutoRepeatSkip(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	ambiguous := []*mediainfo.Movie{
		{Name: "Zeta Project Report", Year: 1987, IMDBID: "tt0200000"},
		{Name: "Yankee Doodle Saga", Year: 1991, IMDBID: "tt0300000"},
	}
	provider.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ambiguous, nil).
		Times(2)

	// Skip-all answer: one prompt, the second file skips silently.
	prompter.EXPECT().
		SelectCandidate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(match.Selection{Index: -1, Repeat: true}, nil).
		Times(1)

	files := []string{"Alpha.Thing.mkv", "Beta.Thing.mkv"}
	m := match.NewMovieMatcher(provider, prompter, nil, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{Concurrency: 1})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMovieMatcher_DismissedPromptLeavesFileUnmatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	ambiguous := []*mediainfo.Movie{
		{Name: "Zeta Project Report", Year: 1987, IMDBID: "tt0200000"},
		{Name: "Yankee Doodle Saga", Year: 1991, IMDBID: "tt0300000"},
	}
	provider.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ambiguous, nil)
	prompter.EXPECT().
		SelectCandidate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(match.Selection{}, match.ErrPromptCancelled)

	m := match.NewMovieMatcher(provider, prompter, nil, testLogger())
	got, err := m.Match(context.Background(), []string{"Alpha.Thing.mkv"}, match.Options{})

	require.NoError(t, err, "a dismissed prompt is not a run failure")
	assert.Empty(t, got)
}

func TestMovieMatcher_AutoRepeatSkipConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	ambiguous := []*mediainfo.Movie{
		{Name: "Zeta Project Report", Year: 1987, IMDBID: "tt0200000"},
		{Name: "Yankee Doodle Saga", Year: 1991, IMDBID: "tt0300000"},
	}

	// Two workers on distinct query keys. The second worker is held in
	// its search until the first prompt is open, and the open prompt
	// does not answer until the second worker is on its way to the
	// selection step. Exactly one prompt may happen: the late worker
	// must pick up the skip-all answer instead of asking again.
	promptOpen := make(chan struct{})
	betaSearched := make(chan struct{})

	provider.EXPECT().
		Search(gomock.Any(), "alpha thing", 0, "").
		Return(ambiguous, nil)
	provider.EXPECT().
		Search(gomock.Any(), "beta thing", 0, "").
		DoAndReturn(func(context.Context, string, int, string) ([]*mediainfo.Movie, error) {
			<-promptOpen
			close(betaSearched)
			return ambiguous, nil
		})
	prompter.EXPECT().
		SelectCandidate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, []string) (match.Selection, error) {
			close(promptOpen)
			<-betaSearched
			return match.Selection{Index: -1, Repeat: true}, nil
		}).
		Times(1)

	files := []string{"Alpha.Thing.mkv", "Beta.Thing.mkv"}
	m := match.NewMovieMatcher(provider, prompter, nil, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{Concurrency: 2})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMovieMatcher_AutoRepeatFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	ambiguous := []*mediainfo.Movie{
		{Name: "Zeta Project Report", Year: 1987, IMDBID: "tt0200000"},
		{Name: "Yankee Doodle Saga", Year: 1991, IMDBID: "tt0300000"},
	}
	provider.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ambiguous, nil).
		Times(2)
	prompter.EXPECT().
		SelectCandidate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(match.Selection{Index: 0, Repeat: true}, nil).
		Times(1)

	files := []string{"Alpha.Thing.mkv", "Beta.Thing.mkv"}
	m := match.NewMovieMatcher(provider, prompter, nil, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{Concurrency: 1})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "tt0200000", got[0].Record.RecordID())
	assert.Equal(t, "tt0200000", got[1].Record.RecordID())
}

func TestMovieMatcher_MultiPartTagging(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)

	movie := &mediainfo.Movie{Name: "Movie", Year: 2009, IMDBID: "tt0400000"}
	// Both discs reduce to the same query key, so one search serves both.
	provider.EXPECT().
		Search(gomock.Any(), "movie", 0, "").
		Return([]*mediainfo.Movie{movie}, nil).
		Times(1)

	files := []string{"/films/Movie.CD1.mkv", "/films/Movie.CD2.mkv"}
	m := match.NewMovieMatcher(provider, nil, nil, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 2)

	first, ok := got[0].Record.(*mediainfo.Movie)
	require.True(t, ok)
	second, ok := got[1].Record.(*mediainfo.Movie)
	require.True(t, ok)

	assert.Equal(t, files[0], got[0].File)
	assert.Equal(t, 1, first.PartIndex)
	assert.Equal(t, 2, first.PartCount)
	assert.Equal(t, files[1], got[1].File)
	assert.Equal(t, 2, second.PartIndex)
	assert.Equal(t, 2, second.PartCount)
	assert.NotSame(t, first, second)
}

func TestMovieMatcher_NFOIdentifiesSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)

	dir := t.TempDir()
	video := filepath.Join(dir, "Fight.Club.1999.mkv")
	nfo := filepath.Join(dir, "Fight.Club.1999.nfo")
	require.NoError(t, os.WriteFile(video, nil, 0o644))
	require.NoError(t, os.WriteFile(nfo, []byte("https://www.imdb.com/title/tt0137523/"), 0o644))

	movie := &mediainfo.Movie{Name: "Fight Club", Year: 1999, IMDBID: "tt0137523"}
	// Identity comes from the nfo alone; no text search happens.
	provider.EXPECT().
		Lookup(gomock.Any(), "tt0137523").
		Return(movie, nil).
		Times(1)

	m := match.NewMovieMatcher(provider, nil, nil, testLogger())
	got, err := m.Match(context.Background(), []string{video, nfo}, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, video, got[0].File)
	assert.Equal(t, "tt0137523", got[0].Record.RecordID())
	assert.Equal(t, nfo, got[1].File)
	assert.Equal(t, "tt0137523", got[1].Record.RecordID())
	assert.NotSame(t, got[0].Record, got[1].Record)
}

func TestMovieMatcher_StoredSelectionSkipsSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	provider.EXPECT().Name().Return("moviedb").AnyTimes()

	store := testStore(t)
	movie := &mediainfo.Movie{Name: "Unknown Movie", Year: 2020, IMDBID: "tt0100000"}
	raw, err := json.Marshal(movie)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "moviedb", "unknown movie 2020", raw))

	m := match.NewMovieMatcher(provider, nil, store, testLogger())
	got, err := m.Match(context.Background(), []string{"Unknown.Movie.2020.mkv"}, match.Options{Autodetect: true})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tt0100000", got[0].Record.RecordID())
}

func TestMovieMatcher_StoredSkipRemembered(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	provider.EXPECT().Name().Return("moviedb").AnyTimes()

	store := testStore(t)
	require.NoError(t, store.Put(context.Background(), "moviedb", "unknown movie 2020", []byte{}))

	m := match.NewMovieMatcher(provider, nil, store, testLogger())
	got, err := m.Match(context.Background(), []string{"Unknown.Movie.2020.mkv"}, match.Options{Autodetect: true})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMovieMatcher_NoProvider(t *testing.T) {
	m := match.NewMovieMatcher(nil, nil, nil, testLogger())
	_, err := m.Match(context.Background(), []string{"x.mkv"}, match.Options{})
	require.ErrorIs(t, err, match.ErrNoProvider)
}
