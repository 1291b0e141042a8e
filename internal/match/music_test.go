package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/mediamatch/internal/match"
	"github.com/vmunix/mediamatch/internal/match/mocks"
	"github.com/vmunix/mediamatch/pkg/mediainfo"
	"go.uber.org/mock/gomock"
)

func TestMusicMatcher_ProviderPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockMusicProvider(ctrl)
	second := mocks.NewMockMusicProvider(ctrl)

	files := []string{"/music/01 Intro.flac", "/music/02 Outro.flac"}

	// The primary resolves one file; the fallback only sees the rest.
	first.EXPECT().
		Identify(gomock.Any(), files).
		Return(map[string]*mediainfo.AudioTrack{
			files[0]: {ID: "a1", Artist: "Band", Title: "Intro"},
		}, nil)
	second.EXPECT().
		Identify(gomock.Any(), []string{files[1]}).
		Return(map[string]*mediainfo.AudioTrack{
			files[1]: {ID: "a2", Artist: "Band", Title: "Outro"},
		}, nil)

	m := match.NewMusicMatcher([]match.MusicProvider{first, second}, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].Record.RecordID())
	assert.Equal(t, "a2", got[1].Record.RecordID())
}

func TestMusicMatcher_StopsWhenAllResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockMusicProvider(ctrl)
	second := mocks.NewMockMusicProvider(ctrl)
	// Fallback has no expectations: it must never be consulted.

	files := []string{"/music/01 Intro.flac"}
	first.EXPECT().
		Identify(gomock.Any(), files).
		Return(map[string]*mediainfo.AudioTrack{
			files[0]: {ID: "a1", Title: "Intro"},
		}, nil)

	m := match.NewMusicMatcher([]match.MusicProvider{first, second}, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestMusicMatcher_FailedProviderSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockMusicProvider(ctrl)
	second := mocks.NewMockMusicProvider(ctrl)

	files := []string{"/music/01 Intro.flac"}
	first.EXPECT().
		Identify(gomock.Any(), files).
		Return(nil, errors.New("fingerprint service down"))
	first.EXPECT().Name().Return("chromaprint").AnyTimes()
	second.EXPECT().
		Identify(gomock.Any(), files).
		Return(map[string]*mediainfo.AudioTrack{
			files[0]: {ID: "a1", Title: "Intro"},
		}, nil)

	m := match.NewMusicMatcher([]match.MusicProvider{first, second}, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].Record.RecordID())
}

func TestMusicMatcher_NonAudioIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMusicProvider(ctrl)

	// Cover art and playlists never reach the provider.
	files := []string{"/music/01 Intro.flac", "/music/cover.jpg", "/music/album.m3u"}
	provider.EXPECT().
		Identify(gomock.Any(), []string{files[0]}).
		Return(map[string]*mediainfo.AudioTrack{
			files[0]: {ID: "a1", Title: "Intro"},
		}, nil)

	m := match.NewMusicMatcher([]match.MusicProvider{provider}, testLogger())
	got, err := m.Match(context.Background(), files, match.Options{})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, files[0], got[0].File)
}

func TestMusicMatcher_Cancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMusicProvider(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := match.NewMusicMatcher([]match.MusicProvider{provider}, testLogger())
	_, err := m.Match(ctx, []string{"/music/01 Intro.flac"}, match.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMusicMatcher_NoProvider(t *testing.T) {
	m := match.NewMusicMatcher(nil, testLogger())
	_, err := m.Match(context.Background(), []string{"x.flac"}, match.Options{})
	require.ErrorIs(t, err, match.ErrNoProvider)
}
