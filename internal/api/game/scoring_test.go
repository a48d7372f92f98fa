package game

import (
	"testing"
	"time"

	"duel-service/domain"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "music house", Normalize("  MUSIC   House "))
	require.Equal(t, "", Normalize("   "))
}

func TestAcceptedAnswers(t *testing.T) {
	p := domain.Puzzle{Answer: "Music House", Alternatives: []string{"musichouse"}}

	got := AcceptedAnswers(p)

	require.ElementsMatch(t, []string{"music house", "musichouse", "music-house"}, got)
}

func TestMatches(t *testing.T) {
	p := musicHouse()

	for _, raw := range []string{"MUSIC HOUSE", "music-house", "musichouse", " Music  house "} {
		require.True(t, Matches(raw, p), raw)
	}
	for _, raw := range []string{"", "music", "house music", "music_house"} {
		require.False(t, Matches(raw, p), raw)
	}
}

func TestScore(t *testing.T) {
	deadline := time.Date(2024, 3, 1, 12, 0, 30, 0, time.UTC)
	p := musicHouse()

	t.Run("first correct attempt scores", func(t *testing.T) {
		v := Score("music house", p, deadline.Add(-10*time.Second), deadline, false)
		require.True(t, v.Correct)
		require.Equal(t, 10, v.Points)
		require.Equal(t, int64(10000), v.TimeRemainingMs)
	})

	t.Run("correct after scoring gives nothing", func(t *testing.T) {
		v := Score("music house", p, deadline.Add(-time.Second), deadline, true)
		require.True(t, v.Correct)
		require.Zero(t, v.Points)
	})

	t.Run("wrong answer", func(t *testing.T) {
		v := Score("guitar home", p, deadline.Add(-time.Second), deadline, false)
		require.False(t, v.Correct)
		require.Zero(t, v.Points)
	})

	t.Run("exactly at deadline still counts", func(t *testing.T) {
		v := Score("music house", p, deadline, deadline, false)
		require.True(t, v.Correct)
		require.Equal(t, 10, v.Points)
	})

	t.Run("after deadline never counts", func(t *testing.T) {
		v := Score("music house", p, deadline.Add(time.Millisecond), deadline, false)
		require.True(t, v.Expired)
		require.False(t, v.Correct)
		require.Zero(t, v.Points)
	})
}

func TestTierForRound(t *testing.T) {
	require.Equal(t, domain.DifficultyEasy, TierForRound(1))
	require.Equal(t, domain.DifficultyEasy, TierForRound(2))
	require.Equal(t, domain.DifficultyMedium, TierForRound(3))
	require.Equal(t, domain.DifficultyMedium, TierForRound(4))
	require.Equal(t, domain.DifficultyHard, TierForRound(5))
}
