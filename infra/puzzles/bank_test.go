package puzzles

import (
	"os"
	"path/filepath"
	"testing"

	"duel-service/domain"

	"github.com/stretchr/testify/require"
)

func TestDefault_HasEveryTier(t *testing.T) {
	b := Default(1)

	for tier, points := range map[domain.Difficulty]int{
		domain.DifficultyEasy:   10,
		domain.DifficultyMedium: 15,
		domain.DifficultyHard:   20,
	} {
		require.Positive(t, b.Size(tier), tier)
		p, err := b.NextPuzzle(tier)
		require.NoError(t, err)
		require.Equal(t, tier, p.Difficulty)
		require.Equal(t, points, p.Points)
		require.NotEmpty(t, p.ID)
	}
}

func TestNewBank_NormalizesEntries(t *testing.T) {
	b, err := NewBank([]Entry{{
		Symbols:      "🎵 + 🏠",
		Answer:       "  Music House ",
		Alternatives: []string{"music house", "MusicHouse", "", "musichouse"},
		Difficulty:   domain.DifficultyMedium,
	}}, 7)
	require.NoError(t, err)

	p, err := b.NextPuzzle(domain.DifficultyMedium)

	require.NoError(t, err)
	require.Equal(t, "music house", p.Answer)
	require.Equal(t, []string{"musichouse"}, p.Alternatives)
	require.Equal(t, 15, p.Points)
}

func TestNewBank_Rejects(t *testing.T) {
	_, err := NewBank(nil, 1)
	require.ErrorIs(t, err, domain.ErrPuzzleUnavailable)

	_, err = NewBank([]Entry{{Symbols: "❓", Answer: ""}}, 1)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewBank([]Entry{{Symbols: "❓", Answer: "x", Difficulty: "legendary"}}, 1)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNextPuzzle_FallsBackToAnotherTier(t *testing.T) {
	b, err := NewBank([]Entry{{Symbols: "🌞 + 🌻", Answer: "sunflower", Difficulty: domain.DifficultyEasy}}, 1)
	require.NoError(t, err)

	p, err := b.NextPuzzle(domain.DifficultyHard)

	require.NoError(t, err)
	require.Equal(t, domain.DifficultyEasy, p.Difficulty)
}

func TestNextPuzzle_SameSeedSameSequence(t *testing.T) {
	a, b := Default(42), Default(42)

	for i := 0; i < 10; i++ {
		pa, err := a.NextPuzzle(domain.DifficultyEasy)
		require.NoError(t, err)
		pb, err := b.NextPuzzle(domain.DifficultyEasy)
		require.NoError(t, err)
		require.Equal(t, pa.ID, pb.ID)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzles.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"symbols":"⭐ + 🐟","answer":"starfish","difficulty":"hard"}]`), 0o600))

	b, err := LoadFile(path, 1)
	require.NoError(t, err)
	require.Equal(t, 1, b.Size(domain.DifficultyHard))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"), 1)
	require.Error(t, err)
}
