package puzzles

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"duel-service/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var tierPoints = map[domain.Difficulty]int{
	domain.DifficultyEasy:   10,
	domain.DifficultyMedium: 15,
	domain.DifficultyHard:   20,
}

// Entry is the on-disk shape of a puzzle.
type Entry struct {
	Symbols      string            `json:"symbols"`
	Answer       string            `json:"answer"`
	Alternatives []string          `json:"alternatives,omitempty"`
	Difficulty   domain.Difficulty `json:"difficulty"`
}

// Bank is an in-memory puzzle provider grouped by tier.
type Bank struct {
	mu     sync.Mutex
	byTier map[domain.Difficulty][]domain.Puzzle
	rnd    *rand.Rand
}

func NewBank(entries []Entry, seed uint64) (*Bank, error) {
	b := &Bank{
		byTier: make(map[domain.Difficulty][]domain.Puzzle),
		rnd:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for i, e := range entries {
		p, err := toPuzzle(e)
		if err != nil {
			return nil, fmt.Errorf("puzzle %d: %w", i, err)
		}
		b.byTier[p.Difficulty] = append(b.byTier[p.Difficulty], p)
	}
	if len(b.byTier) == 0 {
		return nil, fmt.Errorf("%w: empty puzzle bank", domain.ErrPuzzleUnavailable)
	}
	return b, nil
}

// Default returns the built-in catalog.
func Default(seed uint64) *Bank {
	b, err := NewBank(catalog, seed)
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFile reads a JSON array of entries.
func LoadFile(path string, seed uint64) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzles: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse puzzles: %w", err)
	}
	return NewBank(entries, seed)
}

func toPuzzle(e Entry) (domain.Puzzle, error) {
	answer := strings.ToLower(strings.TrimSpace(e.Answer))
	if answer == "" || strings.TrimSpace(e.Symbols) == "" {
		return domain.Puzzle{}, fmt.Errorf("%w: symbols and answer required", domain.ErrInvalidInput)
	}
	tier := e.Difficulty
	if tier == "" {
		tier = domain.DifficultyEasy
	}
	points, ok := tierPoints[tier]
	if !ok {
		return domain.Puzzle{}, fmt.Errorf("%w: unknown difficulty %q", domain.ErrInvalidInput, tier)
	}
	alts := lo.Uniq(lo.FilterMap(e.Alternatives, func(a string, _ int) (string, bool) {
		a = strings.ToLower(strings.TrimSpace(a))
		return a, a != "" && a != answer
	}))
	return domain.Puzzle{
		ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte(e.Symbols+"|"+answer)).String(),
		Symbols:      e.Symbols,
		Answer:       answer,
		Alternatives: alts,
		Difficulty:   tier,
		Points:       points,
	}, nil
}

// NextPuzzle picks a random puzzle of tier. An empty tier falls back to the
// nearest easier one, then to any puzzle.
func (b *Bank) NextPuzzle(tier domain.Difficulty) (domain.Puzzle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	order := []domain.Difficulty{tier, domain.DifficultyMedium, domain.DifficultyEasy, domain.DifficultyHard}
	for _, t := range order {
		pool := b.byTier[t]
		if len(pool) == 0 {
			continue
		}
		p := pool[b.rnd.IntN(len(pool))]
		p.Alternatives = append([]string(nil), p.Alternatives...)
		return p, nil
	}
	return domain.Puzzle{}, fmt.Errorf("%w: tier %s", domain.ErrPuzzleUnavailable, tier)
}

func (b *Bank) Size(tier domain.Difficulty) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.byTier[tier])
}
