package game

import (
	"strings"
	"time"

	"duel-service/domain"

	"github.com/samber/lo"
)

type Verdict struct {
	Correct         bool
	Expired         bool
	Points          int
	Normalized      string
	TimeRemainingMs int64
}

// Normalize lowercases and collapses whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func variants(s string) []string {
	n := Normalize(s)
	if n == "" {
		return nil
	}
	return []string{n, strings.ReplaceAll(n, " ", ""), strings.ReplaceAll(n, " ", "-")}
}

// AcceptedAnswers returns the normalized forms that match p: the canonical
// answer and every alternative, each as-is, without spaces and hyphenated.
func AcceptedAnswers(p domain.Puzzle) []string {
	out := variants(p.Answer)
	for _, alt := range p.Alternatives {
		out = append(out, variants(alt)...)
	}
	return lo.Uniq(out)
}

func Matches(raw string, p domain.Puzzle) bool {
	n := Normalize(raw)
	if n == "" {
		return false
	}
	return lo.Contains(AcceptedAnswers(p), n)
}

// Score judges a single attempt. Attempts after deadline never count, and a
// player who already scored this round gets zero.
func Score(raw string, p domain.Puzzle, at, deadline time.Time, alreadyScored bool) Verdict {
	v := Verdict{Normalized: Normalize(raw)}
	if at.After(deadline) {
		v.Expired = true
		return v
	}
	v.TimeRemainingMs = deadline.Sub(at).Milliseconds()
	v.Correct = Matches(raw, p)
	if v.Correct && !alreadyScored {
		v.Points = p.Points
	}
	return v
}
