package a11y

import (
	"github.com/spexop/theme/pkg/colormath"
	"github.com/spexop/theme/pkg/theme"
)

// Entry is the audit of one theme within a batch.
type Entry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Result Result `json:"result"`
}

// BatchAudit audits each theme at level, preserving input order.
func BatchAudit(themes []theme.Config, level colormath.Level) []Entry {
	out := make([]Entry, 0, len(themes))
	for _, cfg := range themes {
		out = append(out, Entry{
			Name:   cfg.Meta.Name,
			Score:  Score(cfg),
			Result: Audit(cfg, level),
		})
	}
	return out
}

// Comparison ranks a set of themes by score. Best and Worst are nil for an
// empty input; ties keep the earliest theme.
type Comparison struct {
	Entries []Entry `json:"entries"`
	Best    *Entry  `json:"best,omitempty"`
	Worst   *Entry  `json:"worst,omitempty"`
	Average float64 `json:"average"`
}

// Compare audits every theme at AA and reports the best, worst and average
// scores.
func Compare(themes []theme.Config) Comparison {
	entries := BatchAudit(themes, colormath.LevelAA)
	comparison := Comparison{Entries: entries}
	if len(entries) == 0 {
		return comparison
	}

	total := 0
	best, worst := 0, 0
	for i, e := range entries {
		total += e.Score
		if e.Score > entries[best].Score {
			best = i
		}
		if e.Score < entries[worst].Score {
			worst = i
		}
	}

	comparison.Best = &entries[best]
	comparison.Worst = &entries[worst]
	comparison.Average = float64(total) / float64(len(entries))
	return comparison
}
