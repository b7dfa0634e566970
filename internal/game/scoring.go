package game

import (
	"sort"

	"sanguo/internal/config"
	"sanguo/internal/model"
)

// Entry is one participant's total for the drawn attribute
type Entry struct {
	ParticipantID string
	Total         int
}

// Placement is the scored outcome for an Entry
type Placement struct {
	ParticipantID string
	Total         int
	Rank          int
	Points        int
	Modifier      string
}

// Score ranks entries with competition ranking (a tie at position i shares
// rank i, the next lower total gets its own position) and applies the
// points table plus the crit, narrow-win and total-defeat modifiers.
func Score(entries []Entry, rules config.GameConfig) []Placement {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].ParticipantID < sorted[j].ParticipantID
	})

	// Modifiers rewrite the points of a rank, so every participant sharing
	// that rank is affected alike.
	firstPoints, firstMod := rules.PointsForRank(1), ""
	if len(sorted) >= 2 {
		gap := sorted[0].Total - sorted[1].Total
		if gap > rules.CritGap {
			firstPoints, firstMod = rules.CritPoints, model.ModifierCrit
		} else if gap < rules.NarrowGap {
			firstPoints, firstMod = rules.NarrowPoints, model.ModifierNarrow
		}
	}
	fourthPoints, fourthMod := rules.PointsForRank(4), ""
	if len(sorted) >= 4 && sorted[0].Total-sorted[3].Total > rules.DefeatGap {
		fourthPoints, fourthMod = rules.DefeatPoints, model.ModifierDefeat
	}

	out := make([]Placement, len(sorted))
	for i, e := range sorted {
		rank := i + 1
		if i > 0 && e.Total == sorted[i-1].Total {
			rank = out[i-1].Rank
		}
		p := Placement{ParticipantID: e.ParticipantID, Total: e.Total, Rank: rank}
		switch rank {
		case 1:
			p.Points, p.Modifier = firstPoints, firstMod
		case 4:
			p.Points, p.Modifier = fourthPoints, fourthMod
		default:
			p.Points = rules.PointsForRank(rank)
		}
		out[i] = p
	}
	return out
}
