package game

import (
	"testing"

	"sanguo/internal/config"
	"sanguo/internal/model"
)

func entries(totals ...int) []Entry {
	ids := []string{"a", "b", "c", "d", "e"}
	out := make([]Entry, len(totals))
	for i, t := range totals {
		out[i] = Entry{ParticipantID: ids[i], Total: t}
	}
	return out
}

func TestScoreModifiers(t *testing.T) {
	cases := []struct {
		name       string
		totals     []int
		wantRanks  []int
		wantPoints []int
		wantMods   []string
	}{
		{
			name:       "tie at the top is a narrow win for both",
			totals:     []int{50, 50, 30, 10},
			wantRanks:  []int{1, 1, 3, 4},
			wantPoints: []int{4, 4, 2, 1},
			wantMods:   []string{model.ModifierNarrow, model.ModifierNarrow, "", ""},
		},
		{
			name:       "crit with defeat boundary exclusive",
			totals:     []int{90, 40, 35, 30},
			wantRanks:  []int{1, 2, 3, 4},
			wantPoints: []int{8, 3, 2, 1},
			wantMods:   []string{model.ModifierCrit, "", "", ""},
		},
		{
			name:       "total defeat",
			totals:     []int{90, 70, 65, 20},
			wantRanks:  []int{1, 2, 3, 4},
			wantPoints: []int{5, 3, 2, 0},
			wantMods:   []string{"", "", "", model.ModifierDefeat},
		},
		{
			name:       "crit and total defeat together",
			totals:     []int{200, 120, 110, 100},
			wantRanks:  []int{1, 2, 3, 4},
			wantPoints: []int{8, 3, 2, 0},
			wantMods:   []string{model.ModifierCrit, "", "", model.ModifierDefeat},
		},
		{
			name:       "gap of exactly thirty is not a crit",
			totals:     []int{130, 100, 90, 80},
			wantRanks:  []int{1, 2, 3, 4},
			wantPoints: []int{5, 3, 2, 1},
			wantMods:   []string{"", "", "", ""},
		},
		{
			name:       "gap of exactly five is not narrow",
			totals:     []int{105, 100, 90, 80},
			wantRanks:  []int{1, 2, 3, 4},
			wantPoints: []int{5, 3, 2, 1},
			wantMods:   []string{"", "", "", ""},
		},
		{
			name:       "middle tie uses competition ranking",
			totals:     []int{150, 120, 120, 110},
			wantRanks:  []int{1, 2, 2, 4},
			wantPoints: []int{5, 3, 3, 1},
			wantMods:   []string{"", "", "", ""},
		},
		{
			name:       "tie at the bottom skips rank four",
			totals:     []int{100, 99, 30, 30},
			wantRanks:  []int{1, 2, 3, 3},
			wantPoints: []int{4, 3, 2, 2},
			wantMods:   []string{model.ModifierNarrow, "", "", ""},
		},
	}

	rules := config.DefaultGameConfig()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(entries(tc.totals...), rules)
			if len(got) != len(tc.totals) {
				t.Fatalf("got %d placements, want %d", len(got), len(tc.totals))
			}
			for i, p := range got {
				if p.Total != tc.totals[i] {
					t.Fatalf("placement %d total = %d, want %d", i, p.Total, tc.totals[i])
				}
				if p.Rank != tc.wantRanks[i] {
					t.Fatalf("placement %d rank = %d, want %d", i, p.Rank, tc.wantRanks[i])
				}
				if p.Points != tc.wantPoints[i] {
					t.Fatalf("placement %d points = %d, want %d", i, p.Points, tc.wantPoints[i])
				}
				if p.Modifier != tc.wantMods[i] {
					t.Fatalf("placement %d modifier = %q, want %q", i, p.Modifier, tc.wantMods[i])
				}
			}
		})
	}
}

func TestScoreSortsUnorderedInput(t *testing.T) {
	in := []Entry{
		{ParticipantID: "low", Total: 20},
		{ParticipantID: "top", Total: 90},
		{ParticipantID: "mid", Total: 65},
		{ParticipantID: "high", Total: 70},
	}
	got := Score(in, config.DefaultGameConfig())
	order := []string{"top", "high", "mid", "low"}
	for i, id := range order {
		if got[i].ParticipantID != id {
			t.Fatalf("position %d = %s, want %s", i, got[i].ParticipantID, id)
		}
	}
	if in[0].ParticipantID != "low" {
		t.Fatalf("Score must not reorder its input")
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	rules := config.DefaultGameConfig()
	in := entries(88, 88, 40, 12)
	first := Score(in, rules)
	for i := 0; i < 50; i++ {
		again := Score(in, rules)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d differs at %d: %+v vs %+v", i, j, first[j], again[j])
			}
		}
	}
}

func TestScoreUsesConfiguredTable(t *testing.T) {
	rules := config.DefaultGameConfig()
	rules.RankPoints = []int{10, 6, 4, 2}
	rules.CritGap = 1000
	rules.NarrowGap = 0
	rules.DefeatGap = 1000

	got := Score(entries(100, 80, 60, 40), rules)
	want := []int{10, 6, 4, 2}
	for i, p := range got {
		if p.Points != want[i] {
			t.Fatalf("placement %d points = %d, want %d", i, p.Points, want[i])
		}
	}
}
