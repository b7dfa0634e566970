package cache

import (
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestKeysAreNamespacedPerRoom(t *testing.T) {
	if got := roomKey("ABC234"); got != "sanguo:room:ABC234" {
		t.Fatalf("roomKey = %q", got)
	}
	if got := leaderboardKey("ABC234"); got != "sanguo:room:ABC234:lb" {
		t.Fatalf("leaderboardKey = %q", got)
	}
}

func TestRankEntriesSharesRankOnTies(t *testing.T) {
	entries := rankEntries([]redis.Z{
		{Score: 12, Member: "p_a"},
		{Score: 9, Member: "ai_wu"},
		{Score: 9, Member: "p_b"},
		{Score: 4, Member: "ai_qun"},
	})
	wantRanks := []int{1, 2, 2, 4}
	for i, e := range entries {
		if e.Rank != wantRanks[i] {
			t.Fatalf("entry %d (%s) rank = %d, want %d", i, e.ParticipantID, e.Rank, wantRanks[i])
		}
	}
	if entries[0].ParticipantID != "p_a" || entries[0].Score != 12 {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
}
