package game

import (
	"sort"
	"time"

	"sanguo/internal/config"
	"sanguo/internal/model"
)

var fillerLines = map[int]string{
	1: "The general accepts victory without a word.",
	2: "The general nods. A respectable showing.",
	3: "The general frowns and studies the map again.",
	4: "The general says nothing and withdraws the banners.",
}

// FillerLine is used when the dialogue vault has no line for a result
func FillerLine(rank int) string {
	if line, ok := fillerLines[rank]; ok {
		return line
	}
	return fillerLines[4]
}

// Totals sums attr over each participant's sealed bid
func Totals(room *model.Room, attr model.Attribute, cat Catalog) []Entry {
	entries := make([]Entry, 0, len(room.LockedCards))
	for id, cards := range room.LockedCards {
		total := 0
		for _, name := range cards {
			total += cat.Lookup(name).Stats.Get(attr)
		}
		entries = append(entries, Entry{ParticipantID: id, Total: total})
	}
	return entries
}

// ResolveRound scores the sealed bids against attr, spends the played cards
// and records the round. Results are returned in rank order.
func ResolveRound(room *model.Room, attr model.Attribute, cat Catalog, rules config.GameConfig) ([]model.ParticipantResult, error) {
	if room.Status != model.RoomStatusResolutionPending {
		return nil, ErrWrongStatus
	}
	if !attr.Valid() {
		return nil, ErrInvalidAttribute
	}
	if !BidsComplete(room) {
		return nil, ErrIncompleteBids
	}

	placements := Score(Totals(room, attr, cat), rules)
	results := make([]model.ParticipantResult, 0, len(placements))
	for _, p := range placements {
		faction, _ := room.FactionOf(p.ParticipantID)
		cards := make([]string, len(room.LockedCards[p.ParticipantID]))
		copy(cards, room.LockedCards[p.ParticipantID])

		r := model.ParticipantResult{
			ParticipantID: p.ParticipantID,
			Faction:       faction,
			IsAI:          room.IsAI(p.ParticipantID),
			Cards:         cards,
			Total:         p.Total,
			Rank:          p.Rank,
			Points:        p.Points,
			Modifier:      p.Modifier,
		}
		if r.IsAI {
			line, ok := room.DialogueVault.Line(room.AIPersonalities[p.ParticipantID], attr, p.Rank)
			if !ok {
				line = FillerLine(p.Rank)
			}
			r.Line = line
		}
		results = append(results, r)

		room.Scores[p.ParticipantID] += p.Points
		for _, name := range cards {
			delete(room.Decks[p.ParticipantID], name)
		}
	}

	room.LastAttribute = attr
	room.LastResults = results
	room.History = append(room.History, model.RoundRecord{Round: room.Round, Attribute: attr, Results: results})
	if err := transition(room, model.RoomStatusResolutionResult); err != nil {
		return nil, err
	}
	return results, nil
}

// AdvanceRound clears the bids and either opens the next round or finishes
// the game. It returns true when the game finished.
func AdvanceRound(room *model.Room, now time.Time) (bool, error) {
	if room.Status != model.RoomStatusResolutionResult {
		return false, ErrWrongStatus
	}
	room.LockedCards = make(map[string][]string)
	if room.Round >= room.MaxRounds {
		if err := transition(room, model.RoomStatusFinished); err != nil {
			return false, err
		}
		room.FinishedAt = &now
		return true, nil
	}
	if err := transition(room, model.RoomStatusPlaying); err != nil {
		return false, err
	}
	room.Round++
	return false, nil
}

// Winners returns the participant ids sharing the top score
func Winners(room *model.Room) []string {
	best := -1
	var winners []string
	for _, id := range room.ParticipantIDs() {
		s := room.Scores[id]
		switch {
		case s > best:
			best = s
			winners = []string{id}
		case s == best:
			winners = append(winners, id)
		}
	}
	sort.Strings(winners)
	return winners
}
