package game

import (
	"sort"

	"sanguo/internal/model"
)

// ViewFor builds the snapshot participantID is allowed to see. Other
// participants' sealed bids are reduced to a submitted flag; played cards
// only become visible through LastResults after resolution.
func ViewFor(room *model.Room, participantID string) *model.RoomView {
	v := &model.RoomView{
		Code:          room.Code,
		Status:        room.Status,
		Round:         room.Round,
		MaxRounds:     room.MaxRounds,
		You:           participantID,
		LastAttribute: room.LastAttribute,
	}

	if f, ok := room.Players[participantID]; ok {
		v.YourFaction = f
	}
	if _, ok := room.Decks[participantID]; ok {
		v.YourDeck = DeckList(room, participantID)
	}
	if bid, ok := room.LockedCards[participantID]; ok {
		v.YourSelection = append([]string(nil), bid...)
	}

	seatOrder := make(map[model.Faction]int, len(model.AllFactions))
	for i, f := range model.AllFactions {
		seatOrder[f] = i
	}

	for id, nick := range room.Nicknames {
		f := room.Players[id]
		v.Participants = append(v.Participants, participantView(room, id, nick, f, false))
	}
	for _, f := range room.AIFactions {
		id := model.AIParticipantID(f)
		if _, ok := room.Decks[id]; !ok {
			continue
		}
		v.Participants = append(v.Participants, participantView(room, id, "", f, true))
	}
	sort.Slice(v.Participants, func(i, j int) bool {
		a, b := v.Participants[i], v.Participants[j]
		if (a.Faction == "") != (b.Faction == "") {
			return a.Faction != ""
		}
		if a.Faction != b.Faction {
			return seatOrder[a.Faction] < seatOrder[b.Faction]
		}
		return a.ID < b.ID
	})

	for _, f := range model.AllFactions {
		if factionTaken(room, f) {
			v.TakenFactions = append(v.TakenFactions, f)
		}
	}

	if len(room.LastResults) > 0 {
		v.LastResults = make([]model.ParticipantResult, len(room.LastResults))
		for i, r := range room.LastResults {
			r.Cards = append([]string(nil), r.Cards...)
			v.LastResults[i] = r
		}
	}
	return v
}

func participantView(room *model.Room, id, nick string, f model.Faction, ai bool) model.ParticipantView {
	_, submitted := room.LockedCards[id]
	return model.ParticipantView{
		ID:          id,
		Nickname:    nick,
		Faction:     f,
		IsAI:        ai,
		Personality: room.AIPersonalities[id],
		Score:       room.Scores[id],
		Submitted:   submitted,
		CardsLeft:   len(room.Decks[id]),
	}
}

func factionTaken(room *model.Room, f model.Faction) bool {
	for _, held := range room.Players {
		if held == f {
			return true
		}
	}
	for _, ai := range room.AIFactions {
		if ai == f {
			return true
		}
	}
	return false
}
