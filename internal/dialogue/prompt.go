package dialogue

import (
	"fmt"
	"strings"

	"sanguo/internal/model"
)

var personalityBriefs = map[model.Personality]string{
	model.PersonalityBalanced:   "a measured commander who values every virtue equally",
	model.PersonalityWarlord:    "a brash warlord who trusts only leadership and raw strength",
	model.PersonalityStrategist: "a cold strategist who wins with schemes, statecraft and words",
	model.PersonalityWildcard:   "a reckless gambler who bets on luck and ferocity",
}

var rankMoods = map[int]string{
	1: "won the round outright",
	2: "placed second",
	3: "placed third",
	4: "finished last",
}

// BuildPrompt returns the single batched request covering every personality
// in play, every attribute and every rank.
func BuildPrompt(personalities []model.Personality) string {
	var sb strings.Builder
	sb.WriteString("You write short in-character lines for AI generals in a Three Kingdoms card game.\n")
	sb.WriteString("Each round an attribute is drawn and every faction is ranked 1 to 4 on it.\n\n")
	sb.WriteString("Generals:\n")
	for _, p := range personalities {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", p, personalityBriefs[p]))
	}
	sb.WriteString("\nAttributes: ")
	attrs := make([]string, 0, len(model.AllAttributes))
	for _, a := range model.AllAttributes {
		attrs = append(attrs, string(a))
	}
	sb.WriteString(strings.Join(attrs, ", "))
	sb.WriteString("\nRanks:\n")
	for rank := 1; rank <= 4; rank++ {
		sb.WriteString(fmt.Sprintf("- %d: the general %s\n", rank, rankMoods[rank]))
	}

	example := model.PersonalityBalanced
	if len(personalities) > 0 {
		example = personalities[0]
	}
	sb.WriteString(fmt.Sprintf(`
Return ONLY valid JSON shaped like this, with every general, every attribute and ranks "1" to "4":
{
  "%s": {
    "%s": {"1": "line", "2": "line", "3": "line", "4": "line"}
  }
}
Each line is one sentence under 20 words, spoken by the general.`, example, model.AllAttributes[0]))
	return sb.String()
}
