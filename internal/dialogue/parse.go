package dialogue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sanguo/internal/model"
)

// stripFences removes a markdown code fence some models wrap JSON in
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseVault decodes a provider response into a vault. Entries for unknown
// personalities or ones not in play, unknown attributes, ranks outside 1..4 and blank
// lines are dropped; a response left with no lines at all is an error.
func ParseVault(raw string, personalities []model.Personality) (model.DialogueVault, error) {
	var doc map[string]map[string]map[string]string
	if err := json.Unmarshal([]byte(stripFences(raw)), &doc); err != nil {
		return nil, fmt.Errorf("parse dialogue json: %w", err)
	}

	inPlay := make(map[model.Personality]bool, len(personalities))
	for _, p := range personalities {
		if p.Valid() {
			inPlay[p] = true
		}
	}

	vault := model.DialogueVault{}
	for pKey, byAttr := range doc {
		p := model.Personality(strings.ToLower(strings.TrimSpace(pKey)))
		if !inPlay[p] {
			continue
		}
		for aKey, byRank := range byAttr {
			a := model.Attribute(strings.ToLower(strings.TrimSpace(aKey)))
			if !a.Valid() {
				continue
			}
			for rKey, line := range byRank {
				rank, err := strconv.Atoi(strings.TrimSpace(rKey))
				if err != nil || rank < 1 || rank > 4 {
					continue
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				vault.Set(p, a, rank, line)
			}
		}
	}
	if vault.Size() == 0 {
		return nil, errNoLines
	}
	return vault, nil
}
