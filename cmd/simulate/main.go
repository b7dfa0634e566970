// Command simulate plays bot-only games on the engine and reports how each
// AI personality fares under the configured scoring rules.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	"github.com/pterm/pterm"

	"sanguo/internal/catalog"
	"sanguo/internal/config"
	"sanguo/internal/game"
	"sanguo/internal/model"
)

type seededSource struct {
	r *rand.Rand
}

func (s seededSource) Intn(n int) int {
	return s.r.IntN(n)
}

type tally struct {
	games  int
	wins   int
	points int
}

func main() {
	games := flag.Int("games", 1000, "number of games to play")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("load config: %v", err)
		os.Exit(1)
	}
	if *games < 1 {
		pterm.Error.Println("-games must be positive")
		os.Exit(1)
	}

	cat := catalog.Default(cfg.Game.DefaultStats())
	if err := game.CheckRoster(cat, cfg.Game.MaxRounds); err != nil {
		pterm.Error.Printfln("GAME_MAX_ROUNDS: %v", err)
		os.Exit(1)
	}
	src := seededSource{r: rand.New(rand.NewPCG(*seed, *seed^0x5eed))}
	stats := make(map[model.Personality]*tally, len(model.AllPersonalities))
	for _, p := range model.AllPersonalities {
		stats[p] = &tally{}
	}

	pterm.Info.Printfln("Simulating %d games (seed %d)", *games, *seed)
	bar, _ := pterm.DefaultProgressbar.WithTotal(*games).WithTitle("Playing").Start()
	for i := 0; i < *games; i++ {
		if err := playOne(cat, cfg.Game, src, stats); err != nil {
			if bar != nil {
				bar.Stop()
			}
			pterm.Error.Printfln("game %d: %v", i+1, err)
			os.Exit(1)
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Stop()
	}

	render(stats)
}

// playOne seats four bots, one per faction, each playing a personality's
// heuristic through the regular selection path.
func playOne(cat *catalog.Catalog, rules config.GameConfig, src game.Source, stats map[model.Personality]*tally) error {
	room := game.NewRoom("SIMSIM", rules.MaxRounds, time.Now())
	order := src.Intn(len(model.AllPersonalities))
	seats := make(map[string]model.Personality, len(model.AllFactions))
	for i, f := range model.AllFactions {
		id := "sim_" + string(f)
		if err := game.Join(room, id, id); err != nil {
			return err
		}
		if err := game.AssignFaction(room, id, f); err != nil {
			return err
		}
		seats[id] = model.AllPersonalities[(i+order)%len(model.AllPersonalities)]
	}

	if _, err := game.PrepareStart(room, cat, src); err != nil {
		return err
	}
	if err := game.CommitStart(room, nil, "", time.Now()); err != nil {
		return err
	}

	for {
		for id, p := range seats {
			picks := game.SelectAICards(game.DeckList(room, id), p, cat)
			if _, err := game.SubmitSelection(room, id, picks, cat); err != nil {
				return fmt.Errorf("round %d %s: %w", room.Round, id, err)
			}
		}
		if _, err := game.ResolveRound(room, game.DrawAttribute(src), cat, rules); err != nil {
			return err
		}
		finished, err := game.AdvanceRound(room, time.Now())
		if err != nil {
			return err
		}
		if finished {
			break
		}
	}

	winners := make(map[string]bool)
	for _, id := range game.Winners(room) {
		winners[id] = true
	}
	for id, p := range seats {
		t := stats[p]
		t.games++
		t.points += room.Scores[id]
		if winners[id] {
			t.wins++
		}
	}
	return nil
}

func render(stats map[model.Personality]*tally) {
	personalities := make([]model.Personality, 0, len(stats))
	for p := range stats {
		personalities = append(personalities, p)
	}
	sort.Slice(personalities, func(i, j int) bool {
		a, b := stats[personalities[i]], stats[personalities[j]]
		if a.wins != b.wins {
			return a.wins > b.wins
		}
		return personalities[i] < personalities[j]
	})

	data := pterm.TableData{{"Personality", "Games", "Wins", "Win rate", "Avg score"}}
	for _, p := range personalities {
		t := stats[p]
		if t.games == 0 {
			continue
		}
		data = append(data, []string{
			string(p),
			fmt.Sprint(t.games),
			fmt.Sprint(t.wins),
			fmt.Sprintf("%.1f%%", 100*float64(t.wins)/float64(t.games)),
			fmt.Sprintf("%.2f", float64(t.points)/float64(t.games)),
		})
	}

	pterm.Println()
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		pterm.Error.Printfln("render: %v", err)
	}
	pterm.Info.Println("Shared first place counts as a win for every tied seat.")
}
