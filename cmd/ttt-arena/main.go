package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/oxogame/tictactoe-backend/internal/engine"
)

var (
	gamesFlag   = flag.Int("games", 200, "number of games to play")
	workersFlag = flag.Int("workers", 4, "concurrent workers")
	firstFlag   = flag.String("p1", "hard", "first policy: easy or hard")
	secondFlag  = flag.String("p2", "easy", "second policy: easy or hard")
	seedFlag    = flag.Int64("seed", 0, "rng seed, 0 seeds from the clock")
	reportFlag  = flag.String("report", "", "write an HTML report to this file")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	first, err := parseDifficulty(*firstFlag)
	if err != nil {
		return err
	}

	second, err := parseDifficulty(*secondFlag)
	if err != nil {
		return err
	}

	games := *gamesFlag
	if games < 1 {
		return errors.New("need at least one game")
	}

	workers := *workersFlag
	if workers < 1 {
		workers = 1
	}
	if workers > games {
		workers = games
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results := make(chan workerResult, workers)

	// split the games across the workers, each with its own rng so the
	// whole run replays from one seed.
	var wg sync.WaitGroup
	share := games / workers
	extra := games % workers

	for workerID := 0; workerID < workers; workerID++ {
		workerGames := share
		if workerID < extra {
			workerGames++
		}

		wg.Add(1)
		go func(workerID, workerGames int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed + int64(workerID)))
			results <- runWorker(rng, first, second, workerGames)
		}(workerID, workerGames)
	}

	wg.Wait()
	close(results)

	var total matchTally
	for result := range results {
		if result.err != nil {
			return result.err
		}
		total.add(result.tally)
	}

	labelFirst := fmt.Sprintf("p1 %s", first)
	labelSecond := fmt.Sprintf("p2 %s", second)

	fmt.Printf("%d games, seed %d\n", games, seed)
	fmt.Printf("%-10s %5d (%.1f%%)\n", labelFirst, total.FirstWins, percent(total.FirstWins, games))
	fmt.Printf("%-10s %5d (%.1f%%)\n", labelSecond, total.SecondWins, percent(total.SecondWins, games))
	fmt.Printf("%-10s %5d (%.1f%%)\n", "draws", total.Draws, percent(total.Draws, games))

	if *reportFlag != "" {
		if err = renderReport(*reportFlag, labelFirst, labelSecond, games, total); err != nil {
			return err
		}

		fmt.Printf("report written to %s\n", *reportFlag)
	}

	return nil
}

func parseDifficulty(raw string) (engine.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(engine.EasyDifficulty):
		return engine.EasyDifficulty, nil
	case string(engine.HardDifficulty):
		return engine.HardDifficulty, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q, want easy or hard", raw)
	}
}

type matchTally struct {
	FirstWins  int
	SecondWins int
	Draws      int
}

func (that *matchTally) add(other matchTally) {
	that.FirstWins += other.FirstWins
	that.SecondWins += other.SecondWins
	that.Draws += other.Draws
}

type workerResult struct {
	tally matchTally
	err   error
}

// runWorker - plays the worker's share of games. Seats are tossed per
// game so neither policy keeps the first-move advantage.
func runWorker(rng *rand.Rand, first, second engine.Difficulty, games int) workerResult {
	var tally matchTally

	for i := 0; i < games; i++ {
		firstMark := engine.MarkX
		if rng.Intn(2) == 1 {
			firstMark = engine.MarkO
		}

		policies := map[engine.Mark]engine.Difficulty{
			firstMark:            first,
			firstMark.Opponent(): second,
		}

		winner, err := playGame(rng, policies)
		if err != nil {
			return workerResult{err: err}
		}

		switch winner {
		case engine.MarkEmpty:
			tally.Draws++
		case firstMark:
			tally.FirstWins++
		default:
			tally.SecondWins++
		}
	}

	return workerResult{tally: tally}
}

// playGame - plays one game to the end and returns the winning mark,
// or the empty mark for a draw.
func playGame(rng *rand.Rand, policies map[engine.Mark]engine.Difficulty) (engine.Mark, error) {
	state := engine.NewState()

	for state.Outcome.InProgress() {
		self := state.Turn

		var cell int
		var ok bool
		if policies[self] == engine.EasyDifficulty {
			cell, ok = engine.RandomMove(rng, state.Board)
		} else {
			cell, ok = engine.SelectMove(rng, state.Board, self, self.Opponent())
		}

		if !ok {
			return engine.MarkEmpty, errors.New("no move on an unfinished board")
		}

		next, err := state.MakeMove(cell)
		if err != nil {
			return engine.MarkEmpty, fmt.Errorf("policy picked an illegal move: %w", err)
		}

		state = next
	}

	return state.Outcome.Winner, nil
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

func renderReport(path, labelFirst, labelSecond string, games int, total matchTally) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "tic-tac-toe arena",
			Subtitle: fmt.Sprintf("%s vs %s, %d games", labelFirst, labelSecond, games),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	bar.SetXAxis([]string{labelFirst, labelSecond, "draws"}).
		AddSeries("games", []opts.BarData{
			{Value: total.FirstWins},
			{Value: total.SecondWins},
			{Value: total.Draws},
		})

	page := components.NewPage()
	page.AddCharts(bar)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err = page.Render(file); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}
