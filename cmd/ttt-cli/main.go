package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/oxogame/tictactoe-backend/internal/engine"
)

var (
	difficultyFlag = flag.String("difficulty", "hard", "bot difficulty: easy or hard")
	markFlag       = flag.String("mark", "X", "your mark: X or O")
	seedFlag       = flag.Int64("seed", 0, "bot rng seed, 0 seeds from the clock")
	hotseatFlag    = flag.Bool("hotseat", false, "two humans at one terminal, no bot")
)

// the pause is presentation only, the engine answers instantly.
const botThinkPause = 400 * time.Millisecond

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	humanMark, err := parseMark(*markFlag)
	if err != nil {
		return err
	}

	difficulty, err := parseDifficulty(*difficultyFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := &cliGame{
		output: termenv.NewOutput(os.Stdout),
		input:  bufio.NewReader(os.Stdin),
		rng:    rand.New(rand.NewSource(seed)),

		humanMark:  humanMark,
		difficulty: difficulty,
		hotseat:    *hotseatFlag,
	}

	return game.play()
}

func parseMark(raw string) (engine.Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "X":
		return engine.MarkX, nil
	case "O":
		return engine.MarkO, nil
	default:
		return engine.MarkEmpty, fmt.Errorf("unknown mark %q, want X or O", raw)
	}
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

type cliGame struct {
	output *termenv.Output
	input  *bufio.Reader
	rng    *rand.Rand

	humanMark  engine.Mark
	difficulty engine.Difficulty
	hotseat    bool
}

func (that *cliGame) play() error {
	for {
		if err := that.playRound(); err != nil {
			return err
		}

		answer, err := that.prompt("play again? [y/N] ")
		if err != nil {
			return err
		}

		if !strings.HasPrefix(strings.ToLower(answer), "y") {
			return nil
		}
	}
}

func (that *cliGame) playRound() error {
	state := engine.NewState()

	for state.Outcome.InProgress() {
		that.printBoard(state)

		var err error
		if that.hotseat || state.Turn == that.humanMark {
			state, err = that.humanMove(state)
		} else {
			state, err = that.botMove(state)
		}

		if err != nil {
			return err
		}
	}

	that.printBoard(state)
	that.printOutcome(state.Outcome)

	return nil
}

// humanMove - asks until the current player names a legal cell.
func (that *cliGame) humanMove(state engine.State) (engine.State, error) {
	for {
		answer, err := that.prompt(fmt.Sprintf("%s move [0-8]: ", state.Turn))
		if err != nil {
			return state, err
		}

		cell, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Println("enter a cell number between 0 and 8")
			continue
		}

		next, err := state.MakeMove(cell)
		switch {
		case errors.Is(err, engine.ErrInvalidCell):
			fmt.Println("that cell is off the board")
			continue
		case errors.Is(err, engine.ErrCellOccupied):
			fmt.Println("that cell is taken")
			continue
		case err != nil:
			return state, err
		}

		return next, nil
	}
}

func (that *cliGame) botMove(state engine.State) (engine.State, error) {
	time.Sleep(botThinkPause)

	botMark := that.humanMark.Opponent()

	var cell int
	var ok bool
	if that.difficulty == engine.EasyDifficulty {
		cell, ok = engine.RandomMove(that.rng, state.Board)
	} else {
		cell, ok = engine.SelectMove(that.rng, state.Board, botMark, that.humanMark)
	}

	if !ok {
		return state, errors.New("bot found no free cell")
	}

	next, err := state.MakeMove(cell)
	if err != nil {
		return state, fmt.Errorf("bot move failed: %w", err)
	}

	fmt.Printf("bot plays %d\n", cell)

	return next, nil
}

func (that *cliGame) prompt(question string) (string, error) {
	fmt.Print(question)

	answer, err := that.input.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

func (that *cliGame) printBoard(state engine.State) {
	fmt.Println()
	for row := 0; row < 3; row++ {
		left := row * 3
		fmt.Printf(" %s │ %s │ %s\n",
			that.renderCell(state, left),
			that.renderCell(state, left+1),
			that.renderCell(state, left+2),
		)

		if row < 2 {
			fmt.Println("───┼───┼───")
		}
	}
	fmt.Println()
}

// renderCell - draws one cell: free cells show their faint index, marks
// get their color, and the winning line lights up green.
func (that *cliGame) renderCell(state engine.State, cell int) string {
	mark := state.Board[cell]

	if mark == engine.MarkEmpty {
		return that.output.String(strconv.Itoa(cell)).Faint().String()
	}

	style := that.output.String(string(mark)).Bold()

	switch {
	case state.Outcome.Won() && onLine(state.Outcome.Line, cell):
		style = style.Foreground(that.output.Color("2"))
	case mark == engine.MarkX:
		style = style.Foreground(that.output.Color("1"))
	default:
		style = style.Foreground(that.output.Color("4"))
	}

	return style.String()
}

func (that *cliGame) printOutcome(outcome engine.Outcome) {
	switch {
	case outcome.Won():
		verdict := fmt.Sprintf("%s wins on %v", outcome.Winner, outcome.Line)
		fmt.Println(that.output.String(verdict).Bold().Foreground(that.output.Color("2")))
	default:
		fmt.Println(that.output.String("draw").Bold().Foreground(that.output.Color("3")))
	}
}

func onLine(line engine.Line, cell int) bool {
	return line[0] == cell || line[1] == cell || line[2] == cell
}
