package text

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/opethe1st/connect4/internal/connect4"
	"github.com/opethe1st/connect4/internal/entity"
	"github.com/opethe1st/connect4/internal/transport/input"
)

type gameManager interface {
	Board() *connect4.Board
	CurrentPlayer() entity.Piece
	Result() entity.GameResult
	MakeTurn(ctx context.Context, column int) (entity.Move, error)
	NewGame() error
	Tally(ctx context.Context) (*entity.Tally, error)
}

// Runtime - plays the game one line at a time, for terminals without
// cursor control and for scripted input.
type Runtime struct {
	logger  *slog.Logger
	manager gameManager
	in      io.Reader
	out     io.Writer
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Runtime {
	return &Runtime{
		logger:  logger.With("component", "text_runtime"),
		manager: manager,
		in:      in,
		out:     out,
	}
}

// Run - blocks until the players quit, the input ends or ctx is cancelled.
func (that *Runtime) Run(ctx context.Context) error {
	lines, errs := that.readLines()

	for {
		that.drawBoard()

		result := that.manager.Result()
		if result.IsFinished() {
			that.printf("%s\n", input.Outcome(result))
			that.printScoreboard(ctx)
			that.printf("Play again? [y/n]: ")
		} else {
			that.printf("%s", input.Prompt(that.manager.CurrentPlayer(), that.manager.Board().Dimensions().Width))
		}

		var line string
		select {
		case <-ctx.Done():
			return nil
		case text, ok := <-lines:
			if !ok {
				return readErr(errs)
			}
			line = strings.ToLower(strings.TrimSpace(text))
		}

		if line == "q" || line == "quit" {
			return nil
		}

		if result.IsFinished() {
			switch line {
			case "y", "yes":
				if err := that.manager.NewGame(); err != nil {
					return fmt.Errorf("failed to start a new game: %w", err)
				}
			case "n", "no":
				return nil
			}
			continue
		}

		that.play(ctx, line)
	}
}

func (that *Runtime) play(ctx context.Context, line string) {
	width := that.manager.Board().Dimensions().Width

	column, err := input.ParseColumn(line)
	if err == nil {
		_, err = that.manager.MakeTurn(ctx, column)
	}

	if err != nil {
		that.logger.Debug("move rejected", "input", line, "error", err)
		that.printf("%s\n", input.Reason(err, width))
	}
}

// readErr - the error that ended the input, sent before lines is closed.
func readErr(errs <-chan error) error {
	select {
	case err := <-errs:
		return fmt.Errorf("failed to read input: %w", err)
	default:
		return nil
	}
}

// readLines - feeds input lines to a channel so Run can also wait on ctx.
func (that *Runtime) readLines() (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}

		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return lines, errs
}

// drawBoard - prints the board top row first, then the column numbers.
func (that *Runtime) drawBoard() {
	board := that.manager.Board()
	dimensions := board.Dimensions()

	var sb strings.Builder
	sb.WriteString("\n")

	for row := dimensions.Height - 1; row >= 0; row-- {
		sb.WriteString("|")
		for column := 0; column < dimensions.Width; column++ {
			sb.WriteRune(board.PieceAt(entity.Coord{Row: row, Column: column}).Glyph())
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}

	for column := 1; column <= dimensions.Width; column++ {
		fmt.Fprintf(&sb, " %d", column%10)
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Runtime) printScoreboard(ctx context.Context) {
	tally, err := that.manager.Tally(ctx)
	if err != nil {
		that.logger.Error("failed to get tally", "error", err)
		return
	}

	that.printf("%s\n", input.Scoreboard(tally))
}

func (that *Runtime) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
