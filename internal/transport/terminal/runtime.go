package terminal

import (
	"context"
	"log/slog"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/opethe1st/connect4/internal/apperror"
	"github.com/opethe1st/connect4/internal/connect4"
	"github.com/opethe1st/connect4/internal/entity"
	"github.com/opethe1st/connect4/internal/transport/input"
)

const helpText = "left/right: move  enter: drop  1-9: column  n: new game  q: quit"

type gameManager interface {
	Board() *connect4.Board
	CurrentPlayer() entity.Piece
	Result() entity.GameResult
	WinningLine() []entity.Coord
	MakeTurn(ctx context.Context, column int) (entity.Move, error)
	NewGame() error
	Tally(ctx context.Context) (*entity.Tally, error)
}

// Runtime - full screen game on a tcell screen. The caller owns the screen
// and finalizes it.
type Runtime struct {
	logger  *slog.Logger
	screen  tcell.Screen
	manager gameManager

	cursor  int
	message string
	tally   *entity.Tally
}

func New(logger *slog.Logger, screen tcell.Screen, manager gameManager) *Runtime {
	return &Runtime{
		logger:  logger.With("component", "terminal_runtime"),
		screen:  screen,
		manager: manager,
	}
}

// Run - draws a frame, then handles one event, until the players quit or
// ctx is cancelled.
func (that *Runtime) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	// PollEvent blocks, so cancellation has to arrive as an event
	go func() {
		select {
		case <-ctx.Done():
			_ = that.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	that.refreshTally(ctx)

	for {
		that.draw()

		switch ev := that.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if quit := that.handleKey(ctx, ev); quit {
				return nil
			}
		}
	}
}

func (that *Runtime) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		that.moveCursor(-1)
	case tcell.KeyRight:
		that.moveCursor(1)
	case tcell.KeyEnter:
		that.drop(ctx, that.cursor)
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q' || r == 'Q':
			return true
		case r == 'n' || r == 'N':
			that.newGame()
		case r == ' ':
			that.drop(ctx, that.cursor)
		case unicode.IsDigit(r):
			column, err := input.ParseColumn(string(r))
			if err != nil {
				that.reject(err)
				return false
			}
			that.drop(ctx, column)
		default:
			that.reject(apperror.ErrInvalidInput)
		}
	}

	return false
}

func (that *Runtime) moveCursor(delta int) {
	width := that.manager.Board().Dimensions().Width
	that.cursor = (that.cursor + delta + width) % width
}

func (that *Runtime) drop(ctx context.Context, column int) {
	if _, err := that.manager.MakeTurn(ctx, column); err != nil {
		that.reject(err)
		return
	}

	that.message = ""
	that.cursor = column

	if that.manager.Result().IsFinished() {
		that.refreshTally(ctx)
	}
}

func (that *Runtime) reject(err error) {
	that.logger.Debug("move rejected", "error", err)
	that.message = input.Reason(err, that.manager.Board().Dimensions().Width)
}

func (that *Runtime) newGame() {
	if !that.manager.Result().IsFinished() {
		return
	}

	if err := that.manager.NewGame(); err != nil {
		that.logger.Error("failed to start a new game", "error", err)
		that.message = "Could not start a new game."
		return
	}

	that.message = ""
	that.cursor = 0
}

func (that *Runtime) refreshTally(ctx context.Context) {
	tally, err := that.manager.Tally(ctx)
	if err != nil {
		that.logger.Error("failed to get tally", "error", err)
		return
	}

	that.tally = tally
}
