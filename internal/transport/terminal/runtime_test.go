package terminal

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/opethe1st/connect4/internal/entity"
	"github.com/opethe1st/connect4/internal/repository"
	"github.com/opethe1st/connect4/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	key tcell.Key
	r   rune
}

func runes(text string) []testKey {
	keys := make([]testKey, 0, len(text))
	for _, r := range text {
		keys = append(keys, testKey{key: tcell.KeyRune, r: r})
	}

	return keys
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	screen.SetSize(80, 20)

	return screen
}

// play - injects the keys, then runs until the runtime quits. The simulation
// queue holds ten events, so scripts stay short.
func play(t *testing.T, height, width int, keys []testKey) (*usecase.GameManager, tcell.SimulationScreen) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	manager, err := usecase.NewGameManager(logger, entity.Dimensions{Height: height, Width: width}, repository.NewMemoryResultRepository(10))
	require.NoError(t, err)

	screen := newTestScreen(t)
	for _, k := range keys {
		screen.InjectKey(k.key, k.r, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, New(logger, screen, manager).Run(context.Background()))

	return manager, screen
}

func screenText(screen tcell.SimulationScreen) string {
	cells, width, height := screen.GetContents()

	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) > 0 {
				sb.WriteRune(cell.Runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func TestRuntime_Run(t *testing.T) {
	t.Run("Digit keys play a game to a win", func(t *testing.T) {
		// Given: Blue stacks column 1 while Red plays column 2
		keys := runes("1212121")

		// When: the keys are played
		manager, screen := play(t, 6, 7, keys)

		// Then: Blue wins and the last frame says so
		assert.Equal(t, entity.Won(entity.PlayerA), manager.Result())

		text := screenText(screen)
		assert.Contains(t, text, "Blue wins! Press n for a new game or q to quit.")
		assert.Contains(t, text, "Blue 1 - 0 Red, draws 0")
	})

	t.Run("Cursor keys move and drop", func(t *testing.T) {
		// Given: right, right, enter, then left and space
		keys := []testKey{
			{key: tcell.KeyRight},
			{key: tcell.KeyRight},
			{key: tcell.KeyEnter},
			{key: tcell.KeyLeft},
			{key: tcell.KeyRune, r: ' '},
		}

		// When: the keys are played
		manager, _ := play(t, 6, 7, keys)

		// Then: Blue dropped into column 3 and Red into column 2
		assert.Equal(t, entity.PlayerA, manager.Board().PieceAt(entity.Coord{Row: 0, Column: 2}))
		assert.Equal(t, entity.PlayerB, manager.Board().PieceAt(entity.Coord{Row: 0, Column: 1}))
	})

	t.Run("Rejected moves show the reason", func(t *testing.T) {
		// Given: a 1x2 board where Blue fills column 1 and Red tries it again
		keys := runes("11")

		// When: the keys are played
		manager, screen := play(t, 1, 2, keys)

		// Then: it is still Red's turn and the reason is on screen
		assert.Equal(t, entity.PlayerB, manager.CurrentPlayer())
		assert.Contains(t, screenText(screen), "That column is full. Pick another one.")
		assert.Contains(t, screenText(screen), "Red's move: select a column between 1 and 2:")
	})

	t.Run("Out of range digit", func(t *testing.T) {
		manager, screen := play(t, 6, 4, runes("9"))

		assert.Empty(t, manager.Moves())
		assert.Contains(t, screenText(screen), "That column does not exist. Pick one between 1 and 4.")
	})

	t.Run("New game after the end", func(t *testing.T) {
		// Given: a 1x1 board drawn by the first move, then n
		manager, screen := play(t, 1, 1, runes("1n"))

		// Then: a new game is waiting for Blue and the draw is counted
		assert.Equal(t, entity.InProgress(), manager.Result())
		assert.Equal(t, entity.PlayerA, manager.CurrentPlayer())
		assert.Contains(t, screenText(screen), "Blue 0 - 0 Red, draws 1")
	})

	t.Run("Draws pieces from the board", func(t *testing.T) {
		// Given: Blue and Red drop into column 1 of a 2x2 board
		_, screen := play(t, 2, 2, runes("11"))

		// Then: Red is drawn above Blue
		text := screenText(screen)
		assert.Contains(t, text, " |O| |")
		assert.Contains(t, text, " |X| |")
		assert.Less(t, strings.Index(text, "|O|"), strings.Index(text, "|X|"))
	})
}

func TestRuntime_RunCancelled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	manager, err := usecase.NewGameManager(logger, entity.Dimensions{Height: 6, Width: 7}, repository.NewMemoryResultRepository(10))
	require.NoError(t, err)

	// Given: a cancelled context and no input
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When: the runtime runs
	err = New(logger, newTestScreen(t), manager).Run(ctx)

	// Then: it returns once the interrupt arrives
	require.NoError(t, err)
}
