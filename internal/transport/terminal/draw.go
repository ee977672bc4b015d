package terminal

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/opethe1st/connect4/internal/entity"
	"github.com/opethe1st/connect4/internal/transport/input"
)

const (
	boardLeft = 1
	boardTop  = 2
	cellWidth = 2
)

var (
	titleStyle   = tcell.StyleDefault.Bold(true)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	helpStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	frameStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

func pieceStyle(piece entity.Piece) tcell.Style {
	switch piece {
	case entity.PlayerA:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	case entity.PlayerB:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

// draw - renders the whole frame from the board, one PieceAt per cell.
func (that *Runtime) draw() {
	that.screen.Clear()

	board := that.manager.Board()
	dimensions := board.Dimensions()
	result := that.manager.Result()

	winning := make(map[entity.Coord]bool)
	for _, at := range that.manager.WinningLine() {
		winning[at] = true
	}

	that.drawText(boardLeft, 0, "Connect Four", titleStyle)

	if result.IsInProgress() {
		cursorX := boardLeft + that.cursor*cellWidth + 1
		that.screen.SetContent(cursorX, boardTop-1, 'v', nil, pieceStyle(that.manager.CurrentPlayer()))
	}

	for row := dimensions.Height - 1; row >= 0; row-- {
		y := boardTop + dimensions.Height - 1 - row
		that.screen.SetContent(boardLeft, y, '|', nil, frameStyle)

		for column := 0; column < dimensions.Width; column++ {
			at := entity.Coord{Row: row, Column: column}
			piece := board.PieceAt(at)

			style := pieceStyle(piece)
			if winning[at] {
				style = style.Reverse(true)
			}

			x := boardLeft + column*cellWidth
			that.screen.SetContent(x+1, y, piece.Glyph(), nil, style)
			that.screen.SetContent(x+2, y, '|', nil, frameStyle)
		}
	}

	y := boardTop + dimensions.Height
	for column := 0; column < dimensions.Width; column++ {
		label := strconv.Itoa((column + 1) % 10)
		that.drawText(boardLeft+column*cellWidth+1, y, label, frameStyle)
	}

	y++
	if result.IsFinished() {
		that.drawText(boardLeft, y, input.Outcome(result)+" Press n for a new game or q to quit.", titleStyle)
	} else {
		player := that.manager.CurrentPlayer()
		that.drawText(boardLeft, y, input.Prompt(player, dimensions.Width), pieceStyle(player))
	}

	if that.message != "" {
		that.drawText(boardLeft, y+1, that.message, messageStyle)
	}

	if that.tally != nil {
		that.drawText(boardLeft, y+2, input.Scoreboard(that.tally), tcell.StyleDefault)
	}

	that.drawText(boardLeft, y+3, helpText, helpStyle)

	that.screen.Show()
}

func (that *Runtime) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		that.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
