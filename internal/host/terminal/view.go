package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/vimotion/internal/engine/buffer"
	"github.com/dshills/vimotion/internal/input/mode"
	"github.com/dshills/vimotion/internal/input/vim"
)

var (
	styleText   = tcell.StyleDefault
	styleFiller = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Draw renders the document and the status line.
func (e *Editor) Draw() {
	e.screen.Clear()
	width, height := e.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	rows := height - 1

	snap := buffer.NewSnapshot(e.doc.Text())
	e.cursor = snap.Clamp(e.cursor)
	pt := snap.OffsetToPoint(e.cursor)
	line := snap.LineRunes(pt.Line)
	cursorCol := displayWidth(line[:min(pt.Column, len(line))], e.tabWidth())

	e.scrollVertical(pt.Line, rows)
	e.scrollHorizontal(cursorCol, width)

	for row := 0; row < rows; row++ {
		n := e.top + row
		if n > snap.LastLine() {
			e.screen.SetContent(0, row, '~', nil, styleFiller)
			continue
		}
		e.drawLine(row, snap.LineRunes(n), width)
	}

	status := e.drawStatus(height-1, width, pt)

	e.screen.SetCursorStyle(cursorStyle(e.machine.Mode().CursorStyle()))
	if e.machine.Mode() == mode.Command {
		e.screen.ShowCursor(min(runewidth.StringWidth(status), width-1), height-1)
	} else if rows > 0 {
		e.screen.ShowCursor(cursorCol-e.left, pt.Line-e.top)
	}
	e.screen.Show()
}

func (e *Editor) tabWidth() int {
	return max(e.cfg.Terminal.TabWidth, 1)
}

// scrollVertical keeps line visible in a text area of rows lines, honoring
// the Machine's scroll hint.
func (e *Editor) scrollVertical(line, rows int) {
	if rows <= 0 {
		return
	}
	switch e.machine.ScrollHint() {
	case vim.ScrollCenter:
		e.top = line - rows/2
	case vim.ScrollTop:
		e.top = line
	case vim.ScrollBottom:
		e.top = line - rows + 1
	default:
		if line < e.top {
			e.top = line
		} else if line >= e.top+rows {
			e.top = line - rows + 1
		}
	}
	e.top = max(e.top, 0)
}

func (e *Editor) scrollHorizontal(col, width int) {
	if col < e.left {
		e.left = col
	} else if col >= e.left+width {
		e.left = col - width + 1
	}
	e.left = max(e.left, 0)
}

// drawLine draws the runes of one line, expanding tabs.
func (e *Editor) drawLine(row int, line []rune, width int) {
	tab := e.tabWidth()
	col := 0
	for _, r := range line {
		if r == '\t' {
			next := (col/tab + 1) * tab
			for ; col < next; col++ {
				e.put(col-e.left, row, ' ', 1, width, styleText)
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		e.put(col-e.left, row, r, w, width, styleText)
		col += w
	}
}

func (e *Editor) put(x, y int, r rune, w, width int, style tcell.Style) {
	if x < 0 || x+w > width {
		return
	}
	e.screen.SetContent(x, y, r, nil, style)
}

// drawStatus draws the status line and returns its left-hand text.
func (e *Editor) drawStatus(row, width int, pt buffer.Point) string {
	left := e.machine.Status()
	if e.message != "" && e.machine.Mode() != mode.Command {
		left += "  " + e.message
	}

	name := e.doc.Name
	if e.doc.IsModified() {
		name += " [+]"
	}
	right := fmt.Sprintf("%s  %d:%d", name, pt.Line+1, pt.Column+1)

	for x := 0; x < width; x++ {
		e.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	rightWidth := runewidth.StringWidth(right)
	leftMax := width
	if rightWidth+1 < width {
		e.drawString(width-rightWidth, row, right, width, styleStatus)
		leftMax = width - rightWidth - 1
	}
	e.drawString(0, row, runewidth.Truncate(left, leftMax, ""), width, styleStatus)
	return left
}

func (e *Editor) drawString(x, y int, s string, width int, style tcell.Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		e.put(x, y, r, w, width, style)
		x += w
	}
}

// displayWidth returns the screen width of runes with tabs expanded.
func displayWidth(runes []rune, tab int) int {
	col := 0
	for _, r := range runes {
		if r == '\t' {
			col = (col/tab + 1) * tab
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}
