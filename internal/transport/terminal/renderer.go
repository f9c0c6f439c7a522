package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	green  = "2"
	yellow = "3"
)

// Renderer - draws boards and status lines. Colours follow the terminal's
// profile and are dropped entirely when the output is not a TTY.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (that *Renderer) styled() bool {
	return that.out.Profile != termenv.Ascii
}

// Board - the grid with a letter header and numbered rows.
func (that *Renderer) Board(pos entity.Position) string {
	var b strings.Builder

	b.WriteString("  a b c\n")
	for i, row := range pos.Cells {
		fmt.Fprintf(&b, "%d ", i+1)
		for _, cell := range row {
			switch cell {
			case entity.CellX:
				b.WriteString(that.out.String("x").Foreground(that.out.Color(green)).String())
			case entity.CellO:
				b.WriteString(that.out.String("o").Foreground(that.out.Color(yellow)).String())
			default:
				b.WriteString(".")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// PrintBoard - writes the board, clearing the screen first on a styled terminal.
func (that *Renderer) PrintBoard(pos entity.Position, clearScreen bool) {
	if clearScreen && that.styled() {
		that.out.ClearScreen()
		that.out.MoveCursor(1, 1)
	}

	fmt.Fprint(that.out, that.Board(pos))
}

func (that *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Renderer) Headline(text string) string {
	return that.out.String(text).Foreground(that.out.Color(yellow)).Bold().String()
}

func (that *Renderer) Farewell(text string) string {
	return that.out.String(text).Foreground(that.out.Color(green)).String()
}
