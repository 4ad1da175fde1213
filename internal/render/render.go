package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const indent = "         "

const banner = `
88888888888 8888888 .d8888b.       88888888888     d8888  .d8888b.       88888888888 .d88888b.  8888888888
    888       888  d88P  Y88b          888        d88888 d88P  Y88b          888    d88P" "Y88b 888
    888       888  888    888          888       d88P888 888    888          888    888     888 888
    888       888  888                 888      d88P 888 888                 888    888     888 8888888
    888       888  888                 888     d88P  888 888                 888    888     888 888
    888       888  888    888 888888   888    d88P   888 888    888 888888   888    888     888 888
    888       888  Y88b  d88P          888   d8888888888 Y88b  d88P          888    Y88b. .d88P 888
    888     8888888 "Y8888P"           888  d88P     888  "Y8888P"           888     "Y88888P"  8888888888
`

var rules = heredoc.Doc(`
	1. The game is played on a 3x3 grid.
	2. Player 1 is 'X' and Player 2 is 'O'.
	3. The first player to get 3 of their marks in a row (vertically, horizontally, or diagonally) wins.
	4. If all 9 squares are filled and no player has 3 in a row, the game is a draw/tie.
`)

var separator = strings.Repeat(":", 105)

// Renderer draws the game screen. Screen clearing and colors are only used
// when the output is a terminal.
type Renderer struct {
	out  io.Writer
	term *termenv.Output
	tty  bool

	title    *color.Color
	rule     *color.Color
	mark     *color.Color
	name     *color.Color
	versus   *color.Color
	question *color.Color
	alert    *color.Color
	draw     *color.Color
	score    *color.Color
	heading  *color.Color
}

func New(out io.Writer, noColor bool) *Renderer {
	that := &Renderer{
		out:  out,
		term: termenv.NewOutput(out),
		tty:  isTerminal(out),

		title:    color.New(color.FgBlue, color.Bold),
		rule:     color.New(color.FgHiBlack, color.Bold),
		mark:     color.New(color.FgRed, color.Bold),
		name:     color.New(color.FgGreen, color.Bold),
		versus:   color.New(color.FgYellow, color.Bold),
		question: color.New(color.FgBlue, color.Bold),
		alert:    color.New(color.FgRed),
		draw:     color.New(color.FgYellow),
		score:    color.New(color.FgMagenta),
		heading:  color.New(color.FgMagenta, color.Bold),
	}

	for _, c := range []*color.Color{
		that.title, that.rule, that.mark, that.name, that.versus,
		that.question, that.alert, that.draw, that.score, that.heading,
	} {
		if noColor || !that.tty {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	return that
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Clear wipes the terminal. It is a no-op for non-terminal outputs.
func (that *Renderer) Clear() {
	if that.tty {
		that.term.ClearScreen()
	}
}

// Title prints the banner, the rules and a separator.
func (that *Renderer) Title() {
	fmt.Fprint(that.out, that.title.Sprint(banner))
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, that.title.Sprint("How to play"))
	for _, line := range strings.Split(strings.TrimRight(rules, "\n"), "\n") {
		fmt.Fprintln(that.out, that.rule.Sprint(line))
	}
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, that.title.Sprint(separator))
	fmt.Fprintln(that.out)
}

// Board redraws the whole screen: title, players and the grid.
func (that *Renderer) Board(game *entity.Game, playerX, playerO *entity.Player) {
	that.Clear()
	that.Title()

	fmt.Fprintf(that.out, "%s %s\n", indent, that.player(playerX))
	fmt.Fprintf(that.out, "%s %s\n", indent, that.versus.Sprint("vs."))
	fmt.Fprintf(that.out, "%s %s\n\n", indent, that.player(playerO))

	fmt.Fprintln(that.out, indent+"┌───────┬───────┬───────┐")
	for row := 1; row <= entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)
		for col := 1; col <= entity.BoardSize; col++ {
			cells = append(cells, "   "+that.cell(game.Cell(row, col))+"   ")
		}
		fmt.Fprintln(that.out, indent+"│"+strings.Join(cells, "│")+"│")

		if row < entity.BoardSize {
			fmt.Fprintln(that.out, indent+"├───────┼───────┼───────┤")
		}
	}
	fmt.Fprintln(that.out, indent+"└───────┴───────┴───────┘")
}

func (that *Renderer) player(p *entity.Player) string {
	return that.name.Sprint(p.Name+" (") + that.mark.Sprint(p.Mark) + that.name.Sprint(")")
}

func (that *Renderer) cell(mark string) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return that.mark.Sprint(mark)
}

func (that *Renderer) Winner(p *entity.Player) {
	fmt.Fprintf(that.out, "\n%s%s\n", indent, that.name.Sprint(p.Name+" wins!"))
}

func (that *Renderer) Draw() {
	fmt.Fprintf(that.out, "\n%s%s\n", indent, that.draw.Sprint("It's a draw!"))
}

func (that *Renderer) Scoreboard(playerX, playerO *entity.Player, score entity.Score) {
	fmt.Fprintf(that.out, "\n%s%s\n", indent, that.heading.Sprint("Scoreboard"))
	fmt.Fprintf(that.out, "%s%s\n", indent, that.score.Sprintf("%s (%s): %d", playerX.Name, playerX.Mark, score.X))
	fmt.Fprintf(that.out, "%s%s\n\n", indent, that.score.Sprintf("%s (%s): %d", playerO.Name, playerO.Mark, score.O))
}

func (that *Renderer) Info(msg string) {
	fmt.Fprintf(that.out, "\n%s\n", that.name.Sprint(msg))
}

func (that *Renderer) Farewell() {
	fmt.Fprintf(that.out, "\n%s\n\n", that.versus.Sprint("Goodbye! Thanks for playing!"))
}

// Question styles a prompt question.
func (that *Renderer) Question(s string) string {
	return that.question.Sprint(s)
}

// Alert styles an input error line.
func (that *Renderer) Alert(s string) string {
	return that.alert.Sprint(s)
}
