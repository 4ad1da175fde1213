package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Prompter asks questions on out and reads line answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	style func(string) string
	alert func(string) string
}

type Option func(*Prompter)

// WithStyle sets the decoration for questions and for error lines.
func WithStyle(question, alert func(string) string) Option {
	return func(that *Prompter) {
		that.style = question
		that.alert = alert
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	that := &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		style: plain,
		alert: plain,
	}

	for _, opt := range opts {
		opt(that)
	}

	return that
}

// Ask writes the question and returns the answer line without its line ending.
func (that *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(that.out, that.style(question))

	line, err := that.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Validate asks until fn accepts the answer. Every rejected answer prints the
// message fn returns as one error line.
func (that *Prompter) Validate(question string, fn func(answer string) (string, bool)) error {
	for {
		answer, err := that.Ask(question)
		if err != nil {
			return err
		}

		msg, ok := fn(answer)
		if ok {
			return nil
		}

		that.Error(msg)
	}
}

// Choose asks until the answer matches one of choices, ignoring case and
// surrounding spaces. errMsg is printed once per run of invalid answers.
func (that *Prompter) Choose(question, errMsg string, choices ...string) (string, error) {
	errorShown := false

	for {
		answer, err := that.Ask(question)
		if err != nil {
			return "", err
		}

		answer = strings.ToLower(strings.TrimSpace(answer))
		for _, choice := range choices {
			if answer == choice {
				return choice, nil
			}
		}

		if !errorShown {
			that.Error(errMsg)
			errorShown = true
		}
	}
}

// Error prints one error line.
func (that *Prompter) Error(msg string) {
	fmt.Fprintln(that.out, that.alert(msg))
}

func plain(s string) string {
	return s
}
