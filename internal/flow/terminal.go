package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/console"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/screens"
)

// ErrQuit is returned by Ask when the user types a quit command.
var ErrQuit = errors.New("quit requested")

// GoCommand prefixes a location to move to, e.g. "go /phone".
const GoCommand = "go"

// Prompts shown under each screen.
const (
	PromptContract    = "Tasdiqlash uchun Enter bosing (q - chiqish)"
	PromptCourse      = "Kurs raqami yoki nomini kiriting (Enter - qayta yuklash)"
	PromptPhone       = "Telefon raqam"
	PromptPayment     = "Chek fayli yo'li (Enter - yuborish)"
	PromptConfirmExit = "Ilovadan chiqmoqchimisiz?"
)

// Terminal is a line-oriented UI on a console.
type Terminal struct {
	in  *console.Reader
	out io.Writer
}

func NewTerminal(in *console.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

var _ UI = (*Terminal)(nil)

func (t *Terminal) Show(step domain.Step, v screens.View) {
	fmt.Fprintf(t.out, "\n%s  (%d/%d)\n", v.Title, int(step)+1, len(domain.Steps))
	fmt.Fprintln(t.out, strings.Repeat("-", 40))
	if v.Body != "" {
		fmt.Fprintln(t.out, v.Body)
	}
	for i, c := range v.Choices {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, c.Label())
	}
	if v.Preview != "" {
		fmt.Fprintf(t.out, "Chek: %s\n", v.Preview)
	}
	if v.ActionLabel != "" {
		if v.ActionEnabled {
			fmt.Fprintf(t.out, "[ %s ]\n", v.ActionLabel)
		} else {
			fmt.Fprintf(t.out, "( %s )\n", v.ActionLabel)
		}
	}
}

// Ask prints prompt and reads one trimmed line. It returns ctx's error as
// soon as ctx is done, even while waiting for input.
func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if t.in == nil {
		return "", io.EOF
	}
	fmt.Fprintf(t.out, "%s\n> ", prompt)
	line, err := t.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "q", "quit", "/quit":
		return "", ErrQuit
	}
	return line, nil
}
