package flow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/logger"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/receipt"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/screens"
)

// ErrAborted is returned by Run when the user leaves before paying.
var ErrAborted = errors.New("onboarding left before payment")

// UI draws screens and collects one line of input at a time. Ask returns
// ErrQuit when the user asks to leave and io.EOF when input is exhausted.
type UI interface {
	Show(step domain.Step, v screens.View)
	Ask(ctx context.Context, prompt string) (string, error)
}

// Config holds a Runner's collaborators.
type Config struct {
	Controller *Controller
	Host       domain.HostBridge
	Gateway    domain.Gateway
	UI         UI
	Log        *slog.Logger
	Now        func() time.Time

	// LoadReceipt reads picked files. Defaults to receipt.Pick.
	LoadReceipt func(paths ...string) (domain.Receipt, error)
}

// Runner walks one session through the steps.
type Runner struct {
	ctrl *Controller
	host domain.HostBridge
	ui   UI
	deps screens.Deps
	load func(paths ...string) (domain.Receipt, error)
	log  *slog.Logger
}

func NewRunner(c Config) *Runner {
	log := c.Log
	if log == nil {
		log = logger.Discard()
	}
	ctrl := c.Controller
	if ctrl == nil {
		ctrl = NewController(log, nil)
	}
	load := c.LoadReceipt
	if load == nil {
		load = receipt.Pick
	}
	return &Runner{
		ctrl: ctrl,
		host: c.Host,
		ui:   c.UI,
		deps: screens.Deps{
			Gateway:  c.Gateway,
			Notifier: c.Host,
			Exiter:   c.Host,
			Log:      log,
			Now:      c.Now,
		},
		load: load,
		log:  log,
	}
}

// Run performs the startup handshake, opens the step behind start and drives
// the flow until the host exits. It returns nil once the payment went
// through, ErrAborted if the user left, or the context's error.
func (r *Runner) Run(ctx context.Context, start string) error {
	r.host.Start()
	if u, ok := r.host.User(); ok {
		r.log.InfoContext(ctx, "session started", "user_id", u.ID, "username", u.Username)
	}
	r.ctrl.Navigate(start)

	for {
		select {
		case <-r.host.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		switch r.ctrl.Current() {
		case domain.StepContract:
			err = r.contract(ctx)
		case domain.StepCourseSelect:
			err = r.courseSelect(ctx)
		case domain.StepPhone:
			err = r.phone(ctx)
		case domain.StepPayment:
			err = r.payment(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			if r.leave(ctx) {
				return ErrAborted
			}
		case errors.Is(err, io.EOF):
			r.host.Exit()
			return ErrAborted
		default:
			return err
		}
	}
}

func (r *Runner) contract(ctx context.Context) error {
	s := screens.NewContract(r.deps)
	for {
		r.ui.Show(domain.StepContract, s.View())
		line, moved, err := r.read(ctx, PromptContract)
		if err != nil || moved {
			return err
		}
		if line != "" {
			continue
		}
		out, err := s.Accept(ctx)
		if r.settle(ctx, domain.StepContract, out, err) {
			return nil
		}
	}
}

func (r *Runner) courseSelect(ctx context.Context) error {
	s := screens.NewCourseSelect(r.deps)
	_ = s.Enter(ctx)
	for {
		v := s.View()
		r.ui.Show(domain.StepCourseSelect, v)
		line, moved, err := r.read(ctx, PromptCourse)
		if err != nil || moved {
			return err
		}
		if line == "" {
			if len(v.Choices) == 0 {
				_ = s.Enter(ctx)
			}
			continue
		}
		out, err := s.Select(ctx, choiceName(v.Choices, line))
		if r.settle(ctx, domain.StepCourseSelect, out, err) {
			return nil
		}
	}
}

func (r *Runner) phone(ctx context.Context) error {
	s := screens.NewPhone(r.deps)
	for {
		r.ui.Show(domain.StepPhone, s.View())
		line, moved, err := r.read(ctx, PromptPhone)
		if err != nil || moved {
			return err
		}
		out, err := s.Submit(ctx, line)
		if r.settle(ctx, domain.StepPhone, out, err) {
			return nil
		}
	}
}

func (r *Runner) payment(ctx context.Context) error {
	s := screens.NewPayment(r.deps)
	for {
		r.ui.Show(domain.StepPayment, s.View())
		line, moved, err := r.read(ctx, PromptPayment)
		if err != nil || moved {
			return err
		}
		if line != "" {
			picked, err := r.load(splitPaths(line)...)
			if err != nil {
				r.host.Notify(ctx, screens.MsgGenericFailPrefix+err.Error())
				continue
			}
			s.Choose(picked)
			continue
		}
		out, err := s.Submit(ctx)
		if r.settle(ctx, domain.StepPayment, out, err) {
			return nil
		}
	}
}

// read asks for a line. "go <location>" moves the session to the step behind
// location; moved reports that the current screen must be dropped. Any other
// line, including one that looks like a path, is input for the screen. A
// location resolving to the current step is ignored.
func (r *Runner) read(ctx context.Context, prompt string) (line string, moved bool, err error) {
	for {
		line, err = r.ui.Ask(ctx, prompt)
		if err != nil {
			return "", false, err
		}
		line = strings.TrimSpace(line)
		location, ok := goTarget(line)
		if !ok {
			return line, false, nil
		}
		from := r.ctrl.Current()
		to := r.ctrl.Navigate(location)
		r.log.DebugContext(ctx, "navigate", "location", location, "from", from.String(), "to", to.String())
		if to != from {
			return "", true, nil
		}
	}
}

// goTarget extracts the location of a "go <location>" command.
func goTarget(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.EqualFold(fields[0], GoCommand) {
		return "", false
	}
	if len(fields) == 1 {
		return "/", true
	}
	return strings.Join(fields[1:], " "), true
}

// settle reports whether the screen is finished. Failures keep it mounted;
// results arriving after ctx is cancelled are ignored.
func (r *Runner) settle(ctx context.Context, from domain.Step, out screens.Outcome, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if err != nil {
		r.log.DebugContext(ctx, "action failed", "step", from.String(), "error", err)
		return false
	}
	if out != screens.Advance {
		return false
	}
	if from == domain.StepPayment {
		return true
	}
	if _, err := r.ctrl.Advance(from); err != nil {
		r.log.WarnContext(ctx, "advance refused", "step", from.String(), "error", err)
	}
	return true
}

// leave exits the host, asking first when closing confirmation is on.
func (r *Runner) leave(ctx context.Context) bool {
	if r.host.ClosingConfirmation() {
		ok, err := r.host.Confirm(ctx, PromptConfirmExit)
		if err != nil {
			r.log.WarnContext(ctx, "exit confirmation failed", "error", err)
			return false
		}
		if !ok {
			return false
		}
	}
	r.host.Exit()
	return true
}

// choiceName resolves a 1-based index into the course name; anything else is
// taken as the name itself.
func choiceName(choices []screens.Choice, input string) string {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1].Course.Name
	}
	return input
}

func splitPaths(line string) []string {
	parts := strings.Split(line, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
