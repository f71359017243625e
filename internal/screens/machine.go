package screens

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/logger"
)

// State is where a screen's primary action stands.
type State int

const (
	Idle State = iota
	Submitting
	Advanced
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Advanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Outcome tells the flow what to do after an action.
type Outcome int

const (
	Stay Outcome = iota
	Advance
)

func (o Outcome) String() string {
	if o == Advance {
		return "advance"
	}
	return "stay"
}

// ErrAlreadyAdvanced is returned when an action runs on a finished screen.
var ErrAlreadyAdvanced = errors.New("screen already advanced")

// Deps are the collaborators a screen may use.
type Deps struct {
	Gateway  domain.Gateway
	Notifier domain.Notifier
	Exiter   domain.Exiter
	Log      *slog.Logger
	Now      func() time.Time
}

func (d Deps) logger() *slog.Logger {
	if d.Log == nil {
		return logger.Discard()
	}
	return d.Log
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

const submitKey = "submit"

// machine is the Idle/Submitting/Advanced core shared by all screens.
type machine struct {
	name     string
	notifier domain.Notifier
	log      *slog.Logger

	flight singleflight.Group
	mu     sync.Mutex
	state  State
}

func (m *machine) init(name string, d Deps) {
	m.name = name
	m.notifier = d.Notifier
	m.log = d.logger()
}

// State returns the current state of the primary action.
func (m *machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// submit runs action as the screen's primary action. A caller arriving while
// a previous invocation is in flight shares that invocation's result.
func (m *machine) submit(ctx context.Context, action func(ctx context.Context) error) (Outcome, error) {
	v, err, shared := m.flight.Do(submitKey, func() (any, error) {
		m.mu.Lock()
		if m.state == Advanced {
			m.mu.Unlock()
			return Stay, ErrAlreadyAdvanced
		}
		m.state = Submitting
		m.mu.Unlock()

		err := action(ctx)

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			m.state = Idle
			return Stay, err
		}
		m.state = Advanced
		return Advance, nil
	})
	if shared {
		m.log.DebugContext(ctx, "duplicate submit joined in-flight call", "screen", m.name)
	}
	return v.(Outcome), err
}

func (m *machine) notify(ctx context.Context, message string) {
	if m.notifier != nil {
		m.notifier.Notify(ctx, message)
	}
}

// View is what a presentation layer needs to draw a screen.
type View struct {
	Title         string
	Body          string
	Choices       []Choice
	Preview       string
	ActionLabel   string
	ActionEnabled bool
}

func actionLabel(state State, idle string) string {
	if state == Submitting {
		return MsgLoading
	}
	return idle
}
