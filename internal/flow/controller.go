package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/logger"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/metrics"
)

var (
	// ErrNotCurrent is returned when advancing from a step that is not current.
	ErrNotCurrent = errors.New("step is not current")
	// ErrTerminal is returned when advancing past the payment step.
	ErrTerminal = errors.New("payment is the last step")
)

var routes = map[string]domain.Step{
	"/":        domain.StepContract,
	"/courses": domain.StepCourseSelect,
	"/phone":   domain.StepPhone,
	"/payment": domain.StepPayment,
}

// PathOf returns the route of step.
func PathOf(step domain.Step) string {
	switch step {
	case domain.StepCourseSelect:
		return "/courses"
	case domain.StepPhone:
		return "/phone"
	case domain.StepPayment:
		return "/payment"
	default:
		return "/"
	}
}

// Resolve maps a location to its step. Anything unrecognised is the contract.
func Resolve(location string) domain.Step {
	p := strings.TrimSpace(location)
	if u, err := url.Parse(p); err == nil {
		p = u.Path
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if step, ok := routes[p]; ok {
		return step
	}
	return domain.StepContract
}

// Controller holds the current step of one onboarding session.
type Controller struct {
	log     *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	current domain.Step
	reached domain.Step
}

// NewController starts a session on the contract step.
func NewController(log *slog.Logger, m *metrics.Metrics) *Controller {
	if log == nil {
		log = logger.Discard()
	}
	return &Controller{log: log, metrics: m, current: domain.StepContract, reached: domain.StepContract}
}

// Current returns the step being shown.
func (c *Controller) Current() domain.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Reached returns the furthest step this session has unlocked.
func (c *Controller) Reached() domain.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reached
}

// Path returns the route of the current step.
func (c *Controller) Path() string { return PathOf(c.Current()) }

// Navigate moves to the step behind location. Earlier steps may be revisited;
// a location past the furthest unlocked step lands on that step instead.
func (c *Controller) Navigate(location string) domain.Step {
	target := Resolve(location)

	c.mu.Lock()
	defer c.mu.Unlock()
	if target > c.reached {
		c.log.Debug("navigation past unlocked step redirected",
			"location", location,
			"target", target.String(),
			"reached", c.reached.String(),
		)
		target = c.reached
	}
	c.moveLocked(target)
	return target
}

// Advance moves one step forward after from's screen succeeded.
func (c *Controller) Advance(from domain.Step) (domain.Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if from != c.current {
		return c.current, fmt.Errorf("advance from %s while on %s: %w", from, c.current, ErrNotCurrent)
	}
	if from == domain.StepPayment {
		return c.current, ErrTerminal
	}
	next := from + 1
	if next > c.reached {
		c.reached = next
	}
	c.moveLocked(next)
	return next, nil
}

func (c *Controller) moveLocked(to domain.Step) {
	if to == c.current {
		return
	}
	c.log.Info("step changed", "from", c.current.String(), "to", to.String())
	c.metrics.IncrementTransition(c.current.String(), to.String())
	c.current = to
}
