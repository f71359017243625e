package hostbridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/hostbridge/initdata"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/console"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/logger"
)

// Lifecycle is what the startup handshake has told the host so far.
type Lifecycle struct {
	Ready               bool
	Expanded            bool
	ClosingConfirmation bool
}

// Terminal is a console-backed host bridge.
type Terminal struct {
	token domain.IdentityToken
	user  *domain.HostUser
	in    *console.Reader
	out   io.Writer
	log   *slog.Logger

	startOnce sync.Once
	exitOnce  sync.Once
	done      chan struct{}

	mu    sync.Mutex
	state Lifecycle
}

// Options configures a Terminal bridge.
type Options struct {
	InitData string
	In       *console.Reader
	Out      io.Writer
	Log      *slog.Logger
}

// New returns a bridge holding opts.InitData as the identity token. Init data
// that fails to parse is still used as the token; only User is unavailable.
func New(opts Options) *Terminal {
	t := &Terminal{
		token: domain.IdentityToken(strings.TrimSpace(opts.InitData)),
		in:    opts.In,
		out:   opts.Out,
		log:   opts.Log,
		done:  make(chan struct{}),
	}
	if t.out == nil {
		t.out = io.Discard
	}
	if t.log == nil {
		t.log = logger.Discard()
	}
	if t.token.Present() {
		data, err := initdata.Parse(t.token.String())
		if err != nil {
			t.log.Warn("init data unreadable", "error", err)
		} else {
			t.user = data.User
		}
	}
	return t
}

var _ domain.HostBridge = (*Terminal)(nil)

// Start signals readiness, expands the viewport and enables exit confirmation.
func (t *Terminal) Start() {
	t.startOnce.Do(func() {
		t.mu.Lock()
		t.state = Lifecycle{Ready: true, Expanded: true, ClosingConfirmation: true}
		t.mu.Unlock()
		t.log.Info("host ready",
			"expanded", true,
			"closing_confirmation", true,
			"identity", t.token.Present(),
		)
	})
}

// State returns the handshake progress.
func (t *Terminal) State() Lifecycle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// ClosingConfirmation reports whether exiting should be confirmed first.
func (t *Terminal) ClosingConfirmation() bool { return t.State().ClosingConfirmation }

func (t *Terminal) IdentityToken() domain.IdentityToken { return t.token }

// User returns the chat profile carried in the init data, if any.
func (t *Terminal) User() (domain.HostUser, bool) {
	if t.user == nil {
		return domain.HostUser{}, false
	}
	return *t.user, true
}

func (t *Terminal) Notify(ctx context.Context, message string) {
	fmt.Fprintf(t.out, "\n[!] %s\n\n", message)
}

// Confirm asks a yes/no question. Anything but an explicit yes is a no; a
// cancelled ctx ends the wait with its error.
func (t *Terminal) Confirm(ctx context.Context, message string) (bool, error) {
	if t.in == nil {
		return false, nil
	}
	fmt.Fprintf(t.out, "%s [y/N]: ", message)
	line, err := t.in.ReadLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "ha":
		return true, nil
	default:
		return false, nil
	}
}

// Exit ends the session. Calls after the first are no-ops.
func (t *Terminal) Exit() {
	t.exitOnce.Do(func() {
		t.log.Info("host closed")
		close(t.done)
	})
}

// Done is closed once Exit has been called.
func (t *Terminal) Done() <-chan struct{} { return t.done }
