package interfaces

import (
	"context"

	domaintypes "github.com/Umidjon1990/tolovnazorat-bot/internal/domain/types"
)

//go:generate mockgen -source=host.go -destination=../mocks/host.go -package=mocks

// TokenSource yields the identity token attached to every gateway call.
type TokenSource interface {
	IdentityToken() domaintypes.IdentityToken
}

// Notifier shows a single human-readable notice to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// Exiter terminates the mini-app session. Fire-and-forget.
type Exiter interface {
	Exit()
}

// HostBridge is the full capability set the host container offers.
type HostBridge interface {
	TokenSource
	Notifier
	Confirmer
	Exiter

	// Start runs the startup handshake; calls after the first are no-ops.
	Start()
	ClosingConfirmation() bool
	User() (domaintypes.HostUser, bool)
	Done() <-chan struct{}
}
