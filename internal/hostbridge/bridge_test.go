package hostbridge_test

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/hostbridge"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/hostbridge/initdata"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/console"
)

func TestStart_RunsHandshakeOnce(t *testing.T) {
	b := hostbridge.New(hostbridge.Options{})
	assert.Equal(t, hostbridge.Lifecycle{}, b.State())
	assert.False(t, b.ClosingConfirmation())

	b.Start()
	b.Start()

	assert.Equal(t, hostbridge.Lifecycle{Ready: true, Expanded: true, ClosingConfirmation: true}, b.State())
	assert.True(t, b.ClosingConfirmation())
}

func TestIdentityToken(t *testing.T) {
	vals, err := initdata.NewUserValues(domain.HostUser{ID: 5, Username: "zarina"}, "", time.Unix(1, 0))
	require.NoError(t, err)
	raw := initdata.Sign("bot:token", vals)

	b := hostbridge.New(hostbridge.Options{InitData: "  " + raw + "\n"})

	assert.Equal(t, domain.IdentityToken(raw), b.IdentityToken())
	user, ok := b.User()
	require.True(t, ok)
	assert.Equal(t, "zarina", user.Username)
}

func TestIdentityToken_Absent(t *testing.T) {
	b := hostbridge.New(hostbridge.Options{})

	assert.False(t, b.IdentityToken().Present())
	_, ok := b.User()
	assert.False(t, ok)
}

func TestUnparseableInitDataStillUsedAsToken(t *testing.T) {
	raw := "user=" + url.QueryEscape("{broken")
	b := hostbridge.New(hostbridge.Options{InitData: raw})

	assert.Equal(t, domain.IdentityToken(raw), b.IdentityToken())
	_, ok := b.User()
	assert.False(t, ok)
}

func TestNotifyAndConfirm(t *testing.T) {
	var out bytes.Buffer
	b := hostbridge.New(hostbridge.Options{
		In:  console.NewReader(strings.NewReader("ha\nno\n")),
		Out: &out,
	})
	ctx := context.Background()

	b.Notify(ctx, "Telefon raqam noto'g'ri formatda")
	assert.Contains(t, out.String(), "Telefon raqam noto'g'ri formatda")

	yes, err := b.Confirm(ctx, "Chiqasizmi?")
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = b.Confirm(ctx, "Chiqasizmi?")
	require.NoError(t, err)
	assert.False(t, yes)

	// Input exhausted.
	yes, err = b.Confirm(ctx, "Chiqasizmi?")
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestConfirm_StopsWaitingOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	b := hostbridge.New(hostbridge.Options{In: console.NewReader(pr)})
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan struct{})
	var (
		yes bool
		err error
	)
	go func() {
		defer close(done)
		yes, err = b.Confirm(ctx, "Chiqasizmi?")
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Confirm still waiting after cancel")
	}
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, yes)
}

func TestExit_Idempotent(t *testing.T) {
	b := hostbridge.New(hostbridge.Options{})

	select {
	case <-b.Done():
		t.Fatal("done before exit")
	default:
	}

	b.Exit()
	assert.NotPanics(t, b.Exit)

	select {
	case <-b.Done():
	default:
		t.Fatal("exit did not close done")
	}
}
