package screens

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/gateway"
)

// ErrInvalidPhone is returned for input that is not an optional '+'
// followed by 9 to 15 digits.
var ErrInvalidPhone = errors.New("invalid phone number")

var phonePattern = regexp.MustCompile(`^\+?\d{9,15}$`)

// ValidatePhone trims s and checks it against the phone pattern. It returns
// the trimmed number on success.
func ValidatePhone(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !phonePattern.MatchString(s) {
		return "", ErrInvalidPhone
	}
	return s, nil
}

// Phone collects the user's phone number.
type Phone struct {
	machine
	deps Deps
}

// NewPhone returns the phone number screen.
func NewPhone(d Deps) *Phone {
	p := &Phone{deps: d}
	p.init("phone", d)
	return p
}

func (p *Phone) View() View {
	state := p.State()
	return View{
		Title:         MsgPhoneTitle,
		Body:          MsgPhoneBody,
		ActionLabel:   actionLabel(state, MsgPhoneAction),
		ActionEnabled: state != Submitting,
	}
}

// Submit validates input locally and saves it.
func (p *Phone) Submit(ctx context.Context, input string) (Outcome, error) {
	return p.submit(ctx, func(ctx context.Context) error {
		phone, err := ValidatePhone(input)
		if err != nil {
			p.notify(ctx, MsgPhoneInvalid)
			return err
		}
		if _, err := p.deps.Gateway.SavePhone(ctx, phone); err != nil {
			p.notify(ctx, MsgGenericFailPrefix+gateway.Reason(err))
			return err
		}
		p.log.InfoContext(ctx, "phone saved")
		return nil
	})
}
