package screens

import (
	"context"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/gateway"
)

// Contract shows the agreement and records its acceptance time.
type Contract struct {
	machine
	deps Deps
}

// NewContract returns the first screen of the flow.
func NewContract(d Deps) *Contract {
	c := &Contract{deps: d}
	c.init("contract", d)
	return c
}

// Text returns the fixed agreement text.
func (c *Contract) Text() string { return AgreementText }

func (c *Contract) View() View {
	state := c.State()
	return View{
		Title:         MsgContractTitle,
		Body:          AgreementText,
		ActionLabel:   actionLabel(state, MsgContractAction),
		ActionEnabled: state != Submitting,
	}
}

// Accept registers the agreement with the current Unix time.
func (c *Contract) Accept(ctx context.Context) (Outcome, error) {
	return c.submit(ctx, func(ctx context.Context) error {
		if _, err := c.deps.Gateway.RegisterAgreement(ctx, c.deps.now().Unix()); err != nil {
			c.notify(ctx, MsgContractFailed+gateway.Reason(err))
			return err
		}
		c.log.InfoContext(ctx, "agreement accepted")
		return nil
	})
}
