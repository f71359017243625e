package screens

import (
	"context"
	"errors"
	"sync"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/gateway"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/receipt"
)

// ErrNoReceipt is returned when submitting without a picked receipt.
var ErrNoReceipt = errors.New("no receipt selected")

// Payment uploads the receipt image and ends the session.
type Payment struct {
	machine
	deps Deps

	fileMu sync.Mutex
	file   domain.Receipt
}

// NewPayment returns the last screen of the flow.
func NewPayment(d Deps) *Payment {
	p := &Payment{deps: d}
	p.init("payment", d)
	return p
}

// Choose keeps the first of files as the receipt. Calling it with no files
// leaves the current pick untouched.
func (p *Payment) Choose(files ...domain.Receipt) {
	if len(files) == 0 {
		return
	}
	p.fileMu.Lock()
	defer p.fileMu.Unlock()
	p.file = files[0]
}

// Preview returns the local reference of the picked receipt, or "".
func (p *Payment) Preview() string {
	p.fileMu.Lock()
	defer p.fileMu.Unlock()
	return p.file.Preview
}

func (p *Payment) picked() (domain.Receipt, bool) {
	p.fileMu.Lock()
	defer p.fileMu.Unlock()
	return p.file, !p.file.Empty()
}

func (p *Payment) View() View {
	state := p.State()
	r, ok := p.picked()
	v := View{
		Title:         MsgPaymentTitle,
		Body:          MsgPaymentBody + "\n\n" + MsgPaymentPick,
		ActionLabel:   actionLabel(state, MsgPaymentAction),
		ActionEnabled: ok && state != Submitting,
	}
	if ok {
		v.Body = MsgPaymentBody + "\n\n" + MsgPaymentPicked
		v.Preview = r.Preview
	}
	return v
}

// Submit uploads the receipt. On success it confirms, wipes the receipt and
// exits the app; there is no further screen.
func (p *Payment) Submit(ctx context.Context) (Outcome, error) {
	return p.submit(ctx, func(ctx context.Context) error {
		r, ok := p.picked()
		if !ok {
			p.notify(ctx, MsgPaymentNoReceipt)
			return ErrNoReceipt
		}
		ack, err := p.deps.Gateway.SubmitPayment(ctx, r.Data, r.MimeType)
		if err != nil {
			p.notify(ctx, MsgGenericFailPrefix+gateway.Reason(err))
			return err
		}
		p.log.InfoContext(ctx, "payment submitted", "payment_id", ack.PaymentID, "preview", r.Preview)
		p.notify(ctx, MsgPaymentSubmitted)

		p.fileMu.Lock()
		receipt.Discard(&p.file)
		p.fileMu.Unlock()

		if p.deps.Exiter != nil {
			p.deps.Exiter.Exit()
		}
		return nil
	})
}
