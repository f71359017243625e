package receipt

import (
	"crypto/subtle"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
)

// Wipe zeroes receipt image bytes once they are no longer needed, either
// after upload or when a picked file is refused.
func Wipe(data []byte) {
	if len(data) > 0 {
		subtle.ConstantTimeCopy(1, data, make([]byte, len(data)))
	}
}

// Discard wipes the receipt bytes and resets it to the empty receipt.
func Discard(r *domain.Receipt) {
	if r == nil {
		return
	}
	Wipe(r.Data)
	*r = domain.Receipt{}
}
