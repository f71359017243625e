package types

// IdentityToken is the host-signed init data string that proves which chat
// user is driving the flow. An empty token means the host supplied none.
type IdentityToken string

// String returns the string form of the token.
func (t IdentityToken) String() string { return string(t) }

// Present reports whether the host supplied a token.
func (t IdentityToken) Present() bool { return t != "" }

// Ack is the confirmation the backend returns for write operations.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	// PaymentID is only set by the payment endpoint.
	PaymentID int64 `json:"payment_id,omitempty"`
}
