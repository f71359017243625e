package types

// Receipt is a payment receipt image picked by the user.
//
// Preview is a short local reference to the picked bytes, shown back to the
// user before submission. Data is wiped once the backend accepts it.
type Receipt struct {
	Name     string
	MimeType string
	Data     []byte
	Preview  string
}

// Empty reports whether no file content is attached.
func (r Receipt) Empty() bool { return len(r.Data) == 0 }
