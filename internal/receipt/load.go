package receipt

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
)

// MaxSize bounds how large a receipt image may be.
const MaxSize = 20 << 20

var (
	// ErrNotImage is returned when the picked file is not an image.
	ErrNotImage = errors.New("receipt is not an image")
	// ErrTooLarge is returned when the picked file exceeds MaxSize.
	ErrTooLarge = errors.New("receipt is too large")
	// ErrNothingPicked is returned when Pick gets no usable path.
	ErrNothingPicked = errors.New("no receipt picked")
)

// Pick loads the first non-blank path and ignores the rest, mirroring a file
// input that only keeps its first selection.
func Pick(paths ...string) (domain.Receipt, error) {
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			return Load(p)
		}
	}
	return domain.Receipt{}, ErrNothingPicked
}

// Load reads an image file from disk.
func Load(path string) (domain.Receipt, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Receipt{}, err
	}
	defer f.Close()
	return Read(filepath.Base(path), f)
}

// Read builds a receipt from r, sniffing the content type from the bytes.
func Read(name string, r io.Reader) (domain.Receipt, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return domain.Receipt{}, err
	}
	if len(data) > MaxSize {
		Wipe(data)
		return domain.Receipt{}, fmt.Errorf("%s: %w", name, ErrTooLarge)
	}
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		Wipe(data)
		return domain.Receipt{}, fmt.Errorf("%s (%s): %w", name, mimeType, ErrNotImage)
	}
	return domain.Receipt{
		Name:     name,
		MimeType: mimeType,
		Data:     data,
		Preview:  Preview(data),
	}, nil
}
