// Package initdata parses and signs the host's init data string, the
// identity token a chat-platform mini app receives at launch.
//
// The string is URL query encoded. Its "hash" field is
// HMAC-SHA256(secret, data-check-string) where secret is
// HMAC-SHA256(key="WebAppData", msg=botToken) and the data-check-string is
// every other field as "key=value", sorted by key and joined with '\n'.
package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
)

var (
	ErrMalformed   = errors.New("init data is malformed")
	ErrMissingHash = errors.New("init data has no hash")
	ErrSignature   = errors.New("init data signature mismatch")
	ErrExpired     = errors.New("init data is too old")
)

// InitData is the parsed view of an identity token.
type InitData struct {
	QueryID  string
	User     *domain.HostUser
	AuthDate time.Time
	Hash     string
	Raw      string
}

// Parse decodes raw without checking its signature.
func Parse(raw string) (InitData, error) {
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return InitData{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := InitData{
		QueryID: vals.Get("query_id"),
		Hash:    vals.Get("hash"),
		Raw:     raw,
	}
	if u := vals.Get("user"); u != "" {
		var user domain.HostUser
		if err := json.Unmarshal([]byte(u), &user); err != nil {
			return InitData{}, fmt.Errorf("%w: user: %v", ErrMalformed, err)
		}
		out.User = &user
	}
	if d := vals.Get("auth_date"); d != "" {
		sec, err := strconv.ParseInt(d, 10, 64)
		if err != nil {
			return InitData{}, fmt.Errorf("%w: auth_date: %v", ErrMalformed, err)
		}
		out.AuthDate = time.Unix(sec, 0).UTC()
	}
	return out, nil
}

// Sign computes the hash for vals under botToken and returns the encoded
// init data string. Any existing hash in vals is replaced.
func Sign(botToken string, vals url.Values) string {
	signed := url.Values{}
	for k, v := range vals {
		if k == "hash" {
			continue
		}
		signed[k] = append([]string(nil), v...)
	}
	signed.Set("hash", hex.EncodeToString(digest(botToken, signed)))
	return signed.Encode()
}

// NewUserValues builds the fields of a fresh init data string for user.
func NewUserValues(user domain.HostUser, queryID string, authDate time.Time) (url.Values, error) {
	b, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	vals := url.Values{}
	vals.Set("user", string(b))
	vals.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	if queryID != "" {
		vals.Set("query_id", queryID)
	}
	return vals, nil
}

// Verify checks the signature of raw under botToken. A positive maxAge also
// rejects tokens whose auth_date is older than maxAge relative to now.
func Verify(botToken, raw string, maxAge time.Duration, now time.Time) (InitData, error) {
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return InitData{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	got := vals.Get("hash")
	if got == "" {
		return InitData{}, ErrMissingHash
	}
	want := digest(botToken, vals)
	gotBytes, err := hex.DecodeString(got)
	if err != nil || !hmac.Equal(gotBytes, want) {
		return InitData{}, ErrSignature
	}
	data, err := Parse(raw)
	if err != nil {
		return InitData{}, err
	}
	if maxAge > 0 && !data.AuthDate.IsZero() && now.Sub(data.AuthDate) > maxAge {
		return data, ErrExpired
	}
	return data, nil
}

// DataCheckString renders every field except hash as sorted key=value lines.
func DataCheckString(vals url.Values) string {
	keys := make([]string, 0, len(vals))
	for k := range vals {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+vals.Get(k))
	}
	return strings.Join(lines, "\n")
}

func digest(botToken string, vals url.Values) []byte {
	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(DataCheckString(vals)))
	return mac.Sum(nil)
}
