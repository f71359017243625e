package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/app"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"detail":"Missing Authorization header"}`)
			return
		}
		switch r.URL.Path {
		case "/api/courses":
			_, _ = io.WriteString(w, `{"courses":[{"id":1,"name":"A1 Standard","emoji":"📘","type":"standard"},{"id":2,"name":"A1 Premium","emoji":"⭐","type":"premium"}]}`)
		case "/api/user/me":
			_, _ = io.WriteString(w, `{"user_id":7,"username":"ali","full_name":"Ali Valiyev","phone":"+998901234567","course_name":"A1 Premium","agreed_at":1700000000,"expires_at":1702592000}`)
		case "/api/user/subscription":
			_, _ = io.WriteString(w, `{"is_active":true,"expires_at":1702592000,"groups":[{"group_id":-1001,"expires_at":1702592000}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	root := NewRootCmd(app.Console{In: strings.NewReader(stdin), Out: out, Err: io.Discard})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCourses(t *testing.T) {
	srv := newBackend(t)

	out, err := execute(t, "", "courses", "--api-url", srv.URL+"/api", "--init-data", "query_id=1&hash=ab")

	require.NoError(t, err)
	assert.Equal(t, "1) 📘 A1 Standard\n2) ⭐ A1 Premium [PREMIUM]\n", out)
}

func TestCoursesWithoutIdentityFails(t *testing.T) {
	srv := newBackend(t)

	_, err := execute(t, "", "courses", "--api-url", srv.URL+"/api")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing Authorization header")
}

func TestMePrintsYAML(t *testing.T) {
	srv := newBackend(t)

	out, err := execute(t, "", "me", "--api-url", srv.URL+"/api", "--init-data", "x")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 7, got["user_id"])
	assert.Equal(t, "A1 Premium", got["course_name"])
}

func TestSubscriptionPrintsYAML(t *testing.T) {
	srv := newBackend(t)

	out, err := execute(t, "", "subscription", "--api-url", srv.URL+"/api", "--init-data", "x")

	require.NoError(t, err)
	assert.Contains(t, out, "is_active: true\n")
	assert.Contains(t, out, "group_id: -1001\n")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	_, err := execute(t, "", "courses", "--api-url", "not-a-url")

	assert.ErrorIs(t, err, app.ErrInvalidConfig)
}

func TestInitDataSignThenInspect(t *testing.T) {
	signed, err := execute(t, "", "initdata", "sign",
		"--bot-token", "123:abc",
		"--user-id", "42",
		"--username", "ali",
		"--query-id", "AAF",
	)
	require.NoError(t, err)
	signed = strings.TrimSpace(signed)
	assert.Contains(t, signed, "hash=")

	out, err := execute(t, "", "initdata", "inspect", signed, "--bot-token", "123:abc")
	require.NoError(t, err)

	var got struct {
		Verified bool   `yaml:"verified"`
		QueryID  string `yaml:"query_id"`
		User     struct {
			ID       int64  `yaml:"id"`
			Username string `yaml:"username"`
		} `yaml:"user"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.True(t, got.Verified)
	assert.Equal(t, "AAF", got.QueryID)
	assert.Equal(t, int64(42), got.User.ID)
	assert.Equal(t, "ali", got.User.Username)
}

func TestInitDataInspectRejectsWrongToken(t *testing.T) {
	signed, err := execute(t, "", "initdata", "sign", "--bot-token", "123:abc", "--user-id", "1")
	require.NoError(t, err)

	_, err = execute(t, "", "initdata", "inspect", strings.TrimSpace(signed), "--bot-token", "999:zzz")

	assert.Error(t, err)
}

func TestInitDataInspectUsesConfiguredToken(t *testing.T) {
	out, err := execute(t, "", "initdata", "inspect", "--init-data", "query_id=Q1&auth_date=1&hash=00")

	require.NoError(t, err)
	assert.Contains(t, out, "verified: false\n")
	assert.Contains(t, out, "query_id: Q1\n")
}

func TestRunLeavingEarlyIsNotAnError(t *testing.T) {
	srv := newBackend(t)

	out, err := execute(t, "q\nha\n", "run", "--api-url", srv.URL+"/api", "--init-data", "x")

	require.NoError(t, err)
	assert.Contains(t, out, "SHARTNOMA")
}
