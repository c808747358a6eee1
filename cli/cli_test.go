package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

// recordedCall is what the fake service saw.
type recordedCall struct {
	method         string
	path           string
	query          string
	idempotencyKey string
}

func newFakeServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *[]recordedCall) {
	t.Helper()

	calls := &[]recordedCall{}
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			*calls = append(*calls, recordedCall{
				method:         r.Method,
				path:           r.URL.Path,
				query:          r.URL.RawQuery,
				idempotencyKey: r.Header.Get(idempotencyHeader),
			})
			handler(w, r)
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, calls
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func runCommand(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	cmd := New()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--" + FlagServer, server}, args...))
	err := cmd.Execute()
	return out.String(), err
}
