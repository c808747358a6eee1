package cli

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `{"success":true,"data":[
	{"id":3,"receivedAt":"2026-03-01T09:30:00Z","bookTitle":"Dune","bookAuthors":"Frank Herbert","status":"succeeded","addedBookId":7,"addedBookTitle":"Dune Messiah"},
	{"id":2,"receivedAt":"2026-02-01T09:30:00Z","bookTitle":"Emma","bookAuthors":"Jane Austen","status":"failed","addedBookId":null,"addedBookTitle":null}
]}`

func TestRequestsList(t *testing.T) {
	server, calls := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/requests": respond(http.StatusOK, listBody),
	})

	out, err := runCommand(t, server.URL, "requests", "list", "--status", "failed", "--limit", "10")
	require.NoError(t, err)

	for _, header := range []string{"ID", "RECEIVED", "TITLE", "AUTHORS", "STATUS", "ADDED BOOK"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "7 Dune Messiah")
	assert.Contains(t, out, "Jane Austen")
	assert.Equal(t, "limit=10&status=failed", (*calls)[0].query)
}

func TestRequestsListJSON(t *testing.T) {
	server, _ := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/requests": respond(http.StatusOK, listBody),
	})

	out, err := runCommand(t, server.URL, "-o", "json", "requests", "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[\n  {"))
	assert.Contains(t, out, `"bookTitle": "Dune"`)
}

func TestRequestsListRejectsInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "unknown_status",
			args: []string{"requests", "list", "--status", "done"},
			err:  `invalid status "done"`,
		},
		{
			name: "negative_limit",
			args: []string{"requests", "list", "--limit", "-1"},
			err:  "must not be negative",
		},
		{
			name: "unknown_output",
			args: []string{"-o", "yaml", "requests", "list"},
			err:  `invalid output format "yaml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, calls := newFakeServer(t, map[string]http.HandlerFunc{
				"/api/requests": respond(http.StatusOK, listBody),
			})

			_, err := runCommand(t, server.URL, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
			assert.Empty(t, *calls)
		})
	}
}

func TestRequestsGet(t *testing.T) {
	server, _ := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/requests/2": respond(http.StatusOK, `{"success":true,"data":{
			"id":2,"receivedAt":"2026-02-01T09:30:00Z","bookTitle":"Emma","bookAuthors":"Jane Austen",
			"requestBody":{"bookTitle":"Emma"},"status":"failed",
			"errorMessage":"Book not found from title/author search"}}`),
	})

	out, err := runCommand(t, server.URL, "requests", "get", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Emma")
	assert.Contains(t, out, "Book not found from title/author search")
	assert.Contains(t, out, `{"bookTitle":"Emma"}`)
	assert.Regexp(t, `Removable\s+│\s+false`, out)
}

func TestRequestsGetSucceeded(t *testing.T) {
	server, _ := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/requests/3": respond(http.StatusOK, `{"success":true,"data":{
			"id":3,"receivedAt":"2026-03-01T09:30:00Z","bookTitle":"Dune","bookAuthors":"Frank Herbert",
			"status":"succeeded","addedBookId":7,"addedBookTitle":"Dune","monitored":true}}`),
	})

	out, err := runCommand(t, server.URL, "requests", "get", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "7 Dune")
	assert.Regexp(t, `Removable\s+│\s+true`, out)
	assert.Regexp(t, `Monitored\s+│\s+true`, out)
}

func TestRequestsGetInvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-4"} {
		t.Run(arg, func(t *testing.T) {
			_, err := runCommand(t, "http://127.0.0.1:1", "requests", "get", "--", arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid request id")
		})
	}
}

func TestRequestsRetry(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "succeeded",
			body:     `{"success":true,"outcome":{"requestId":5,"status":"succeeded"}}`,
			expected: "request 5: retry succeeded\n",
		},
		{
			name:     "dispatched",
			body:     `{"success":true,"outcome":{"requestId":5,"status":"pending"}}`,
			expected: "request 5: retry dispatched\n",
		},
		{
			name:     "failed_again",
			body:     `{"success":false,"error":"Book not found from title/author search","outcome":{"requestId":5,"status":"failed"}}`,
			expected: "request 5: retry failed: Book not found from title/author search\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, calls := newFakeServer(t, map[string]http.HandlerFunc{
				"/api/requests/5/retry": respond(http.StatusOK, tt.body),
			})

			out, err := runCommand(t, server.URL, "requests", "retry", "5", "--idempotency-key", "k5")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, "k5", (*calls)[0].idempotencyKey)
		})
	}
}

func TestRequestsRemoveServerError(t *testing.T) {
	server, _ := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/requests/8/remove": respond(http.StatusBadRequest, `{"code":"failed_precondition","message":"request has no added book"}`),
	})

	_, err := runCommand(t, server.URL, "requests", "remove", "8")
	require.Error(t, err)
	assert.EqualError(t, err, "remove request 8 failed: failed_precondition: request has no added book")
}

func TestCaches(t *testing.T) {
	server, calls := newFakeServer(t, map[string]http.HandlerFunc{
		"/api/caches": respond(http.StatusOK, `{"success":true,"data":[{"id":"readarr","name":"Readarr catalog","stats":{"hits":12,"misses":3,"keys":4}}]}`),
		"/api/caches/readarr/flush": respond(http.StatusOK, `{"success":true,"data":{"id":"readarr","name":"Readarr catalog","stats":{"hits":0,"misses":0,"keys":0}}}`),
	})

	out, err := runCommand(t, server.URL, "caches", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Readarr catalog")
	assert.Contains(t, out, "12")

	out, err = runCommand(t, server.URL, "caches", "flush", "readarr")
	require.NoError(t, err)
	assert.Equal(t, "cache readarr flushed\n", out)
	assert.Equal(t, http.MethodPost, (*calls)[1].method)
}
