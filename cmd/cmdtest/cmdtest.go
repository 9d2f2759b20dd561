// Package cmdtest runs commands against a fake finance API in tests.
package cmdtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fjacquet/finance-cli/cmd/root"
	"fjacquet/finance-cli/internal/apiclient"
	"fjacquet/finance-cli/internal/config"
	"fjacquet/finance-cli/internal/container"
	"fjacquet/finance-cli/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// Request is a call received by the fake API
type Request struct {
	Method string
	Path   string
	Body   string
}

// Harness serves canned API responses and executes the root command
type Harness struct {
	Server *httptest.Server
	Logger *logging.MockLogger
	Now    time.Time

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Request
}

var initOnce sync.Once

// New starts a fake API and registers its shutdown with t
func New(t *testing.T, now time.Time) *Harness {
	t.Helper()
	initOnce.Do(root.Init)

	h := &Harness{
		Logger: logging.NewMockLogger(),
		Now:    now,
		routes: make(map[string]http.HandlerFunc),
	}
	h.Server = httptest.NewServer(http.HandlerFunc(h.serve))
	t.Cleanup(h.Server.Close)
	return h
}

func (h *Harness) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	h.mu.Lock()
	h.requests = append(h.requests, Request{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	fn, ok := h.routes[key]
	h.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
		return
	}
	fn(w, r)
}

// HandleFunc registers fn for "METHOD /api/path"
func (h *Harness) HandleFunc(method, path string, fn http.HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes[method+" "+path] = fn
}

// Handle answers "METHOD /api/path" with status and body encoded as JSON.
// A nil body sends no content.
func (h *Harness) Handle(method, path string, status int, body interface{}) {
	h.HandleFunc(method, path, func(w http.ResponseWriter, r *http.Request) {
		if body == nil {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

// Requests returns the calls received so far
func (h *Harness) Requests() []Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Request, len(h.requests))
	copy(out, h.requests)
	return out
}

// Find returns the first received call matching method and path
func (h *Harness) Find(method, path string) (Request, bool) {
	for _, r := range h.Requests() {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Request{}, false
}

// Run executes the root command with args, sub attached, and returns what
// it printed.
func (h *Harness) Run(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	attached := false
	for _, c := range root.Cmd.Commands() {
		if c == sub {
			attached = true
		}
	}
	if !attached {
		root.Cmd.AddCommand(sub)
	}

	flags, app, log := root.SharedFlags, root.AppContainer, root.Log
	t.Cleanup(func() {
		root.SharedFlags, root.AppContainer, root.Log = flags, app, log
	})

	resetFlags(root.Cmd)

	cfg := config.DefaultConfig()
	client := apiclient.NewClient(h.Server.URL+"/api", apiclient.WithLogger(h.Logger))
	c, err := container.NewContainer(cfg,
		container.WithLogger(h.Logger),
		container.WithAPI(client),
		container.WithClock(func() time.Time { return h.Now }))
	require.NoError(t, err)
	root.AppContainer = c

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs(args)
	err = root.Cmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag of cmd and its children back to its default,
// since cobra keeps flag values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
