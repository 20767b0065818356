// Package testutil provides shared test utilities for CLI and feed testing
// across packages. This enables co-located tests while maintaining consistent
// test infrastructure.
package testutil

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"duedash/cmd/duedash/cmd"
)

// CSV joins rows into a CSV document with a trailing newline, the shape a
// published spreadsheet export serves.
func CSV(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

// TaskHeader is the column header row the normalizer expects.
const TaskHeader = "Clave,Tipo de Incidencia,Resumen,Estado,Persona asignada,Start date,Fecha de inicio deducida,Fecha de vencimiento,Fecha de vencimiento deducida,Issue color,Gas"

// NewFeedServer starts an HTTP server that answers every request with body.
// The server is shut down when the test finishes.
func NewFeedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// NewFailingServer starts an HTTP server that answers every request with the
// given status code and no body.
func NewFailingServer(t *testing.T, status int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// CLITest provides a test helper for running CLI commands in isolation.
type CLITest struct {
	t   *testing.T
	cfg *cmd.Config
}

// NewCLITest creates a new CLI test helper with an isolated config file
// pointing at the given feed URL.
func NewCLITest(t *testing.T, feedURL string) *CLITest {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := tmpDir + "/config.yaml"

	// Minimal config for isolation: no proxy retry, short refresh.
	content := fmt.Sprintf("feed:\n  url: %q\n  proxy_url: \"\"\n  refresh_seconds: 1\ntimezone: \"UTC\"\n", feedURL)
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create config file: %v", err)
	}

	cfg := &cmd.Config{
		ConfigPath: configPath,
		Once:       true,
	}

	return &CLITest{
		t:   t,
		cfg: cfg,
	}
}

// Config returns the injected CLI config for further customization.
func (c *CLITest) Config() *cmd.Config {
	return c.cfg
}

// ConfigPath returns the path of the isolated config file.
func (c *CLITest) ConfigPath() string {
	return c.cfg.ConfigPath
}

// Execute runs the CLI with the given args and returns output and exit code.
func (c *CLITest) Execute(args ...string) (stdout, stderr string, exitCode int) {
	c.t.Helper()

	var stdoutBuf, stderrBuf bytes.Buffer
	exitCode = cmd.Execute(args, &stdoutBuf, &stderrBuf, c.cfg)
	return stdoutBuf.String(), stderrBuf.String(), exitCode
}

// MustExecute runs the CLI and fails the test on a non-zero exit code.
func (c *CLITest) MustExecute(args ...string) string {
	c.t.Helper()

	stdout, stderr, exitCode := c.Execute(args...)
	if exitCode != 0 {
		c.t.Fatalf("command failed with exit code %d: stderr=%s", exitCode, stderr)
	}
	return stdout
}

// ExecuteAndFail runs the CLI and fails the test if it succeeds.
func (c *CLITest) ExecuteAndFail(args ...string) (stdout, stderr string) {
	c.t.Helper()

	stdout, stderr, exitCode := c.Execute(args...)
	if exitCode == 0 {
		c.t.Fatalf("expected non-zero exit code, got 0: stdout=%s", stdout)
	}
	return stdout, stderr
}
