package commands

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/swaggerdoc/internal/testutil"
)

// captureStdout runs fn while capturing os.Stdout and returns the output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		_ = w.Close()
		os.Stdout = old
	}()

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

// withStdin replaces os.Stdin with data for the duration of the test.
func withStdin(t *testing.T, data []byte) {
	t.Helper()
	path := testutil.WriteTempFile(t, "stdin", data)
	f, err := os.Open(path)
	require.NoError(t, err)
	old := os.Stdin
	os.Stdin = f
	t.Cleanup(func() {
		os.Stdin = old
		_ = f.Close()
	})
}

func petstorePath(t *testing.T) string {
	t.Helper()
	return testutil.WriteTempFile(t, testutil.PetstoreFile, testutil.Petstore(t))
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"markdown is for rendering only", "markdown", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			assert.Equal(t, tt.wantErr, err != nil, "ValidateOutputFormat(%q) error = %v", tt.format, err)
		})
	}
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestLoadSpec(t *testing.T) {
	repo, err := LoadSpec(context.Background(), petstorePath(t), 0, NewLogger(&bytes.Buffer{}, false))
	require.NoError(t, err)
	assert.Equal(t, "2.0", repo.Version())

	_, err = LoadSpec(context.Background(), "/nonexistent/api.yaml", 0, NewLogger(&bytes.Buffer{}, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading /nonexistent/api.yaml")
}

func TestLoadSpec_Stdin(t *testing.T) {
	withStdin(t, testutil.PetstoreOAS3(t))

	repo, err := LoadSpec(context.Background(), StdinFilePath, 0, NewLogger(&bytes.Buffer{}, false))
	require.NoError(t, err)
	assert.Equal(t, "<stdin>", repo.Source())
	assert.True(t, repo.IsOAS3())
}

func TestNewLogger(t *testing.T) {
	var quiet, verbose bytes.Buffer

	NewLogger(&quiet, false).Info("hidden", "k", "v")
	NewLogger(&quiet, false).Warn("shown", "k", "v")
	assert.NotContains(t, quiet.String(), "hidden")
	assert.Contains(t, quiet.String(), `level=warning msg=shown k=v`)

	NewLogger(&verbose, true).Debug("details", "depth", 2)
	assert.Contains(t, verbose.String(), `level=debug msg=details depth=2`)
}

func TestRenderSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"METHOD", "PATH", "SUMMARY"}
	rows := [][]string{
		{"GET", "/pets", "List pets"},
		{"POST", "/pets", "Create pet"},
	}

	RenderSummaryTable(&buf, headers, rows, false)
	assert.Equal(t, "METHOD  PATH   SUMMARY\nGET     /pets  List pets\nPOST    /pets  Create pet\n", buf.String())

	buf.Reset()
	RenderSummaryTable(&buf, headers, rows[:1], true)
	assert.Equal(t, "GET\t/pets\tList pets\n", buf.String(), "quiet mode omits headers")

	buf.Reset()
	RenderSummaryTable(&buf, []string{"A"}, nil, false)
	assert.Zero(t, buf.Len(), "no rows, no output")
}
