// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"embed"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

//go:embed testdata/*
var fixtures embed.FS

// Fixture file names under testdata/.
const (
	// PetstoreFile is the Swagger 2.0 petstore: 8 pet, 4 store and 8 user
	// operations over the Pet, Category, Tag, Order, User and ApiResponse models.
	PetstoreFile = "petstore.json"
	// PetstoreOAS3File is a small OpenAPI 3.0 document exercising
	// requestBody, components parameters and allOf composition.
	PetstoreOAS3File = "petstore-oas3.yaml"
)

// Fixture returns the contents of a testdata file, failing the test if it is missing.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := fixtures.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return data
}

// Petstore returns the Swagger 2.0 petstore document as JSON.
func Petstore(t testing.TB) []byte {
	t.Helper()
	return Fixture(t, PetstoreFile)
}

// PetstoreOAS3 returns the OpenAPI 3.0 document as YAML.
func PetstoreOAS3(t testing.TB) []byte {
	t.Helper()
	return Fixture(t, PetstoreOAS3File)
}

// WriteTempFile writes data to a file in a test temp directory and returns its path.
func WriteTempFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// WriteYAMLFile marshals doc to YAML in a test temp directory and returns its path.
func WriteYAMLFile(t testing.TB, name string, doc any) string {
	t.Helper()
	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling %s: %v", name, err)
	}
	return WriteTempFile(t, name, data)
}

// ServeBytes starts an HTTP server answering every request with data. The
// server is closed when the test ends.
func ServeBytes(t testing.TB, data []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ServeStatus starts an HTTP server answering every request with status.
func ServeStatus(t testing.TB, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(status), status)
	}))
	t.Cleanup(srv.Close)
	return srv
}
