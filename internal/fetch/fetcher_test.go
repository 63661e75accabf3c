package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadWritesCachePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fedora/repodata/repomd.xml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("<repomd/>"))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	f := NewFetcher(cacheDir)

	path, err := f.Download(context.Background(), srv.URL+"/fedora/", "fedora", "repodata/repomd.xml")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}

	want := filepath.Join(cacheDir, "fedora", "repodata", "repomd.xml")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading cached file: %v", err)
	}
	if string(data) != "<repomd/>" {
		t.Errorf("cached content = %q", data)
	}
}

func TestDownloadNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := NewFetcher(t.TempDir())

	_, err := f.Download(context.Background(), srv.URL, "fedora", "repodata/repomd.xml")
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error %v should be an *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", httpErr.StatusCode)
	}
}

func TestDownloadBaseURLJoin(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher(t.TempDir())

	// With and without a trailing slash on the base URL.
	for _, base := range []string{srv.URL + "/os", srv.URL + "/os/"} {
		if _, err := f.Download(context.Background(), base, "r", "repodata/repomd.xml"); err != nil {
			t.Fatalf("Download(%q): %v", base, err)
		}
		if gotPath != "/os/repodata/repomd.xml" {
			t.Errorf("request path = %q for base %q", gotPath, base)
		}
	}
}
