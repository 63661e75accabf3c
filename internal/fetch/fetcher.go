// Package fetch downloads repository files over HTTP into the local cache.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/dnscache"
	"github.com/sirupsen/logrus"

	"dnflite/internal/utils"
)

const userAgent = "dnflite/1.0"

// HTTPError reports a non-success status from a repository server.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
}

// Fetcher downloads files from repository base URLs into a cache directory,
// mirroring each file's repository-relative path.
type Fetcher struct {
	client   *http.Client
	cacheDir string
}

// NewFetcher builds a Fetcher with a DNS-caching HTTP client. Requests time
// out after 30 seconds and are never retried.
func NewFetcher(cacheDir string) *Fetcher {
	resolver := &dnscache.Resolver{}
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ips, err := resolver.LookupHost(ctx, host)
			if err != nil {
				return nil, err
			}
			for _, ip := range ips {
				conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
				if err == nil {
					return conn, nil
				}
			}
			return nil, fmt.Errorf("no reachable address for %s", host)
		},
		MaxIdleConns:        20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Fetcher{
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		cacheDir: cacheDir,
	}
}

// Download fetches relPath from the repository at baseURL and stores it at
// <cacheDir>/<repoName>/<relPath>, returning the cached file's path. The
// file is written atomically, so a failed download never clobbers an earlier
// cached copy.
func (f *Fetcher) Download(ctx context.Context, baseURL, repoName, relPath string) (string, error) {
	url := strings.TrimSuffix(baseURL, "/") + "/" + relPath
	dest := filepath.Join(f.cacheDir, repoName, filepath.FromSlash(relPath))

	logrus.Debugf("fetching %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := utils.EnsureDir(filepath.Dir(dest)); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".part-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return "", fmt.Errorf("downloading %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", err
	}

	logrus.Debugf("cached %s (%d bytes)", dest, n)
	return dest, nil
}
