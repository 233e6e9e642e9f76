// Package download fetches release archives over HTTPS with progress
// reporting and a failure taxonomy that lets the user tell a bad version
// apart from a broken network connection.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultTimeout = 60 * time.Second
	userAgent      = "python-noadmin-installer/1.0"
	chunkSize      = 32 * 1024
)

// StatusError reports a non-success HTTP response. It usually means the
// requested version does not exist upstream.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s. URL may be invalid for this version", e.Code, e.Status)
}

// Progress receives the running byte count during a fetch. total is <= 0 when
// the server did not report a content length.
type Progress func(downloaded, total int64)

// Client performs downloads with a fixed timeout and user agent.
type Client struct {
	httpClient *http.Client

	// OnProgress, when set, is invoked after each chunk is written.
	OnProgress Progress
}

// NewClient returns a client with the standard 60 second timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch streams url into dest. The destination file is created (truncated if
// present); on any error the caller's enclosing temp directory is expected to
// be discarded as a unit, so no cleanup of a partial file happens here.
func (c *Client) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w (check your internet connection)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()

	total := resp.ContentLength
	var downloaded int64
	buf := make([]byte, chunkSize)

	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("write destination file: %w", writeErr)
			}
			downloaded += int64(n)
			if c.OnProgress != nil {
				c.OnProgress(downloaded, total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("network error: %w (check your internet connection)", readErr)
		}
	}

	return out.Sync()
}
