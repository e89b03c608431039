// Package imagehost relays uploads to the external image hosting
// service.  The host exposes an unsigned-preset upload endpoint that
// accepts a multipart form and answers with the public URL of the
// stored, transformed image; no other part of the system depends on
// the host beyond receiving that URL string.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no upload URL is set; upload
// endpoints answer 503 in that case.
var ErrNotConfigured = errors.New("image host not configured")

// Client uploads files to the image host.
type Client struct {
	uploadURL string
	http      *http.Client
}

// New builds a client for the given upload URL.  An empty URL yields a
// client whose Upload always fails with ErrNotConfigured.
func New(uploadURL string) *Client {
	return &Client{
		uploadURL: uploadURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// uploadResponse is the slice of the host's answer we care about.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload streams the file under the named unsigned preset and returns
// the secure URL of the hosted image.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader, preset string) (string, error) {
	if c.uploadURL == "" {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := mw.WriteField("upload_preset", preset); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || out.SecureURL == "" {
		msg := out.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("image host upload failed: %s", msg)
	}
	return out.SecureURL, nil
}
