package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/service"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

const (
	defaultBaseURL = "https://api.github.com/repos/gitattributes/gitattributes/contents"

	// Remote fetches are never cancelled mid-flight; they run to completion
	// or fail within this window.
	requestTimeout = 100 * time.Second
)

// Entry is the raw contents-API representation of one remote item.
type Entry struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

// ContentResult is a tagged union: exactly one of Listing or File is set.
// The shape is decided here, at the collaborator boundary.
type ContentResult struct {
	Listing []Entry
	File    *Entry
}

func (r ContentResult) IsListing() bool { return r.File == nil }

type Client struct {
	baseURL string
	token   string
	http    service.HTTPClient
}

// NewClient builds a contents-API client from the given settings.
func NewClient(settings *globalconfig.Settings, httpClient service.HTTPClient) (*Client, error) {
	token := ""
	proxy := ""
	if settings != nil {
		token = settings.Token
		proxy = settings.Proxy
	}

	if httpClient == nil {
		c, err := service.NewProxiedHTTPClient(requestTimeout, proxy)
		if err != nil {
			return nil, err
		}
		httpClient = c
	}

	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    httpClient,
	}, nil
}

// Contents fetches the listing or file at the given remote path.
func (c *Client) Contents(ctx context.Context, remotePath string) (ContentResult, error) {
	rawURL := c.baseURL
	if remotePath != "" {
		rawURL += "/" + strings.TrimPrefix(remotePath, "/")
	}

	parsedURL, err := utils.ParseSecureURL(rawURL)
	if err != nil {
		return ContentResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), http.NoBody)
	if err != nil {
		return ContentResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ContentResult{}, &errs.RemoteError{Message: err.Error()}
	}
	defer utils.Try(resp.Body.Close)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ContentResult{}, &errs.RemoteError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debug("contents request for %q failed with %d", remotePath, resp.StatusCode)
		return ContentResult{}, &errs.RemoteError{
			Status:  resp.StatusCode,
			Message: apiMessage(body),
		}
	}

	return decodeContents(remotePath, body)
}

// decodeContents normalizes the two response shapes the API produces:
// a JSON array for directory listings, a single object for one file.
func decodeContents(remotePath string, body []byte) (ContentResult, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return ContentResult{}, &errs.FormatError{Path: remotePath, Want: "listing or file"}
	}

	if trimmed[0] == '[' {
		var listing []Entry
		if err := json.Unmarshal(trimmed, &listing); err != nil {
			return ContentResult{}, &errs.FormatError{Path: remotePath, Want: "listing"}
		}
		return ContentResult{Listing: listing}, nil
	}

	var entry Entry
	if err := json.Unmarshal(trimmed, &entry); err != nil {
		return ContentResult{}, &errs.FormatError{Path: remotePath, Want: "file"}
	}
	return ContentResult{File: &entry}, nil
}

func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
