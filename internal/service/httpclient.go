package service

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type DefaultHTTPClient struct{ *http.Client }

func NewHTTPClient(timeout time.Duration) *DefaultHTTPClient {
	return &DefaultHTTPClient{Client: &http.Client{Timeout: timeout}}
}

// NewProxiedHTTPClient routes requests through the given proxy URL.
// An empty proxy falls back to the plain client.
func NewProxiedHTTPClient(timeout time.Duration, proxy string) (*DefaultHTTPClient, error) {
	if proxy == "" {
		return NewHTTPClient(timeout), nil
	}

	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL %q: %w", proxy, err)
	}

	transport := &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	return &DefaultHTTPClient{Client: &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}}, nil
}
