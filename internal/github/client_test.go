package github

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	status  int
	body    string
	lastReq *http.Request
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	return &http.Response{
		StatusCode: m.status,
		Body:       io.NopCloser(strings.NewReader(m.body)),
	}, nil
}

func newTestClient(t *testing.T, mock *mockHTTPClient, settings *globalconfig.Settings) *Client {
	t.Helper()
	c, err := NewClient(settings, mock)
	require.NoError(t, err)
	return c
}

func TestContents_DecodesListing(t *testing.T) {
	logger.UseTestMode()

	mock := &mockHTTPClient{status: 200, body: `[
		{"type":"file","name":"Go.gitattributes","path":"Go.gitattributes"},
		{"type":"dir","name":"community","path":"community"}
	]`}
	c := newTestClient(t, mock, nil)

	result, err := c.Contents(context.Background(), "")
	require.NoError(t, err)

	require.True(t, result.IsListing())
	require.Len(t, result.Listing, 2)
	assert.Equal(t, "Go.gitattributes", result.Listing[0].Name)
	assert.Equal(t, "dir", result.Listing[1].Type)
}

func TestContents_DecodesSingleFile(t *testing.T) {
	logger.UseTestMode()

	mock := &mockHTTPClient{status: 200, body: `{
		"type":"file","name":"Go.gitattributes","path":"Go.gitattributes",
		"content":"KiB0ZXh0PWF1dG8K","encoding":"base64"
	}`}
	c := newTestClient(t, mock, nil)

	result, err := c.Contents(context.Background(), "Go.gitattributes")
	require.NoError(t, err)

	require.False(t, result.IsListing())
	assert.Equal(t, "base64", result.File.Encoding)
	assert.Equal(t, "KiB0ZXh0PWF1dG8K", result.File.Content)
}

func TestContents_NonOKStatusIsRemoteError(t *testing.T) {
	logger.UseTestMode()

	mock := &mockHTTPClient{status: 404, body: `{"message":"Not Found"}`}
	c := newTestClient(t, mock, nil)

	_, err := c.Contents(context.Background(), "nope")
	require.Error(t, err)

	var re *errs.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 404, re.Status)
	assert.Contains(t, re.Message, "Not Found")
}

func TestContents_GarbageBodyIsFormatError(t *testing.T) {
	logger.UseTestMode()

	mock := &mockHTTPClient{status: 200, body: `not json`}
	c := newTestClient(t, mock, nil)

	_, err := c.Contents(context.Background(), "")
	require.Error(t, err)

	var fe *errs.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestContents_SendsAuthAndPath(t *testing.T) {
	logger.UseTestMode()

	mock := &mockHTTPClient{status: 200, body: `[]`}
	c := newTestClient(t, mock, &globalconfig.Settings{Token: "secret", CacheTTLSeconds: 60})

	_, err := c.Contents(context.Background(), "community")
	require.NoError(t, err)

	require.NotNil(t, mock.lastReq)
	assert.Equal(t, "Bearer secret", mock.lastReq.Header.Get("Authorization"))
	assert.True(t, strings.HasSuffix(mock.lastReq.URL.Path, "/contents/community"))
}
