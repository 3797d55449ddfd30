package catalog

import (
	"context"
	"testing"

	"github.com/MrSnakeDoc/gat/internal/cache"
	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/github"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockContentsClient struct {
	result github.ContentResult
	err    error
	calls  int
}

func (m *mockContentsClient) Contents(_ context.Context, _ string) (github.ContentResult, error) {
	m.calls++
	return m.result, m.err
}

func rootListing() github.ContentResult {
	return github.ContentResult{Listing: []github.Entry{
		{Type: "file", Name: "a.gitattributes", Path: "a.gitattributes"},
		{Type: "file", Name: ".gitattributes", Path: ".gitattributes"},
		{Type: "file", Name: "b.txt", Path: "b.txt"},
		{Type: "file", Name: "c.gitattributes", Path: "c.gitattributes"},
	}}
}

func TestListFiles_FiltersAndNormalizes(t *testing.T) {
	logger.UseTestMode()

	client := &mockContentsClient{result: rootListing()}
	f := New(cache.New(60), client)

	got, err := f.ListFiles(context.Background(), "")
	require.NoError(t, err)

	// Only real templates survive: the bare root file and non-template
	// files are dropped, remote order is preserved.
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Label)
	assert.Equal(t, "a.gitattributes", got[0].Description)
	assert.Equal(t, "a.gitattributes", got[0].URL)
	assert.Equal(t, "c", got[1].Label)
}

func TestListFiles_SecondCallHitsCache(t *testing.T) {
	logger.UseTestMode()

	client := &mockContentsClient{result: rootListing()}
	f := New(cache.New(60), client)

	first, err := f.ListFiles(context.Background(), "")
	require.NoError(t, err)

	second, err := f.ListFiles(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "cache hit must not trigger a network call")
	assert.Equal(t, first, second)
}

func TestListFiles_DistinctPathsCacheIndependently(t *testing.T) {
	logger.UseTestMode()

	client := &mockContentsClient{result: rootListing()}
	f := New(cache.New(60), client)

	_, err := f.ListFiles(context.Background(), "")
	require.NoError(t, err)
	_, err = f.ListFiles(context.Background(), "community")
	require.NoError(t, err)

	assert.Equal(t, 2, client.calls)
}

func TestListFiles_SingleFileResponseIsFormatError(t *testing.T) {
	logger.UseTestMode()

	client := &mockContentsClient{result: github.ContentResult{
		File: &github.Entry{Type: "file", Name: "Go.gitattributes"},
	}}
	f := New(cache.New(60), client)

	_, err := f.ListFiles(context.Background(), "Go.gitattributes")
	require.Error(t, err)

	var formatErr *errs.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestListFiles_RemoteErrorPropagates(t *testing.T) {
	logger.UseTestMode()

	remoteErr := &errs.RemoteError{Status: 403, Message: "rate limited"}
	client := &mockContentsClient{err: remoteErr}
	f := New(cache.New(60), client)

	_, err := f.ListFiles(context.Background(), "")
	require.Error(t, err)

	var re *errs.RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 403, re.Status)
}
