package cache

import (
	"testing"
	"time"

	"github.com/MrSnakeDoc/gat/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptors() []models.Descriptor {
	return []models.Descriptor{
		{Label: "Go", Description: "Go.gitattributes", URL: "Go.gitattributes"},
		{Label: "Rust", Description: "Rust.gitattributes", URL: "Rust.gitattributes"},
	}
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := New(60)

	want := testDescriptors()
	c.Put("gitattributes/", want)

	got, ok := c.Get("gitattributes/")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCache_MissingKey(t *testing.T) {
	c := New(60)

	_, ok := c.Get("gitattributes/unknown")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryReadsAsAbsentButPersists(t *testing.T) {
	c := New(60)

	now := time.Now()
	c.SetClockForTest(func() time.Time { return now })
	c.Put("gitattributes/", testDescriptors())

	// One second before the boundary: still fresh.
	c.SetClockForTest(func() time.Time { return now.Add(59 * time.Second) })
	_, ok := c.Get("gitattributes/")
	assert.True(t, ok)

	// At exactly the expiration interval the entry reads as absent.
	c.SetClockForTest(func() time.Time { return now.Add(60 * time.Second) })
	_, ok = c.Get("gitattributes/")
	assert.False(t, ok)

	// No sweep: the entry still physically exists until overwritten.
	assert.Equal(t, 1, c.Len())
}

func TestCache_PutReplacesEntry(t *testing.T) {
	c := New(60)

	now := time.Now()
	c.SetClockForTest(func() time.Time { return now })
	c.Put("k", testDescriptors())

	later := now.Add(30 * time.Second)
	c.SetClockForTest(func() time.Time { return later })
	replacement := []models.Descriptor{{Label: "C", Description: "C.gitattributes", URL: "C.gitattributes"}}
	c.Put("k", replacement)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, replacement, got)
	assert.Equal(t, 1, c.Len())

	// storedAt moved forward with the replacement: still fresh well past
	// the original entry's expiry.
	c.SetClockForTest(func() time.Time { return now.Add(80 * time.Second) })
	_, ok = c.Get("k")
	assert.True(t, ok)
}

func TestCache_DistinctKeysAreIndependent(t *testing.T) {
	c := New(60)

	c.Put("gitattributes/", testDescriptors())
	c.Put("gitattributes/sub", testDescriptors()[:1])

	a, ok := c.Get("gitattributes/")
	require.True(t, ok)
	b, ok := c.Get("gitattributes/sub")
	require.True(t, ok)

	assert.Len(t, a, 2)
	assert.Len(t, b, 1)
}
