package catalog

import (
	"context"
	"strings"

	"github.com/MrSnakeDoc/gat/internal/cache"
	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/github"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/models"
)

const templateSuffix = ".gitattributes"

// ContentsClient is the remote collaborator the fetcher depends on.
type ContentsClient interface {
	Contents(ctx context.Context, remotePath string) (github.ContentResult, error)
}

// Fetcher lists remote templates, guarded by the expiring cache.
type Fetcher struct {
	cache  *cache.Cache
	client ContentsClient
}

func New(c *cache.Cache, client ContentsClient) *Fetcher {
	return &Fetcher{cache: c, client: client}
}

// ListFiles returns the normalized template descriptors under remotePath,
// in remote listing order. A fresh cache entry short-circuits the network
// call entirely.
func (f *Fetcher) ListFiles(ctx context.Context, remotePath string) ([]models.Descriptor, error) {
	key := cacheKey(remotePath)

	if cached, ok := f.cache.Get(key); ok {
		logger.Debug("catalog cache hit for %q (%d templates)", key, len(cached))
		return cached, nil
	}

	result, err := f.client.Contents(ctx, remotePath)
	if err != nil {
		return nil, err
	}

	if !result.IsListing() {
		return nil, &errs.FormatError{Path: remotePath, Want: "listing"}
	}

	descriptors := normalize(result.Listing)
	f.cache.Put(key, descriptors)

	logger.Debug("catalog refreshed for %q (%d templates)", key, len(descriptors))
	return descriptors, nil
}

func cacheKey(remotePath string) string {
	return "gitattributes/" + remotePath
}

// normalize filters the raw listing down to template files and maps them to
// descriptors. The bare root ".gitattributes" is not a template.
func normalize(listing []github.Entry) []models.Descriptor {
	descriptors := make([]models.Descriptor, 0, len(listing))
	for _, e := range listing {
		if e.Type != "file" {
			continue
		}
		if e.Name == templateSuffix || !strings.HasSuffix(e.Name, templateSuffix) {
			continue
		}
		descriptors = append(descriptors, models.Descriptor{
			Label:       strings.TrimSuffix(e.Name, templateSuffix),
			Description: e.Path,
			URL:         e.Path,
		})
	}
	return descriptors
}
