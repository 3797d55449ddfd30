package internal

import (
	"github.com/MrSnakeDoc/gat/internal/cache"
	"github.com/MrSnakeDoc/gat/internal/catalog"
	"github.com/MrSnakeDoc/gat/internal/github"
	"github.com/MrSnakeDoc/gat/internal/globalconfig"
)

// newFetcher wires the catalog fetcher from the loaded settings.
func newFetcher(settings *globalconfig.Settings) (*catalog.Fetcher, error) {
	client, err := github.NewClient(settings, nil)
	if err != nil {
		return nil, err
	}
	return catalog.New(cache.New(settings.CacheTTLSeconds), client), nil
}
