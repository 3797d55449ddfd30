package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/models"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

type lister interface {
	ListFiles(ctx context.Context, remotePath string) ([]models.Descriptor, error)
}

type Searcher struct {
	Fetcher lister
}

func New(fetcher lister) *Searcher {
	return &Searcher{Fetcher: fetcher}
}

// Execute filters the catalog by a case-insensitive substring on labels
// and renders the matches.
func (s *Searcher) Execute(ctx context.Context, query, remoteDir string) error {
	templates, err := s.Fetcher.ListFiles(ctx, remoteDir)
	if err != nil {
		return fmt.Errorf("an error occurred while fetching the catalog: %w", err)
	}

	results := filter(templates, query)
	if len(results) == 0 {
		logger.Warn("No template matching %q", query)
		return nil
	}

	utils.SortDescriptors(results)

	table := logger.CreateTable([]string{"Template", "Path"})
	for _, d := range results {
		if err := table.Append([]string{d.Label, d.Description}); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func filter(items []models.Descriptor, query string) []models.Descriptor {
	if query == "" {
		return append([]models.Descriptor(nil), items...)
	}

	q := strings.ToLower(query)
	var results []models.Descriptor
	for _, d := range items {
		if strings.Contains(strings.ToLower(d.Label), q) {
			results = append(results, d)
		}
	}
	return results
}
