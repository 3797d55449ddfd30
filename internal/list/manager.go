package list

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/models"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

type lister interface {
	ListFiles(ctx context.Context, remotePath string) ([]models.Descriptor, error)
}

type Lister struct {
	Fetcher lister
}

func New(fetcher lister) *Lister {
	return &Lister{Fetcher: fetcher}
}

// Execute renders the available templates as a table, sorted by label.
func (l *Lister) Execute(ctx context.Context, remoteDir string) error {
	templates, err := l.Fetcher.ListFiles(ctx, remoteDir)
	if err != nil {
		return fmt.Errorf("an error occurred while fetching the catalog: %w", err)
	}

	sorted := append([]models.Descriptor(nil), templates...)
	utils.SortDescriptors(sorted)

	table := logger.CreateTable([]string{"Template", "Path"})
	for _, d := range sorted {
		if err := table.Append([]string{d.Label, d.Description}); err != nil {
			return fmt.Errorf("an error occurred while appending to the table: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("an error occurred while rendering the table: %w", err)
	}

	return nil
}
