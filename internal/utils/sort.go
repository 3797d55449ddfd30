package utils

import (
	"sort"
	"strings"

	"github.com/MrSnakeDoc/gat/internal/models"
)

// SortDescriptors orders templates alphabetically by label, case-insensitive.
// Presentation concern only; the catalog keeps remote listing order.
func SortDescriptors(items []models.Descriptor) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Label) < strings.ToLower(items[j].Label)
	})
}
