package merge

import (
	"context"
	"encoding/base64"
	"os"
	"strings"

	"github.com/MrSnakeDoc/gat/internal/catalog"
	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/github"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/models"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

// Engine applies a MergeOperation against the local filesystem, fetching
// the selected template through the contents collaborator.
type Engine struct {
	client catalog.ContentsClient
}

func NewEngine(client catalog.ContentsClient) *Engine {
	return &Engine{client: client}
}

// Apply executes one merge operation and echoes it back on success.
//
// Overwrite truncates (or creates) the target; any failure afterwards
// removes the just-created file so a fresh target is never left half
// written. Append adds a single blank-line separator before the fetched
// content and then rewrites the file through the deduplication pass.
// A failed fetch in append mode leaves the target untouched.
func (e *Engine) Apply(ctx context.Context, op models.MergeOperation) (models.MergeOperation, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if op.Mode == models.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	target, err := os.OpenFile(op.TargetPath, flags, 0o644)
	if err != nil {
		return op, err
	}

	data, err := e.fetchDecoded(ctx, op.Selected.URL)
	if err != nil {
		utils.Try(target.Close)
		e.cleanup(op)
		return op, err
	}

	if op.Mode == models.Append {
		data = append([]byte{'\n'}, data...)
	}

	if _, err := target.Write(data); err != nil {
		utils.Try(target.Close)
		e.cleanup(op)
		return op, err
	}
	if err := target.Close(); err != nil {
		e.cleanup(op)
		return op, err
	}

	if op.Mode == models.Append {
		if err := e.rewriteDeduplicated(op.TargetPath); err != nil {
			return op, err
		}
	}

	logger.Debug("merged %q into %s (%s)", op.Selected.Label, op.TargetPath, op.Mode)
	return op, nil
}

// fetchDecoded retrieves the selected file and decodes its payload.
func (e *Engine) fetchDecoded(ctx context.Context, remotePath string) ([]byte, error) {
	result, err := e.client.Contents(ctx, remotePath)
	if err != nil {
		return nil, err
	}

	entry := result.File
	if result.IsListing() || entry.Type != "file" || entry.Content == "" {
		return nil, &errs.ContentTypeError{Path: remotePath}
	}

	return decodeContent(entry)
}

// decodeContent honours the reported encoding; anything other than base64
// is passed through as raw bytes.
func decodeContent(entry *github.Entry) ([]byte, error) {
	if entry.Encoding != "base64" {
		return []byte(entry.Content), nil
	}

	// The contents API wraps base64 payloads with newlines.
	compact := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, entry.Content)

	return base64.StdEncoding.DecodeString(compact)
}

// cleanup removes a freshly created overwrite target. Best effort: a
// failed delete never masks the original error. Append targets existed
// before the operation and are never deleted.
func (e *Engine) cleanup(op models.MergeOperation) {
	if op.Mode != models.Overwrite {
		return
	}
	if err := os.Remove(op.TargetPath); err != nil {
		logger.Debug("failed to remove partial target %s: %v", op.TargetPath, err)
	}
}

// rewriteDeduplicated runs the dedup pass into a sibling temp file and
// swaps it into place.
func (e *Engine) rewriteDeduplicated(path string) error {
	tmpPath, err := Deduplicate(path)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}
