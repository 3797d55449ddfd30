package pull

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPrompter struct {
	selects []int
	err     error

	si int
}

func (m *mockPrompter) Confirm(string) (bool, error) { return false, fmt.Errorf("unexpected Confirm call") }

func (m *mockPrompter) Prompt(string) (string, error) { return "", fmt.Errorf("unexpected Prompt call") }

func (m *mockPrompter) Select(string, []string) (int, error) {
	if m.err != nil {
		return -1, m.err
	}
	if m.si >= len(m.selects) {
		return -1, fmt.Errorf("unexpected Select call")
	}
	res := m.selects[m.si]
	m.si++
	return res, nil
}

type mockLister struct {
	templates []models.Descriptor
	err       error
}

func (m *mockLister) ListFiles(context.Context, string) ([]models.Descriptor, error) {
	return m.templates, m.err
}

type mockApplier struct {
	applied []models.MergeOperation
	err     error
}

func (m *mockApplier) Apply(_ context.Context, op models.MergeOperation) (models.MergeOperation, error) {
	m.applied = append(m.applied, op)
	return op, m.err
}

func catalogFixture() []models.Descriptor {
	return []models.Descriptor{
		{Label: "Web", Description: "Web.gitattributes", URL: "Web.gitattributes"},
		{Label: "Go", Description: "Go.gitattributes", URL: "Go.gitattributes"},
	}
}

func newTestPuller(l *mockLister, a *mockApplier, p *mockPrompter) *Puller {
	return &Puller{Fetcher: l, Engine: a, Prompter: p}
}

func TestExecute_NamedTemplateOverwrite(t *testing.T) {
	logger.UseTestMode()

	applier := &mockApplier{}
	p := newTestPuller(&mockLister{templates: catalogFixture()}, applier, &mockPrompter{})

	target := filepath.Join(t.TempDir(), ".gitattributes")
	err := p.Execute(context.Background(), Options{Template: "go", Target: target})
	require.NoError(t, err)

	require.Len(t, applier.applied, 1)
	op := applier.applied[0]
	assert.Equal(t, models.Overwrite, op.Mode)
	assert.Equal(t, "Go", op.Selected.Label)
	assert.Equal(t, target, op.TargetPath)
}

func TestExecute_UnknownTemplate(t *testing.T) {
	logger.UseTestMode()

	p := newTestPuller(&mockLister{templates: catalogFixture()}, &mockApplier{}, &mockPrompter{})

	err := p.Execute(context.Background(), Options{Template: "Cobol", Target: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExecute_InteractivePickerSelectsSorted(t *testing.T) {
	logger.UseTestMode()

	applier := &mockApplier{}
	// Picker options are sorted alphabetically: Go, Web. Index 1 => Web.
	p := newTestPuller(&mockLister{templates: catalogFixture()}, applier, &mockPrompter{selects: []int{1}})

	target := filepath.Join(t.TempDir(), ".gitattributes")
	err := p.Execute(context.Background(), Options{Target: target})
	require.NoError(t, err)

	require.Len(t, applier.applied, 1)
	assert.Equal(t, "Web", applier.applied[0].Selected.Label)
}

func TestExecute_PickerCancelled(t *testing.T) {
	logger.UseTestMode()

	applier := &mockApplier{}
	p := newTestPuller(&mockLister{templates: catalogFixture()}, applier, &mockPrompter{selects: []int{-1}})

	err := p.Execute(context.Background(), Options{Target: "x"})
	require.ErrorIs(t, err, errs.ErrCancelled)
	assert.Empty(t, applier.applied, "no partial writes on cancellation")
}

func TestExecute_ExistingTargetPromptsForMode(t *testing.T) {
	logger.UseTestMode()

	target := filepath.Join(t.TempDir(), ".gitattributes")
	require.NoError(t, os.WriteFile(target, []byte("* text=auto\n"), 0o644))

	applier := &mockApplier{}
	// Second answer picks "Append to it".
	p := newTestPuller(&mockLister{templates: catalogFixture()}, applier, &mockPrompter{selects: []int{1}})

	err := p.Execute(context.Background(), Options{Template: "Web", Target: target})
	require.NoError(t, err)

	require.Len(t, applier.applied, 1)
	assert.Equal(t, models.Append, applier.applied[0].Mode)
}

func TestExecute_ModePromptCancelled(t *testing.T) {
	logger.UseTestMode()

	target := filepath.Join(t.TempDir(), ".gitattributes")
	require.NoError(t, os.WriteFile(target, []byte("* text=auto\n"), 0o644))

	applier := &mockApplier{}
	p := newTestPuller(&mockLister{templates: catalogFixture()}, applier, &mockPrompter{selects: []int{-1}})

	err := p.Execute(context.Background(), Options{Template: "Web", Target: target})
	require.ErrorIs(t, err, errs.ErrCancelled)
	assert.Empty(t, applier.applied)
}

func TestExecute_AppendWithOverwriteRejected(t *testing.T) {
	logger.UseTestMode()

	p := newTestPuller(&mockLister{templates: catalogFixture()}, &mockApplier{}, &mockPrompter{})

	err := p.Execute(context.Background(), Options{Template: "Web", Target: "x", Append: true, Overwrite: true})
	require.Error(t, err)
	assert.Equal(t, "you cannot use --append with --overwrite", err.Error())
}

func TestExecute_EmptyCatalog(t *testing.T) {
	logger.UseTestMode()

	p := newTestPuller(&mockLister{}, &mockApplier{}, &mockPrompter{})

	err := p.Execute(context.Background(), Options{Target: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no templates found")
}
