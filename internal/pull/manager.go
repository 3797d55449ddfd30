package pull

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MrSnakeDoc/gat/internal/cache"
	"github.com/MrSnakeDoc/gat/internal/catalog"
	"github.com/MrSnakeDoc/gat/internal/errs"
	"github.com/MrSnakeDoc/gat/internal/github"
	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/merge"
	"github.com/MrSnakeDoc/gat/internal/models"
	"github.com/MrSnakeDoc/gat/internal/prompter"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

type lister interface {
	ListFiles(ctx context.Context, remotePath string) ([]models.Descriptor, error)
}

type applier interface {
	Apply(ctx context.Context, op models.MergeOperation) (models.MergeOperation, error)
}

// Options carries the flag values of one pull invocation.
type Options struct {
	Template  string // template label; empty triggers the interactive picker
	RemoteDir string // remote subdirectory to list
	Target    string // local target path
	Append    bool
	Overwrite bool
}

type Puller struct {
	Fetcher  lister
	Engine   applier
	Prompter prompter.Prompter
}

func New(settings *globalconfig.Settings, fetcher lister, engine applier, p prompter.Prompter) (*Puller, error) {
	if fetcher == nil || engine == nil {
		client, err := github.NewClient(settings, nil)
		if err != nil {
			return nil, err
		}
		if fetcher == nil {
			fetcher = catalog.New(cache.New(settings.CacheTTLSeconds), client)
		}
		if engine == nil {
			engine = merge.NewEngine(client)
		}
	}

	if p == nil {
		p = prompter.New(os.Stdin, os.Stdout)
	}

	return &Puller{
		Fetcher:  fetcher,
		Engine:   engine,
		Prompter: p,
	}, nil
}

func (p *Puller) Execute(ctx context.Context, opts Options) error {
	if opts.Append && opts.Overwrite {
		return fmt.Errorf("you cannot use --append with --overwrite")
	}

	selected, err := p.selectTemplate(ctx, opts)
	if err != nil {
		return err
	}

	mode, err := p.selectMode(opts)
	if err != nil {
		return err
	}

	op := models.MergeOperation{
		Mode:       mode,
		TargetPath: opts.Target,
		Selected:   selected,
	}

	if _, err := p.Engine.Apply(ctx, op); err != nil {
		return err
	}

	logger.Success("Wrote %s template to %s (%s)", selected.Label, opts.Target, mode)
	return nil
}

func (p *Puller) selectTemplate(ctx context.Context, opts Options) (models.Descriptor, error) {
	templates, err := p.Fetcher.ListFiles(ctx, opts.RemoteDir)
	if err != nil {
		return models.Descriptor{}, err
	}
	if len(templates) == 0 {
		return models.Descriptor{}, fmt.Errorf("no templates found under %q", opts.RemoteDir)
	}

	if opts.Template != "" {
		for _, d := range templates {
			if strings.EqualFold(d.Label, opts.Template) {
				return d, nil
			}
		}
		return models.Descriptor{}, fmt.Errorf("template %q not found, try 'gat list'", opts.Template)
	}

	// Interactive picker, alphabetical for readability.
	sorted := append([]models.Descriptor(nil), templates...)
	utils.SortDescriptors(sorted)

	labels := make([]string, len(sorted))
	for i, d := range sorted {
		labels[i] = fmt.Sprintf("%s (%s)", d.Label, d.Description)
	}

	idx, err := p.Prompter.Select("Choose a .gitattributes template:", labels)
	if err != nil {
		return models.Descriptor{}, err
	}
	if idx == prompter.Cancelled {
		return models.Descriptor{}, errs.ErrCancelled
	}
	return sorted[idx], nil
}

func (p *Puller) selectMode(opts Options) (models.MergeMode, error) {
	switch {
	case opts.Overwrite:
		return models.Overwrite, nil
	case opts.Append:
		return models.Append, nil
	}

	exists, err := utils.FileExists(opts.Target)
	if err != nil {
		return models.Overwrite, err
	}
	if !exists {
		return models.Overwrite, nil
	}

	idx, err := p.Prompter.Select(
		fmt.Sprintf("%s already exists:", opts.Target),
		[]string{"Overwrite it", "Append to it"},
	)
	if err != nil {
		return models.Overwrite, err
	}
	switch idx {
	case 0:
		return models.Overwrite, nil
	case 1:
		return models.Append, nil
	default:
		return models.Overwrite, errs.ErrCancelled
	}
}
