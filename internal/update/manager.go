package update

import (
	"context"

	"github.com/MrSnakeDoc/gat/internal/checker"
	"github.com/MrSnakeDoc/gat/internal/config"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/notifier"
	"github.com/MrSnakeDoc/gat/internal/service"
)

type Updater struct {
	Checker *checker.Controller
}

func New(conf *config.Config, client service.HTTPClient) *Updater {
	if conf == nil {
		defaultConfig := config.DefaultUpdateConfig()
		conf = &defaultConfig
	}

	return &Updater{
		Checker: checker.New(conf, client),
	}
}

// Execute forces a release check and reports the outcome.
func (u *Updater) Execute(ctx context.Context) error {
	latest, err := u.Checker.Execute(ctx, true)
	if err != nil {
		return err
	}

	if latest == "" {
		logger.Success("gat is up to date (%s)", checker.Version)
		return nil
	}

	notifier.DisplayVersionUpdate(latest)
	return nil
}
