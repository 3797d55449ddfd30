package initiator

import (
	"fmt"

	"github.com/MrSnakeDoc/gat/internal/globalconfig"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

type Initiator struct{}

func New() *Initiator {
	return &Initiator{}
}

func (*Initiator) Execute() error {
	if _, err := globalconfig.Load(); err == nil {
		logger.Info("Configuration already exists, leaving it untouched")
		return nil
	}

	cfg := globalconfig.DefaultSettings()
	if err := cfg.Save(); err != nil {
		return err
	}

	if _, err := utils.EnsureUpdateStateFileExists(); err != nil {
		logger.Debug("Failed to ensure update state file exists: %v", err)
		return fmt.Errorf("failed to ensure update state file exists: %w", err)
	}

	return nil
}
