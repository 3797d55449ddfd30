package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MrSnakeDoc/gat/internal/logger"
)

const (
	StateDir        = ".local/state/gat"
	UpdateStateName = "update-check.json"
	CheckExpiry     = 24 * time.Hour
)

func DefaultUpdateState() map[string]interface{} {
	return map[string]interface{}{
		"last_checked":     time.Now().Add(-CheckExpiry).UTC().Format(time.RFC3339Nano),
		"update_available": false,
		"latest_version":   "",
	}
}

func UpdateStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, StateDir, UpdateStateName), nil
}

func EnsureUpdateStateFileExists() (string, error) {
	stateFile, err := UpdateStatePath()
	if err != nil {
		return "", err
	}

	if ok, _ := FileExists(stateFile); !ok {
		logger.Debug("update state file does not exist: %s", stateFile)

		if err = CreateFile(stateFile, DefaultUpdateState(), FileTypeJSON, 0o644); err != nil {
			return "", fmt.Errorf("failed to create update state file: %w", err)
		}
	}

	return stateFile, nil
}
