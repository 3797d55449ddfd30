package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MrSnakeDoc/gat/internal/config"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/service"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

type Controller struct {
	Config     config.Config
	HTTPClient service.HTTPClient
}

type gitHubRelease struct {
	TagName    string `json:"tag_name"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

func New(conf *config.Config, client service.HTTPClient) *Controller {
	if conf == nil {
		defaultConfig := config.DefaultCheckerConfig()
		conf = &defaultConfig
	}

	if client == nil {
		client = service.NewHTTPClient(30 * time.Second)
	}

	return &Controller{
		Config:     *conf,
		HTTPClient: client,
	}
}

// Execute checks for a newer release and returns the latest version when an
// update is available, or "" otherwise. Network failures are non-fatal.
func (c *Controller) Execute(ctx context.Context, force bool) (string, error) {
	state, err := loadUpdateState()
	if err != nil {
		logger.Debug("Failed to load update state: %v", err)
	}

	needsCheck := force || state == nil || time.Since(state.LastChecked) >= c.Config.CheckFrequency
	if !needsCheck {
		return "", nil
	}

	release, err := c.fetchLatestRelease(ctx)
	if err != nil {
		logger.Debug("Failed to check for updates: %v", err)
		return "", nil
	}

	latest := strings.TrimPrefix(release.TagName, "v")

	isNewer := false
	if utils.IsSemver(Version) {
		isNewer, err = utils.IsNewerVersion(latest, Version)
		if err != nil {
			logger.Debug("Failed to compare versions: %v", err)
			return "", nil
		}
	}

	if !c.Config.ForceBypassSave {
		if err := saveUpdateState(config.UpdateState{
			LastChecked:     time.Now().UTC(),
			UpdateAvailable: isNewer,
			LatestVersion:   latest,
		}); err != nil {
			logger.Debug("Failed to save update state: %v", err)
		}
	}

	if isNewer {
		return latest, nil
	}
	return "", nil
}

func (c *Controller) fetchLatestRelease(ctx context.Context) (*gitHubRelease, error) {
	parsedURL, err := utils.ParseSecureURL(c.Config.VersionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer utils.Try(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response: %d", resp.StatusCode)
	}

	var release gitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &release, nil
}

func loadUpdateState() (*config.UpdateState, error) {
	updateStateFile, err := utils.EnsureUpdateStateFileExists()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure update state file exists: %w", err)
	}

	var state config.UpdateState
	if err := utils.FileReader(updateStateFile, utils.FileTypeJSON, &state); err != nil {
		return nil, fmt.Errorf("failed to read update state: %w", err)
	}

	return &state, nil
}

func saveUpdateState(state config.UpdateState) error {
	stateFile, err := utils.UpdateStatePath()
	if err != nil {
		return err
	}

	if err := utils.CreateFile(stateFile, state, utils.FileTypeJSON, 0o644); err != nil {
		return fmt.Errorf("failed to create update state file: %w", err)
	}

	return nil
}
