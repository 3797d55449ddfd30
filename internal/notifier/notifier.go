package notifier

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/gat/internal/checker"
	"github.com/MrSnakeDoc/gat/internal/config"
	"github.com/MrSnakeDoc/gat/internal/logger"
	"github.com/MrSnakeDoc/gat/internal/printer"
	"github.com/MrSnakeDoc/gat/internal/utils"
)

const (
	borderColor = "\033[38;5;39m"
	resetColor  = "\033[0m"
	padding     = 2
)

// DisplayUpdateNotification shows the update box when the saved state says
// a newer release exists.
func DisplayUpdateNotification() {
	stateFile, err := utils.UpdateStatePath()
	if err != nil {
		logger.Debug("failed to resolve update state path: %v", err)
		return
	}

	if ok, _ := utils.FileExists(stateFile); !ok {
		return
	}

	var state config.UpdateState
	if err := utils.FileReader(stateFile, utils.FileTypeJSON, &state); err != nil {
		logger.Debug("failed to load update state: %v", err)
		return
	}

	if !state.UpdateAvailable {
		return
	}

	DisplayVersionUpdate(state.LatestVersion)
}

// DisplayVersionUpdate shows a formatted notification for a new version.
func DisplayVersionUpdate(version string) {
	p := printer.NewColorPrinter()

	title := p.Success("New Version Available!")
	detected := p.Info("New version detected:")
	command := p.Warning("Run ")
	updateCmd := p.Success("gat update")
	instruction := p.Warning(" to check again.")
	actualVersion := p.Error(checker.Version)
	versionInfo := p.Success(version)

	lines := []string{
		title,
		fmt.Sprintf("%s %s -> %s", detected, actualVersion, versionInfo),
		fmt.Sprintf("%s%s%s", command, updateCmd, instruction),
	}

	maxWidth := utils.GetMaxWidth(lines) + padding*2
	topBottomBorder := borderColor + "╭" + strings.Repeat("─", maxWidth) + "╮" + resetColor
	sideBorder := borderColor + "│" + resetColor

	fmt.Println(topBottomBorder)
	for _, line := range lines {
		paddingLeft := (maxWidth - len(utils.StripANSI(line))) / 2
		paddingRight := maxWidth - len(utils.StripANSI(line)) - paddingLeft
		fmt.Printf("%s%s%s%s%s\n", sideBorder, strings.Repeat(" ", paddingLeft), line, strings.Repeat(" ", paddingRight), sideBorder)
	}
	fmt.Println(borderColor + "╰" + strings.Repeat("─", maxWidth) + "╯" + resetColor)
}
