package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"signassist/internal/config"
	"signassist/internal/logging"
)

// globalFlags holds the persistent flags shared by every command
type globalFlags struct {
	configPath string
	provider   string
	model      string
	logLevel   string
	logFile    string
	videoDelay time.Duration
}

func (f *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	fs.StringVar(&f.provider, "provider", "", "Description provider: gemini, openai or offline")
	fs.StringVar(&f.model, "model", "", "Model name for the provider")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFile, "log-file", "", "Log file for the interactive UI (default "+logging.DefaultFile+")")
	fs.DurationVar(&f.videoDelay, "video-delay", 0, "How long the video stays in its loading state")
}

// apply copies the flags that were set onto cfg and validates the result
func (f *globalFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("provider") {
		cfg.AI.Provider = strings.ToLower(strings.TrimSpace(f.provider))
	}
	if fs.Changed("model") {
		cfg.AI.Model = f.model
	}
	if fs.Changed("video-delay") {
		cfg.Video.MinDisplayDelay = config.Duration(f.videoDelay)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}
