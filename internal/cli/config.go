package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	ferrors "github.com/matzehuels/featprune/pkg/errors"
	"github.com/matzehuels/featprune/pkg/pipeline"
)

// Settings holds the tunables shared by the analysis commands.
//
// Values are resolved in order of precedence: command-line flag,
// FEATPRUNE_* environment variable, config file, built-in default.
type Settings struct {
	By         string  `mapstructure:"by"`
	Threshold  float64 `mapstructure:"threshold"`
	NSelect    int     `mapstructure:"n_select"`
	Importance string  `mapstructure:"importance"`
	Format     string  `mapstructure:"format"`
}

// settingKeys maps config keys to the flag names that override them.
var settingKeys = map[string]string{
	"by":         "by",
	"threshold":  "threshold",
	"n_select":   "n-select",
	"importance": "importance",
	"format":     "format",
}

// configDir returns the config directory using XDG standard (~/.config/featprune/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// settings resolves the settings for cmd.
//
// A config file named explicitly (via --config or FEATPRUNE_CONFIG) must
// exist; the default location is optional.
func (c *CLI) settings(cmd *cobra.Command) (Settings, error) {
	v := viper.New()

	v.SetDefault("by", pipeline.DefaultBy)
	v.SetDefault("threshold", pipeline.DefaultThreshold)
	v.SetDefault("n_select", pipeline.DefaultNSelect)
	v.SetDefault("importance", "")
	v.SetDefault("format", formatText)

	v.SetConfigType("toml")
	explicit := c.configPath
	if explicit == "" {
		explicit = os.Getenv(envPrefix + "_CONFIG")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Settings{}, ferrors.Wrap(ferrors.ErrCodeConfiguration, err, "read config")
		}
	} else {
		c.Logger.Debug("using config file", "path", v.ConfigFileUsed())
	}

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, ferrors.Wrap(ferrors.ErrCodeConfiguration, err, "decode settings")
	}
	if err := validateFormat(s.Format); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range settingKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// addSettingsFlags registers the flags that override settings. Defaults
// shown in help are the built-in defaults; config and env still apply
// when a flag is not given.
func addSettingsFlags(cmd *cobra.Command, withFormat bool) {
	cmd.Flags().String("by", pipeline.DefaultBy, "ranking criterion: variance, importance")
	cmd.Flags().Float64("threshold", pipeline.DefaultThreshold, "absolute correlation a pair must exceed to be grouped, in (0,1)")
	cmd.Flags().Int("n-select", pipeline.DefaultNSelect, "features kept per correlated group")
	cmd.Flags().String("importance", "", "importance scores file (.json, .toml or .csv)")
	if withFormat {
		cmd.Flags().StringP("format", "f", formatText, "output format: text, json")
	}
}

// =============================================================================
// Output Formats
// =============================================================================

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	}
	return ferrors.New(ferrors.ErrCodeInvalidArgument, "invalid format: %q (must be one of: text, json)", format)
}
