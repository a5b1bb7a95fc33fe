package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/filepanel/internal/selection"
)

// Config holds application configuration.
type Config struct {
	Limits  LimitsConfig
	UI      UIConfig
	Log     LogConfig
	Handoff HandoffConfig
	Keys    map[string][]string
}

// LimitsConfig bounds what the panel accepts.
type LimitsConfig struct {
	MaxFiles     int      `mapstructure:"max_files"`
	MaxFileSize  int64    `mapstructure:"max_file_size"`
	AllowedTypes []string `mapstructure:"allowed_types"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title      string
	StartDir   string `mapstructure:"start_dir"`
	ShowHidden bool   `mapstructure:"show_hidden"`
}

// LogConfig controls the log file. The terminal belongs to the UI, so logs
// never go to stdout or stderr.
type LogConfig struct {
	Path  string
	Level string
}

// HandoffConfig controls what is emitted when the selection is submitted.
type HandoffConfig struct {
	Format string
	Output string
}

func (l LimitsConfig) Selection() selection.Limits {
	return selection.Limits{
		MaxFiles:     l.MaxFiles,
		MaxFileSize:  l.MaxFileSize,
		AllowedTypes: append([]string(nil), l.AllowedTypes...),
	}
}

// Flags declares the command-line overrides understood by Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to config file (TOML)")
	fs.String("dir", "", "directory the file picker opens in")
	fs.Int("max-files", 0, "maximum number of selected files")
	fs.Int64("max-file-size", 0, "maximum size of one file in bytes")
	fs.StringSlice("allowed-types", nil, "accepted MIME types")
	fs.String("format", "", "handoff format: json or paths")
	fs.String("output", "", "handoff destination, - for stdout")
	fs.String("log-file", "", "log file path")
	fs.String("log-level", "", "log level")
	fs.Bool("hidden", false, "show hidden files in the picker")
	return fs
}

var flagKeys = map[string]string{
	"dir":           "ui.start_dir",
	"max-files":     "limits.max_files",
	"max-file-size": "limits.max_file_size",
	"allowed-types": "limits.allowed_types",
	"format":        "handoff.format",
	"output":        "handoff.output",
	"log-file":      "log.path",
	"log-level":     "log.level",
	"hidden":        "ui.show_hidden",
}

// Load reads configuration from defaults, file, env and flags, in increasing
// priority. Env var overrides use prefix FILEPANEL_. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("limits.max_files", selection.DefaultMaxFiles)
	v.SetDefault("limits.max_file_size", selection.DefaultMaxFileSize)
	v.SetDefault("limits.allowed_types", selection.DefaultAllowedTypes)
	v.SetDefault("ui.title", "File Upload")
	v.SetDefault("ui.start_dir", ".")
	v.SetDefault("ui.show_hidden", false)
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("handoff.format", "json")
	v.SetDefault("handoff.output", "-")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FILEPANEL_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(configHome(), "filepanel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FILEPANEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, an explicit one must exist
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for flagName, key := range flagKeys {
			f := fs.Lookup(flagName)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Limits.AllowedTypes = splitTypes(c.Limits.AllowedTypes)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the panel cannot run with.
func (c Config) Validate() error {
	if err := c.Limits.Selection().Validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	switch strings.ToLower(c.Handoff.Format) {
	case "json", "paths":
	default:
		return fmt.Errorf("handoff: unknown format %q", c.Handoff.Format)
	}
	return nil
}

// splitTypes accepts both list values and the comma separated form env vars
// produce.
func splitTypes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, strings.ToLower(part))
			}
		}
	}
	return out
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

func defaultLogPath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".local", "state")
	}
	return filepath.Join(dir, "filepanel", "filepanel.log")
}
