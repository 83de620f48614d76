// Package config loads the glue command-line settings from defaults, an
// optional YAML file, GLUE_* environment variables and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/afiolmahon/glue-shell/errors"
	"github.com/afiolmahon/glue-shell/exec"
)

const (
	// AppName is the application name.
	AppName = "glue"
	// FileName is the name of the config file (without extension).
	FileName = "glue"
	// FileExt is the config file extension.
	FileExt = "yaml"
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "GLUE"
)

// Config holds the engine settings shared by every glue subcommand.
type Config struct {
	Verbose bool             `mapstructure:"verbose"`
	DryRun  bool             `mapstructure:"dry_run"`
	OnError exec.ErrorPolicy `mapstructure:"on_error"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{OnError: exec.PolicyFatal}
}

// Options converts the configuration into options for exec.NewWrapper.
func (c *Config) Options() []exec.Option {
	return []exec.Option{
		exec.WithVerbose(c.Verbose),
		exec.WithDryRun(c.DryRun),
		exec.WithErrorPolicy(c.OnError),
	}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFilePath is an explicit config file. When set it must exist and
	// no other location is searched.
	ConfigFilePath string

	// ConfigDirPath overrides the user config directory returned by Dir.
	ConfigDirPath string

	// Flags, when set, provides the highest-precedence values. Only flags
	// that were changed on the command line override other sources.
	Flags *pflag.FlagSet
}

// flagNames maps config keys to their command-line flag names.
var flagNames = map[string]string{
	"verbose":  "verbose",
	"dry_run":  "dry-run",
	"on_error": "on-error",
}

// Dir returns the glue configuration directory, $XDG_CONFIG_HOME/glue or the
// platform equivalent.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidConfig, "failed to locate user config directory")
	}
	return filepath.Join(base, AppName), nil
}

// Load resolves the configuration. It returns the config and the path of the
// file that was read, empty if none was found.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("dry_run", defaults.DryRun)
	v.SetDefault("on_error", defaults.OnError.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range flagNames {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, "", errors.Wrapf(err, errors.CodeInvalidConfig, "failed to bind flag --%s", name)
			}
		}
	}

	path, err := readConfigFile(v, opts)
	if err != nil {
		return nil, "", err
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, "", errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to parse configuration",
			map[string]interface{}{"path": path})
	}

	return &cfg, path, nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", errors.WithContext(
				errors.New(errors.CodeInvalidConfig, "config file not found"),
				"path", opts.ConfigFilePath,
			)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return "", errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to read config file",
				map[string]interface{}{"path": opts.ConfigFilePath})
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return "", err
		}
		dir = d
	}

	v.SetConfigName(FileName)
	v.SetConfigType(FileExt)
	v.AddConfigPath(dir)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
	}
	return v.ConfigFileUsed(), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
