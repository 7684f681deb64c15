package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the tool configuration loaded from the settings file.
type Settings struct {
	// ENCDirectory is the directory with per-host Puppet ENC YAML files.
	ENCDirectory string `yaml:"yaml_dir"`
	// LogFile is an optional path receiving a debug-level copy of all logs.
	LogFile string `yaml:"log_file"`
	// LockFile is the path used to serialize concurrent invocations.
	LockFile string `yaml:"lock_file"`
	// LogLevel is the console log level ("debug", "info", "warn", "error").
	// Verbosity flags on the command line take precedence.
	LogLevel string `yaml:"log_level"`
	// Downtimes lists maintenance windows as "DD.MM.YYYY - DD.MM.YYYY"
	// strings during which updates must not be switched on.
	Downtimes []string `yaml:"downtimes"`
}

const (
	// DefaultSettingsPath is the default location of the settings file.
	DefaultSettingsPath = "/usr/local/etc/manage-updates.yaml"

	// DefaultENCDirectory is the default directory with per-host ENC files.
	DefaultENCDirectory = "/appl/puppet/enc"

	// DefaultLockFile is the default lock file preventing parallel runs.
	DefaultLockFile = "/var/run/manage-updates.lock"

	// DefaultFilePermissions is the default file permission for the settings file.
	DefaultFilePermissions = 0o600
)

var (
	// ErrMalformed is returned when the settings file is not valid YAML.
	ErrMalformed = errors.New("malformed settings file")
	// errSettingsNotSet is returned when a nil Settings is provided.
	errSettingsNotSet = errors.New("settings are not set")
)

// Load reads settings from the provided path and fills in defaults.
// A missing file is not an error: the tool runs with defaults then.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultSettingsPath
	}

	var settings Settings

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read settings: %w", err)
	default:
		if err = yaml.Unmarshal(contents, &settings); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	Validate(&settings)

	return &settings, nil
}

// Save writes settings to the provided path.
func Save(path string, settings *Settings) error {
	if settings == nil {
		return errSettingsNotSet
	}

	if path == "" {
		path = DefaultSettingsPath
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills empty fields with defaults.
func Validate(settings *Settings) {
	if settings.ENCDirectory == "" {
		settings.ENCDirectory = DefaultENCDirectory
	}

	if settings.LockFile == "" {
		settings.LockFile = DefaultLockFile
	}
}
