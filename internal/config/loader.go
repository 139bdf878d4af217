package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/gcpctl"
	projectConfigDir = ".gcpctl"
	configFileName   = "config.yaml"
)

// Load layers the default, user, and project configuration. Missing
// files are fine; unreadable or malformed files are not.
func Load() (Config, error) {
	config := Default()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = merge(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = merge(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	cwd, err := osGetwd()
	if err != nil {
		return "", fmt.Errorf("could not determine working directory: %w", err)
	}
	return filepath.Join(cwd, projectConfigDir, configFileName), nil
}

func loadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file %s: %w", path, err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return config, nil
}

// merge overlays non-zero fields of overlay onto base. Boolean flags
// only merge in the enabling direction; a layer cannot un-set a flag
// a lower layer enabled.
func merge(base, overlay Config) Config {
	merged := base
	if overlay.GcloudBinary != "" {
		merged.GcloudBinary = overlay.GcloudBinary
	}
	if overlay.VerifyCluster {
		merged.VerifyCluster = true
	}
	if overlay.Output.Format != "" {
		merged.Output.Format = overlay.Output.Format
	}
	if overlay.Output.NoColor {
		merged.Output.NoColor = true
	}
	return merged
}
