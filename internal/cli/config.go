// Config loading for the sktplan CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBaseURL     = "api.base_url"
	cfgKeyToken       = "api.token"
	cfgKeyTimeout     = "api.timeout"
	cfgKeyMaxDecimals = "grid.max_decimals"

	defaultBaseURL     = "http://localhost:8080/api/v1"
	defaultTimeout     = 15 * time.Second
	defaultMaxDecimals = 2
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# sktplan CLI configuration

api:
  base_url: http://localhost:8080/api/v1
  # token: set via SKTPLAN_API_TOKEN or here
  timeout: 15s

grid:
  max_decimals: 2
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default file on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBaseURL, defaultBaseURL)
	v.SetDefault(cfgKeyTimeout, defaultTimeout)
	v.SetDefault(cfgKeyMaxDecimals, defaultMaxDecimals)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("SKTPLAN")
	v.BindEnv(cfgKeyToken, "SKTPLAN_API_TOKEN")
	v.BindEnv(cfgKeyBaseURL, "SKTPLAN_API_BASE_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml when none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
