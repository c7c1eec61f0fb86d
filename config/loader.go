package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSection is the configuration section holding observability keys.
const DefaultSection = "observability"

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
	section    string
}

// WithConfigFile sets an explicit config file path instead of searching
// the standard locations.
func WithConfigFile(path string) LoadOption {
	return func(lo *loadOptions) { lo.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoadOption {
	return func(lo *loadOptions) { lo.envFile = path }
}

// WithSection overrides the config section name.
func WithSection(name string) LoadOption {
	return func(lo *loadOptions) { lo.section = name }
}

// Load populates cfg from a YAML config file and environment variables.
//
// File keys live under the section name ("observability" by default);
// environment variables use the uppercased section as prefix, e.g.
// OBSERVABILITY_SERVICE_NAME maps to service_name. Environment variables
// win over file values. Missing files are not an error — defaults still
// apply.
func Load(cfg *Config, opts ...LoadOption) error {
	lo := loadOptions{section: DefaultSection}
	for _, opt := range opts {
		opt(&lo)
	}

	loadEnvFile(lo.envFile)

	v := viper.New()

	configFile := lo.configFile
	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" && fileExists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	bindSectionEnv(v, lo.section)

	// AllSettings merges file values and Set overrides key by key. Sub
	// would resolve the section against the override map alone once any
	// prefixed variable is set, discarding the file-configured keys.
	section := viper.New()
	if settings, ok := v.AllSettings()[lo.section].(map[string]any); ok {
		if err := section.MergeConfigMap(settings); err != nil {
			return fmt.Errorf("merging %s config: %w", lo.section, err)
		}
	}
	if err := section.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshaling %s config: %w", lo.section, err)
	}

	cfg.ApplyDefaults()
	return nil
}

// loadEnvFile loads the explicit .env file, or ./.env when present.
func loadEnvFile(path string) {
	if path == "" {
		if !fileExists(".env") {
			return
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		fmt.Printf("[config] warning: failed to load .env file %s: %v\n", path, err)
	}
}

// findConfigFile searches the standard locations for config.yml.
func findConfigFile() string {
	searchPaths := []string{
		"./config.yml",
		"./config/config.yml",
		"../config/config.yml",
	}
	for _, path := range searchPaths {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// bindSectionEnv maps prefixed environment variables into the section,
// so OBSERVABILITY_SERVICE_NAME becomes observability.service_name.
func bindSectionEnv(v *viper.Viper, section string) {
	prefix := strings.ToUpper(section) + "_"
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		v.Set(section+"."+key, pair[1])
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
