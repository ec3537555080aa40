package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds process-level nacmd settings.
type Config struct {
	// PolicyFile is the path to the NACM policy YAML document.
	PolicyFile string `mapstructure:"policy-file"`
	// RecoveryUser is the identity exempt from NACM checks (spec.md §9).
	RecoveryUser string `mapstructure:"recovery-user"`
	// EnableExternalGroupsDefault is decoded but not applied: a policy
	// document that omits enable-external-groups loads with it false.
	EnableExternalGroupsDefault bool `mapstructure:"enable-external-groups-default"`
	Logging                     LogConfig `mapstructure:"logging"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Defaults returns a Config populated with the same defaults the
// teacher's config package used for its own LogConfig.
func Defaults() Config {
	return Config{
		PolicyFile:   "nacm.yaml",
		RecoveryUser: "recovery",
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// Load reads configuration from path (if non-empty), environment
// variables prefixed NACMD_, and falls back to Defaults for anything
// unset.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Defaults()
	v.SetDefault("policy-file", def.PolicyFile)
	v.SetDefault("recovery-user", def.RecoveryUser)
	v.SetDefault("enable-external-groups-default", def.EnableExternalGroupsDefault)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)

	v.SetEnvPrefix("nacmd")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}
