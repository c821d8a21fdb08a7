// Package config provides the validation policy configuration for
// fleetconfig.
//
// The policy controls how strictly raw documents are accepted, not what
// the contract itself requires: contract constraints are fixed by the
// wire protocol, while the policy lets an embedding service decide things
// like whether unknown wire fields are tolerated.
//
// Configuration is loaded in the following order (later sources override
// earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration file (optional YAML)
//  3. Environment variables (FC_ prefix)
//
// # Environment Variables
//
// Use the FC_ prefix and underscores for keys:
//   - FC_STRICT_FIELDS=true
//   - FC_MAX_DOCUMENT_SIZE=65536
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"evalgo.org/fleetconfig/models"
)

// Options is the validation policy applied by the validation layer.
type Options struct {
	// StrictFields rejects documents carrying wire fields the contract
	// does not declare (default: false, unknown fields are ignored)
	StrictFields bool `mapstructure:"strict_fields"`

	// MaxDocumentSize is the byte ceiling on accepted documents; 0
	// disables the guard (default: models.MaxAlertMessageLength)
	MaxDocumentSize int `mapstructure:"max_document_size"`
}

// Default returns the default validation policy.
func Default() Options {
	return Options{
		StrictFields:    false,
		MaxDocumentSize: models.MaxAlertMessageLength,
	}
}

// Load reads the validation policy from a file and environment variables.
// If cfgFile is empty, only defaults and environment variables apply.
func Load(cfgFile string) (Options, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("FC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	opts := Options{}
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(opts); err != nil {
		return Options{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return opts, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("strict_fields", false)
	v.SetDefault("max_document_size", models.MaxAlertMessageLength)
}

func validate(opts Options) error {
	if opts.MaxDocumentSize < 0 {
		return fmt.Errorf("invalid max_document_size: %d", opts.MaxDocumentSize)
	}

	return nil
}
