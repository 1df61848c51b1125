package covjson

import "github.com/goliatone/go-covjson/internal/runtimeconfig"

var (
	ErrSchemaRootRequired      = runtimeconfig.ErrSchemaRootRequired
	ErrSchemaIDPrefixInvalid   = runtimeconfig.ErrSchemaIDPrefixInvalid
	ErrSchemaBaseURLInvalid    = runtimeconfig.ErrSchemaBaseURLInvalid
	ErrValidationModeUnknown   = runtimeconfig.ErrValidationModeUnknown
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
	ErrExternalPrefixEmpty     = runtimeconfig.ErrExternalPrefixEmpty
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	SchemasConfig    = runtimeconfig.SchemasConfig
	BundleConfig     = runtimeconfig.BundleConfig
	DowngradeConfig  = runtimeconfig.DowngradeConfig
	ValidationConfig = runtimeconfig.ValidationConfig
	CommandsConfig   = runtimeconfig.CommandsConfig
	Features         = runtimeconfig.Features
	LoggingConfig    = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML configuration file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
