// pkg/config/config.go

package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyLogLevel      = "log_level"
	KeyDefaultLength = "default_length"
	KeyOutput        = "output"
	KeyColor         = "color"
	KeyTelemetry     = "telemetry"

	OutputText = "text"
	OutputJSON = "json"
)

// Config is the merged result of defaults, pwmeter.yaml, .env, PWMETER_*
// environment variables and command-line flags, in increasing precedence.
type Config struct {
	LogLevel      string `mapstructure:"log_level" json:"log_level" yaml:"log_level" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	DefaultLength int    `mapstructure:"default_length" json:"default_length" yaml:"default_length" validate:"min=4,max=4096"`
	Output        string `mapstructure:"output" json:"output" yaml:"output" validate:"oneof=text json"`
	Color         bool   `mapstructure:"color" json:"color" yaml:"color"`
	Telemetry     bool   `mapstructure:"telemetry" json:"telemetry" yaml:"telemetry"`

	// ConfigFile is the file that was read, if any.
	ConfigFile string `mapstructure:"-" json:"config_file,omitempty" yaml:"-"`
}

var validate = validator.New()

// SetDefaults registers every key so that AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "INFO")
	v.SetDefault(KeyDefaultLength, password.DefaultLength)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyColor, true)
	v.SetDefault(KeyTelemetry, false)
}

// New returns a viper instance with defaults, search paths and env binding in place.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	SetViperEnvPrefix(v, shared.EnvPrefix)
	v.SetConfigName(strings.TrimSuffix(shared.ConfigFileName, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(xdg.ConfigDir(shared.AppName))
	v.AddConfigPath(".")
	return v
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return pwm_err.NewConfigError("failed to load "+path, err, "Fix the KEY=VALUE syntax in "+path+" or remove the file")
	}
	return nil
}

// Load reads the config file (if any) and decodes and validates the result.
// A missing config file is not an error; a malformed one is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, pwm_err.NewConfigError("failed to read configuration", err,
				"Fix the YAML syntax in "+shared.ConfigFileName)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, pwm_err.NewConfigError("failed to decode configuration", err,
			"Check value types in "+shared.ConfigFileName+" and PWMETER_* environment variables")
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, pwm_err.WrapConfigError(err)
	}
	return &cfg, nil
}

// Validate applies the struct tags and reports every failing field at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pwm_err.NewConfigError("invalid configuration", err)
	}

	var result error
	for _, fe := range verrs {
		result = multierror.Append(result, fieldError(fe))
	}
	return pwm_err.NewConfigError("invalid configuration", result,
		"Allowed: log_level DEBUG|INFO|WARN|ERROR, default_length 4-4096, output text|json")
}

func fieldError(fe validator.FieldError) error {
	key := strings.ToLower(fe.Field())
	switch fe.Field() {
	case "LogLevel":
		key = KeyLogLevel
	case "DefaultLength":
		key = KeyDefaultLength
	}
	if fe.Param() != "" {
		return &FieldError{Key: key, Rule: fe.Tag() + "=" + fe.Param(), Value: fe.Value()}
	}
	return &FieldError{Key: key, Rule: fe.Tag(), Value: fe.Value()}
}

// BindFlagsToViper binds all local and persistent flags on a command to a
// Viper instance. Dashes in flag names become underscores in keys.
func BindFlagsToViper(cmd *cobra.Command, v *viper.Viper) error {
	var result error
	bind := func(f *pflag.Flag) {
		if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
			result = multierror.Append(result, err)
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.PersistentFlags().VisitAll(bind)
	return result
}

// SetViperEnvPrefix lets viper read PREFIX_KEY environment variables.
func SetViperEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
}
