// pkg/shared/constants.go

package shared

const (
	AppName = "pwmeter"
	// EnvPrefix namespaces environment overrides, e.g. PWMETER_LOG_LEVEL.
	EnvPrefix = "PWMETER"

	ConfigFileName    = AppName + ".yaml"
	TelemetryFileName = "telemetry.jsonl"
	EnvFileName       = ".env"
)

// Version is overridden at build time with -ldflags "-X .../pkg/shared.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
