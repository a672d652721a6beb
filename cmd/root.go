/* cmd/root.go */

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_cli"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Subcommands
	"github.com/CodeMonkeyCybersecurity/pwmeter/cmd/check"
	configcmd "github.com/CodeMonkeyCybersecurity/pwmeter/cmd/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/cmd/generate"
	"github.com/CodeMonkeyCybersecurity/pwmeter/cmd/logs"
	"github.com/CodeMonkeyCybersecurity/pwmeter/cmd/menu"
	"github.com/CodeMonkeyCybersecurity/pwmeter/cmd/version"
)

// RootCmd is the base command for pwmeter. Without a subcommand it starts the menu.
var RootCmd = &cobra.Command{
	Use:   shared.AppName,
	Short: "Password strength meter and strong password generator",
	Long: `pwmeter scores passwords against a fixed rule set (length, character classes
and common patterns) and generates cryptographically random passwords that pass
every rule.

Run without a subcommand for the interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
	RunE:              pwm_cli.Wrap(menu.Run),
}

var configFile string

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/pwmeter/pwmeter.yaml, then ./pwmeter.yaml)")
	pf.String("log-level", "", "Log file level: DEBUG, INFO, WARN or ERROR")
	pf.String("output", "", "Output format: text or json")
	pf.Bool("no-color", false, "Disable coloured output")
	pf.Bool("telemetry", false, "Record command spans to $XDG_STATE_HOME/pwmeter/telemetry.jsonl")
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	for _, subCmd := range []*cobra.Command{
		check.CheckCmd,
		generate.GenerateCmd,
		configcmd.ConfigCmd,
		menu.MenuCmd,
		logs.LogsCmd,
		version.VersionCmd,
	} {
		if subCmd.Parent() == nil {
			RootCmd.AddCommand(subCmd)
		}
	}
}

// initRuntime loads .env and configuration, then brings up logging and telemetry.
func initRuntime(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(shared.EnvFileName); err != nil {
		return err
	}

	v := config.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	root := cmd.Root()
	if err := config.BindFlagsToViper(root, v); err != nil {
		return pwm_err.NewInternalError("failed to bind flags", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if noColor, _ := root.PersistentFlags().GetBool("no-color"); noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	config.SetActive(cfg)

	log := logger.Initialize(logger.Options{Level: cfg.LogLevel})
	if err := telemetry.Init(shared.AppName, cfg.Telemetry); err != nil {
		log.Warn("Telemetry disabled", zap.Error(err))
	}

	log.Debug("Configuration loaded",
		zap.String("config_file", cfg.ConfigFile),
		zap.String("output", cfg.Output),
		zap.Int("default_length", cfg.DefaultLength),
		zap.Bool("telemetry", cfg.Telemetry),
	)
	return nil
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	RegisterCommands()
	RootCmd.SetArgs(args)
	RootCmd.SetIn(stdin)
	RootCmd.SetOut(stdout)
	RootCmd.SetErr(stderr)

	err := RootCmd.ExecuteContext(ctx)

	if shutdownErr := telemetry.Shutdown(context.Background()); shutdownErr != nil {
		logger.L().Warn("Failed to flush telemetry", zap.Error(shutdownErr))
	}
	if err != nil {
		pwm_err.PrintError(stderr, logger.L(), shared.AppName+" failed", err)
	}
	_ = logger.Sync()
	return pwm_err.GetExitCode(err)
}

// Execute runs the CLI against the process streams and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
