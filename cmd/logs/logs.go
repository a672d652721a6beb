// cmd/logs/logs.go

package logs

import (
	"fmt"
	"os"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/config"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_cli"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_err"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// LogsCmd represents the 'pwmeter logs' command
var LogsCmd = NewLogsCmd()

// NewLogsCmd builds a fresh logs command.
func NewLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs",
		Aliases: []string{"log"},
		Short:   "Show the most recent pwmeter log entries",
		Long: `Print the last lines of the JSON log file, coloured by level when
writing to a terminal. Use --path to print only the file location and
--follow to keep printing new entries until interrupted.`,
		Args: cobra.NoArgs,
		RunE: pwm_cli.Wrap(runLogs),
	}
	cmd.Flags().IntP("lines", "n", 50, "Number of trailing lines to show")
	cmd.Flags().Bool("path", false, "Print the log file path and exit")
	cmd.Flags().String("file", "", "Read this log file instead of the active one")
	cmd.Flags().BoolP("follow", "f", false, "Keep printing entries as they are appended")
	return cmd
}

func runLogs(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("lines")
	pathOnly, _ := cmd.Flags().GetBool("path")
	path, _ := cmd.Flags().GetString("file")
	follow, _ := cmd.Flags().GetBool("follow")
	if path == "" {
		path = resolveLogPath()
	}
	out := cmd.OutOrStdout()

	if path == "" {
		return pwm_err.NewExpectedError(fmt.Errorf("no log file in use"))
	}
	if pathOnly {
		_, err := fmt.Fprintln(out, path)
		return err
	}
	if n < 1 {
		return pwm_err.NewValidationError(fmt.Sprintf("invalid line count %d", n), "Use --lines 1 or more")
	}

	lines, err := logger.TailLogFile(path, n)
	if err != nil {
		return pwm_err.NewSystemError("failed to read log file", err,
			"Run any pwmeter command once to create it, or pass --file")
	}

	format := func(line string) string { return line }
	if f, ok := out.(*os.File); ok && pwm_io.IsTerminal(f) && config.Active().Color {
		format = logger.ColorizeLogLine
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, format(line)); err != nil {
			return err
		}
	}

	if !follow {
		return nil
	}
	otelzap.Ctx(rc.Ctx).Debug("Following log file", zap.String("path", path))
	if err := logger.FollowLogFile(rc.Ctx, path, out, format); err != nil {
		return pwm_err.NewSystemError("failed to follow log file", err)
	}
	return nil
}

// resolveLogPath prefers the file this process is writing to, then the first
// platform candidate that exists.
func resolveLogPath() string {
	if p := logger.LogPath(); p != "" {
		return p
	}
	for _, p := range logger.PlatformLogPaths() {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}
