// cmd/version/version.go
package version

import (
	"fmt"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/output"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_cli"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/pwm_io"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/spf13/cobra"
)

// Info is the build metadata printed by the version command.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current describes this binary.
func Current() Info {
	return Info{
		Version:   shared.Version,
		GitCommit: shared.GitCommit,
		BuildDate: shared.BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// VersionCmd represents the 'pwmeter version' command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pwmeter version",
	Args:  cobra.NoArgs,
	RunE: pwm_cli.Wrap(func(rc *pwm_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		info := Current()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return output.JSONTo(cmd.OutOrStdout(), info)
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s, %s, %s)\n",
			shared.AppName, info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
		return err
	}),
}

func init() {
	VersionCmd.Flags().Bool("json", false, "Print build metadata as JSON")
}
