/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/xdg"
)

// PlatformLogPaths returns candidate log paths in order of priority for the platform.
func PlatformLogPaths() []string {
	file := shared.AppName + ".log"
	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), shared.AppName, file),
			filepath.Join(".", file),
		}
	default:
		return []string{
			xdg.XDGStatePath(shared.AppName, file), // ~/.local/state/pwmeter/pwmeter.log
			filepath.Join(".", file),
			filepath.Join(os.TempDir(), shared.AppName, file),
		}
	}
}
