// pkg/password/blacklist.go

package password

import "strings"

// commonPatterns are known-weak passwords. A password is penalised when its
// lowercase form contains any of them anywhere, not only on exact match.
var commonPatterns = [...]string{
	"password",
	"123456",
	"qwerty",
	"admin",
	"letmein",
	"welcome",
	"monkey",
	"password123",
}

// CommonPatterns returns a copy of the blacklist.
func CommonPatterns() []string {
	out := make([]string, len(commonPatterns))
	copy(out, commonPatterns[:])
	return out
}

// MatchCommonPattern returns the first blacklisted pattern found in pw,
// compared case-insensitively.
func MatchCommonPattern(pw string) (string, bool) {
	lowered := strings.ToLower(pw)
	for _, p := range commonPatterns {
		if strings.Contains(lowered, p) {
			return p, true
		}
	}
	return "", false
}
