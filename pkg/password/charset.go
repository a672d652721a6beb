// pkg/password/charset.go

package password

import "strings"

// Character classes a password is scored against and generated from.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Special   = "!@#$%^&*"

	AllCharacters = Uppercase + Lowercase + Digits + Special
)

// CharClass names one required character class.
type CharClass struct {
	Name    string
	Charset string
}

// RequiredClasses lists the classes in scoring and generation order.
func RequiredClasses() []CharClass {
	return []CharClass{
		{Name: "uppercase", Charset: Uppercase},
		{Name: "lowercase", Charset: Lowercase},
		{Name: "digit", Charset: Digits},
		{Name: "special", Charset: Special},
	}
}

// containsAny reports whether s has at least one byte from charset.
// All class charsets are ASCII, so a byte scan is exact even for UTF-8 input.
func containsAny(s, charset string) bool {
	return strings.ContainsAny(s, charset)
}
