// Package output renders evaluation and generation results as styled text or JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/CodeMonkeyCybersecurity/pwmeter/pkg/password"
)

// JSONTo writes any data structure as formatted JSON to the specified writer.
func JSONTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// GeneratedPassword is the JSON shape of one generated password.
type GeneratedPassword struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Result   *password.Result `json:"evaluation,omitempty"`
}
