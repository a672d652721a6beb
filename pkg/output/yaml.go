// pkg/output/yaml.go

package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLTo writes data as YAML to w.
func YAMLTo(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}
