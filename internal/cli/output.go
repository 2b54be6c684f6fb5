package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// render writes v in the configured output format. text is used for the
// human readable form.
func render(w io.Writer, v any, text func(io.Writer)) (err error) {
	switch format := strings.ToLower(viper.GetString("output")); format {
	case "", "text":
		text(w)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() {
			if closeErr := enc.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close yaml encoder: %w", closeErr)
			}
		}()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
