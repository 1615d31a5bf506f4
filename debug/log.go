package debug

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Logf writes to stderr. Arguments that are generic JSON objects or arrays,
// or that marshal to JSON without being Stringers, are rendered as indented
// JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch a.(type) {
		case fmt.Stringer, error:
			continue
		case map[string]any, []any, json.Marshaler:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
