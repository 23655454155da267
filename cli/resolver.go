package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] reading flag defaults from the
// top-level scalar keys of the YAML configuration file:
//
//	log_level: debug
//	log_format: json
//	log_caller: true
//
// Flag names with hyphens are looked up with underscores as well. Keys that
// are not scalars, such as the targets list, are ignored. A file that does
// not parse resolves nothing, leaving commands that load it to report the
// error. Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return flags{}, nil
	}

	values := make(flags, len(doc))

	for key, val := range doc {
		switch v := val.(type) {
		case string, bool:
			values[key] = v
		// Kong requires numbers as strings for parsing.
		case int64:
			values[key] = strconv.FormatInt(v, 10)
		case uint64:
			values[key] = strconv.FormatUint(v, 10)
		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return values, nil
}

// flags implements [kong.Resolver] for YAML configs.
type flags map[string]any

// Validate implements [kong.Resolver].
func (flags) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r flags) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
