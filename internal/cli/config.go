package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML is a kong.ConfigurationLoader reading flag values from a YAML
// document. Keys are flag names, with dashes or underscores, eg.
//
//	verbosity: debug
//	category: [math]
//	publish-host: reports.example.com
//
// Nested mappings are addressed with dotted flag names.
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		return lookup(values, flag.Name), nil
	}

	return f, nil
}

func lookup(values map[string]any, name string) any {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if raw, ok := values[key]; ok {
			return raw
		}
	}

	var raw any = values
	for _, part := range strings.Split(name, ".") {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil
		}

		if raw, ok = m[part]; !ok {
			return nil
		}
	}

	return raw
}
