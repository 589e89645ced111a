package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// TOMLConfig is a kong.ConfigurationLoader for TOML files.
// Keys are flag names. Tables are flattened with hyphens, so
//
//	[log]
//	level = "debug"
//
// sets --log-level.
func TOMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("invalid TOML config: %w", err)
	}

	flat := map[string]string{}
	flattenConfig("", values, flat)

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := flat[flag.Name]
		if !ok {
			return nil, nil
		}
		return v, nil
	}), nil
}

func flattenConfig(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "-" + k
		}
		if table, ok := v.(map[string]any); ok {
			flattenConfig(key, table, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}
