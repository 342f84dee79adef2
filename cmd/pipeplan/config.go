package main

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeplan/internal/pipeline"
)

// loggingKeys are configuration keys consumed by the CLI itself rather than
// by the pipeline.
var loggingKeys = map[string]bool{"log_level": true, "log_format": true}

// yamlLoader resolves flags from a YAML mapping whose keys are flag names,
// written with dashes or underscores. The pipeline part is type-checked
// with pipeline.ParseConfig so that typos fail loudly.
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}

	raw := map[string]interface{}{}
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}

	values := make(map[string]interface{}, len(raw))
	rest := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		key := strings.ReplaceAll(strings.ToLower(k), "-", "_")
		values[key] = v
		if !loggingKeys[key] {
			rest[key] = v
		}
	}

	check, err := yaml.Marshal(rest)
	if err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	if _, err = pipeline.ParseConfig(check); err != nil {
		return nil, err
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]
		if !ok {
			return nil, nil
		}

		return v, nil
	}), nil
}
