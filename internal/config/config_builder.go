package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"dario.cat/mergo"
)

const (
	sourceEnv   = "env"
	sourceJSON  = "json"
	sourceFlags = "flags"
)

// configSource is one parsed layer of configuration.
type configSource struct {
	name string
	cfg  *StructuredConfig
}

// configBuilder collects configuration layers and merges them in
// precedence order: environment, then the JSON file, then command line
// flags. A non-zero field of a later layer overrides the earlier ones.
type configBuilder struct {
	sources []configSource
	args    []string
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		sources: make([]configSource, 0, 3),
		args:    args,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(config, src.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", src.name, err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(sourceEnv, envCfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(sourceFlags, flags)
}

// withJSON loads the file named by the last source that sets a path and
// places it right before the flags layer.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, src := range b.sources {
		if src.cfg.JSONFilePath != "" {
			jsonPath = src.cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(sourceJSON, jsonCfg)
}

func (b *configBuilder) add(name string, cfg *StructuredConfig) *configBuilder {
	src := configSource{name: name, cfg: cfg}

	if name == sourceJSON {
		i := slices.IndexFunc(b.sources, func(s configSource) bool { return s.name == sourceFlags })
		if i >= 0 {
			b.sources = slices.Insert(b.sources, i, src)
			return b
		}
	}

	b.sources = append(b.sources, src)
	return b
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from the process environment, the optional JSON file and the
// command line. Flags take precedence over the file, the file over the
// environment.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
}
