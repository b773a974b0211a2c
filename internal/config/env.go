// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envSecretFiles names files whose content is used for secrets that were not
// given directly, e.g. tokens mounted by a container runtime.
type envSecretFiles struct {
	TokenSignKey string `env:"APP_TOKEN_SIGN_KEY_FILE,file"`
	HashKey      string `env:"APP_HASH_KEY_FILE,file"`
	AdapterToken string `env:"ADAPTER_TOKEN_FILE,file"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types. Secrets left empty are
// then read from the files named by the *_FILE variables.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var files envSecretFiles
	if err := env.Parse(&files); err != nil {
		return fmt.Errorf("error reading secret files: %w", err)
	}

	fillSecret(&cfg.App.TokenSignKey, files.TokenSignKey)
	fillSecret(&cfg.App.HashKey, files.HashKey)
	fillSecret(&cfg.Adapter.Token, files.AdapterToken)

	return nil
}

func fillSecret(dst *string, fromFile string) {
	if *dst == "" {
		*dst = strings.TrimSpace(fromFile)
	}
}
