// SPDX-License-Identifier: MIT

// Package config holds the small pieces shared by command entry points:
// environment parsing and the fatal-exit helper.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target's `env`-tagged fields from the environment,
// applying `envDefault` values for unset variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}
