// SPDX-License-Identifier: MIT
// Package: lvseg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildList(bopts, cons...). Creates the list, resolves
//     cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical lists.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvseg/segments"
)

// Constructor appends generated segments to l using the resolved config.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(l *segments.List, cfg builderConfig) error

// BuildList creates an initialized segments.List, resolves the builder
// configuration from bopts and applies all constructors in order. IDs continue
// across constructors: the idFn receives the list position of each segment.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildList: %w".
func BuildList(bopts []BuilderOption, cons ...Constructor) (*segments.List, error) {
	l := segments.NewList()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildList, i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildList, err)
		}
	}

	return l, nil
}
