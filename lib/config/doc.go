// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the loom layout
// engine.
//
// Configuration is a single explicit file — no discovery, no fallback
// chain — authored as YAML or as JSONC (JSON extended with comments
// and trailing commas). It names the compositor socket, the log level,
// and the generator cycle: an ordered list of builtin generators with
// their options. Validation happens at load time, so a typo in a
// generator kind or a direction name fails the program at startup
// rather than producing a wrong tree at the first layout request.
package config
