// Package config holds ledit's settings.
//
// Settings come from three layers, higher layers overriding lower:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, by default $XDG_CONFIG_HOME/ledit/config.toml
//  3. LEDIT_* environment variables, e.g. LEDIT_EDITOR_MAX_LINES=5000
//
// A missing file is not an error. Load merges the layers with
// loader.DeepMerge, decodes the result into a Config and validates it.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.WithPath(flagPath))
//	if err != nil {
//	    return err
//	}
//	timeout := cfg.Input.PollTimeout()
package config
