// Package app wires application dependencies for the CLI.
//
// It loads Config through viper (flags, ONBOARD_* environment, optional YAML
// file), then builds the host bridge, gateway client, metrics registry and
// flow runner from it, exposing them via the Wire struct for commands to use.
package app
