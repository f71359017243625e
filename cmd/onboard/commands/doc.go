// Package commands defines the onboard CLI and wires dependencies for subcommands.
//
// Commands
//
//   - run           Walk through contract, course, phone and payment steps
//   - courses       List the course catalogue
//   - me            Print the stored user record
//   - subscription  Print subscription and group access
//   - initdata      Sign or inspect identity tokens for local development
//
// # Implementation
//
// The root command loads configuration through viper (flags, ONBOARD_*
// environment variables and an optional YAML file) and builds the dependency
// graph (host bridge, gateway client, metrics) before any subcommand runs.
package commands
