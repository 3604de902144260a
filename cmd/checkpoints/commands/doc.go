// Package commands defines the checkpoints CLI and wires dependencies for subcommands.
//
// Commands
//
//   - new       Create a car with a model, seat count and starting gear
//   - shift     Move a car's gear up or down one or more steps
//   - status    Print a stored car
//   - list      Print all stored cars
//   - delete    Remove a stored car
//   - sqrt      Find the exact integer square root of 1..10000
//   - demo      Replay the gearbox and square root scenarios in memory
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the app (logger, store, services) before any subcommand runs. Cars persist
// under --home unless --ephemeral is set.
package commands
