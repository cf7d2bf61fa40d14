// Package commands defines the medconnect CLI.
//
// Commands
//
//   - serve     Serve the landing page over HTTP
//   - export    Write index.html and its assets to a directory
//   - doctor    Check an exported site against the page outline
//   - version   Print the build version
//
// The root command loads configuration (.env, medconnect.yaml, MEDCONNECT_*
// variables and flags) and builds the logger before any subcommand runs.
package commands
