// Package app wires the command runtime together: it reads application
// settings, configures logging, registers the built-in help command and every
// module's commands, loads the layered config variables, and exposes a Run
// method that dispatches one command.
package app
