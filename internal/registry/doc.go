// Package registry collects the commands an application offers.
//
// Modules contribute commands to a Registry during startup. Once registration
// is finished the Registry is frozen into a Repository: an immutable,
// order-preserving list that the runner and the help command read from.
// Registration order is significant. When two commands share a name the one
// registered first is the one that runs.
package registry
