// Package configvars provides the key/value lookup that commands read their
// parameters from.
//
// A Variables source answers Get(key). Sources compose in two ways: a prefix
// view rewrites every lookup by prepending a fixed string, and a layered merge
// asks an ordered list of sources in turn and returns the first value found.
// Concrete sources are built from maps, the process environment, key=value
// assignments, and HCL, YAML or JSON files. Nested file structures are
// flattened into ':'-separated keys such as "Commands:deploy:region".
package configvars
