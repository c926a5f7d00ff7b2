// Package registry validates queue names and maps them to handles for
// their storage partitions.
//
// The set of queues is fixed at startup from configuration; nothing here
// touches storage. Resolution is the only gate against unbounded partition
// creation: a name that does not resolve never reaches the engine.
//
// Names match [A-Za-z0-9_-]+. Underscore and hyphen are treated as the
// same character when matching a request against the configured set, but
// the handle always carries the configured spelling.
package registry
