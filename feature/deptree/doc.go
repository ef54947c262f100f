// Package deptree builds a dependency tree for a server's resources.
//
// A resource depends on another when its manifest says so (dependency keys,
// @resource script references) or when its scripts call into the other
// resource's exports. Both sources are collected into one tree, printable
// forwards (dependencies per resource) or reversed (dependents per
// dependency).
package deptree
