// Package resource scans a server's resources tree: finding manifests,
// filtering category folders and ignore lists, and expanding each resource's
// script globs into the files on disk.
package resource
