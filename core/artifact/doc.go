// Package artifact updates the FXServer build under a working directory.
//
// Build metadata comes from the changelog version API, with the artifact
// listing page as a scraped fallback. Archives are streamed to disk with
// progress output, and installs keep the previous server directory as
// server_<version> for manual rollback.
package artifact
