// Package launcher implements the one-shot server launch sequence: spawn the
// FXServer process with a fixed argument vector, then open the fivem://
// connect deep link so the installed client joins it.
//
// Both actions are fire-and-forget. The spawned server is not owned by this
// process after creation: no handle is retained, no output is captured, and
// exiting the tool does not terminate the server. The deep link is handed to
// the OS shell's default-handler resolution without verifying that a handler
// is registered.
//
// Process creation and URI opening sit behind the Runner and Opener
// interfaces so tests can count and inspect the issued requests.
package launcher
