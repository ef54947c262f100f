// Package devmode toggles a FiveM client or FXServer install in and out of
// dev mode.
//
// Dev mode disables the adhesive signature-checking component: the DLL is
// renamed aside and dropped from components.json (backed up first), and on
// the client two marker files stop the bootstrapper from undoing the edit.
// Running the toggle again restores everything.
package devmode
