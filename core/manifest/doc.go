// Package manifest parses FiveM resource manifests (fxmanifest.lua and the
// legacy __resource.lua).
//
// Manifests are a Lua DSL, but they are parsed textually here: real-world
// resources ship manifests with syntax errors, runtime-only globals and
// @resource references that only resolve inside the Cfx runtime, and the
// tool must still read what it can from them. The parser strips comments,
// scans statement keys at line starts, and reads values in the four call
// forms the DSL allows.
package manifest
