// Package servercfg reads the resource start list out of a server.cfg.
//
// Only the commands that affect the resource list are interpreted: exec
// (recursive include, relative to the root config), ensure/start/restart and
// stop. Everything else, convars included, is passed over.
package servercfg
