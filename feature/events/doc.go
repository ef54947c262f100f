// Package events cross-references event handlers and emitters across a
// server's resources.
//
// An event handled somewhere but emitted nowhere (or the reverse) usually
// means a dead listener, a typo in the event name, or a missing resource.
// Runtime and stock-resource events that legitimately have only one side
// inside the tree are ignored by default.
package events
