// Package csync provides thread-safe concurrent data structures.
//
// Map guards a plain map with a read-write mutex. The dialog manager keeps
// its open dialogs in one so a dialog resolved from another goroutine can
// remove itself while the UI loop is rendering.
//
// Example usage:
//
//	open := csync.NewMap[string, *Model]()
//	open.Set(d.ID(), model)
//	if model, ok := open.Take(d.ID()); ok {
//		// only one caller gets here
//	}
package csync
