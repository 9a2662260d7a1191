// Package clipboard copies text to the system clipboard.
package clipboard

import "github.com/atotto/clipboard"

// Write copies text to the system clipboard.
func Write(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard backend was found.
func Available() bool {
	return !clipboard.Unsupported
}
