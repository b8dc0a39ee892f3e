// Package progress wraps the CLI loading spinner.
package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// Start starts the spinner with the given suffix text. It is a no-op when
// stdout is not worth animating (the spinner library handles non-tty output).
func Start(suffix string) {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " " + suffix
	loader.Start()
}

// Stop stops the spinner if one is running.
func Stop() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
