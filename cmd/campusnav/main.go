// campusnav answers shortest-route questions about a campus map.
//
// Usage:
//
//	campusnav route FROM TO [--json]
//	campusnav locations [--json]
//	campusnav table [--json]
//	campusnav validate [--strict]
//	campusnav serve [--host H] [--port P]
//
// Every command accepts --config, --map, --strategy, --log-level and
// --log-format. Without --map the built-in reference campus is used.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/campusnav/internal/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.Message(err))
		os.Exit(1)
	}
}
