// cmd/xmf/main.go
//
// xmf – command-line entry point.
//
// Start-up
// --------
//
//  1. Resolve the site root (--root, XMF_ROOT, or climb to conf/xmf.yaml).
//
//  2. Load configuration (defaults → conf/.env → conf/xmf.yaml → XMF_*).
//
//  3. Start the daily rotating logger under <root>/logs (tees to stderr
//     when log.tee is set or stderr is a terminal).
//
//  4. Discover units under paths.modules and build the template engines.
//
//  5. Run the sub-command: render, exists, paths, or units.
//
// Rendered output goes to stdout; diagnostics go to stderr and the log.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	code := run(os.Args[1:])
	_ = zap.S().Sync()
	os.Exit(code)
}

// run executes the CLI and maps the outcome to an exit status.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, "xmf:", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, "xmf:", err)
	return 1
}
