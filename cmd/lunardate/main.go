// Command lunardate converts dates between the Gregorian and the Korean or
// Chinese lunisolar calendars, and can serve conversions over HTTP.
//
// Usage:
//
//	lunardate solar 2023-01-22            # -> 2023-01-01
//	lunardate lunar 2023-02-01 --leap     # -> 2023-03-22
//	lunardate -c chinese year 2024
//	lunardate range -f json
//	lunardate serve --addr :8080
//
// Settings are read from flags, LUNARDATE_* environment variables and an
// optional lunardate.yaml in $HOME/.config/lunardate or the working
// directory, in that order of precedence.
package main

import (
	"io"
	"os"

	"github.com/golunar/lunardate/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		cliutil.PrintError(stderr, err)
		return exitError
	}
	return exitOK
}
