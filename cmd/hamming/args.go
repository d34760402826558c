package main

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// reorderArgs moves flags ahead of the positional arguments so they can be
// given in any position, e.g. "hamming blob1 blob2 --string". The flag parser
// stops at the first positional, so the positionals are placed behind a "--"
// terminator. Everything after a "--" given by the user stays positional.
func reorderArgs(args []string, flags []cli.Flag) []string {
	takesValue := map[string]bool{}
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			takesValue[name] = true
		}
	}

	var options, positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			positionals = append(positionals, arg)
		default:
			options = append(options, arg)
			name := strings.TrimLeft(arg, "-")
			if !strings.Contains(name, "=") && takesValue[name] && i+1 < len(args) {
				i++
				options = append(options, args[i])
			}
		}
	}

	if len(positionals) == 0 {
		return options
	}
	out := make([]string, 0, len(options)+len(positionals)+1)
	out = append(out, options...)
	out = append(out, "--")
	return append(out, positionals...)
}

// execute runs the app with args[0] as the program name.
func execute(app *cli.App, args []string) error {
	if len(args) == 0 {
		return app.Run(args)
	}
	return app.Run(append([]string{args[0]}, reorderArgs(args[1:], app.Flags)...))
}
