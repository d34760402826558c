// hamming prints the Hamming distance between two inputs given on the
// command line.
//
//	Usage: hamming blob1 blob2 [options]
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/thomasjungblut/go-hamming/hamming"
	"github.com/thomasjungblut/go-hamming/partition"
	"github.com/thomasjungblut/go-hamming/popcount"
	"github.com/urfave/cli/v2"
)

var (
	stringFlag = &cli.BoolFlag{
		Name:    "string",
		Aliases: []string{"s"},
		Usage:   "treat input as strings rather than blobs",
	}
	threadsFlag = &cli.IntFlag{
		Name:    "threads",
		Aliases: []string{"t"},
		Value:   hamming.DefaultThreads,
		Usage:   "run in parallel using specified number of threads; use -1 to autodetect the number of logical threads available",
		EnvVars: []string{"HAMMING_THREADS"},
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log the popcount implementation and thread count in use",
	}
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "hamming",
		Usage:     "hamming distance between two strings of equal length",
		ArgsUsage: "blob1 blob2",
		Flags:     []cli.Flag{stringFlag, threadsFlag, verboseFlag},
		Writer:    stdout,
		ErrWriter: stderr,
		Action:    distanceAction,

		// inputs spelled "h" or "help" are blobs, not a subcommand
		HideHelpCommand: true,

		// errors are returned to main instead of exiting inside Run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func distanceAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		_ = cli.ShowAppHelp(ctx)
		return fmt.Errorf("expected 2 arguments, got %d", ctx.NArg())
	}
	blob1, blob2 := ctx.Args().Get(0), ctx.Args().Get(1)
	threads := ctx.Int(threadsFlag.Name)

	if ctx.Bool(verboseFlag.Name) {
		logger := log.New(ctx.App.ErrWriter, "", log.LstdFlags)
		// invalid counts are reported by the distance call below
		if n, err := partition.ResolveThreads(threads, len(blob1), runtime.NumCPU); err == nil {
			logger.Printf("popcount: %s, word: %d bits, threads: %d (requested %d)\n",
				popcount.Best().Name, popcount.WordBits(), n, threads)
		}
	}

	var distance int
	var err error
	if ctx.Bool(stringFlag.Name) {
		distance, err = hamming.StringsDistance(blob1, blob2, hamming.Threads(threads))
	} else {
		distance, err = hamming.BitsDistance(blob1, blob2, hamming.Threads(threads))
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, distance)
	return err
}

func main() {
	if err := execute(newApp(os.Stdout, os.Stderr), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
