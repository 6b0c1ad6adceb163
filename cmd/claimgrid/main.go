// claimgrid counts overlapping cells among rectangular claims and finds the claim that overlaps nothing
//
// Usage:
//
//	claimgrid [-input path] [-view] [-debug] [path]
//
// The input path falls back to the first argument, then to $CLAIMGRID_INPUT; "-" reads stdin
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/claimgrid/claim"
	"github.com/lixenwraith/claimgrid/grid"
	"github.com/lixenwraith/claimgrid/render"
	"github.com/lixenwraith/claimgrid/report"
)

const inputEnv = "CLAIMGRID_INPUT"

func main() {
	var (
		input   string
		view    bool
		debugOn bool
	)

	flag.StringVar(&input, "input", "", "Claims file, one '#<id> @ <x>,<y>: <w>x<h>' per line ('-' for stdin)")
	flag.BoolVar(&view, "view", false, "Open an interactive map of the grid after printing the report")
	flag.BoolVar(&debugOn, "debug", false, "Write debug log to "+logDir+"/"+logFileName)
	flag.Parse()

	if logFile := setupLogging(debugOn); logFile != nil {
		defer logFile.Close()
	}

	path := resolveInput(input, flag.Args(), os.Getenv(inputEnv))
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: claimgrid [options] <claims.txt>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nThe input may also be set with $%s\n", inputEnv)
		os.Exit(2)
	}

	summary, idx, err := run(path, os.Stdin, os.Stdout)
	if err != nil {
		log.Printf("run failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if view {
		if err := showGrid(idx, summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// resolveInput picks the input path: flag, then first argument, then environment
func resolveInput(flagValue string, args []string, env string) string {
	if flagValue != "" {
		return flagValue
	}
	if len(args) > 0 {
		return args[0]
	}
	return env
}

// run reads and parses all claims, then prints the report
// Nothing is written to out unless every line parses
func run(path string, stdin io.Reader, out io.Writer) (report.Summary, *grid.Index, error) {
	start := time.Now()

	r, closeFn, err := openInput(path, stdin)
	if err != nil {
		return report.Summary{}, nil, err
	}
	defer closeFn()

	claims, err := claim.ParseAll(r)
	if err != nil {
		return report.Summary{}, nil, errors.Wrapf(err, "parse %s", path)
	}
	log.Printf("parsed %d claims from %s in %v", len(claims), path, time.Since(start))

	summary, idx := report.Build(claims)
	log.Printf("indexed %d cells, %d overlapping, in %v", idx.Cells(), summary.Dupes, time.Since(start))

	if _, err := summary.WriteTo(out); err != nil {
		return report.Summary{}, nil, errors.Wrap(err, "write report")
	}
	return summary, idx, nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	return f, func() { f.Close() }, nil
}

// showGrid runs the interactive viewer on the real terminal
func showGrid(idx *grid.Index, summary report.Summary) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Viewer.Run restores the terminal before a panic propagates here
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCLAIMGRID CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	render.NewViewer(screen, idx, summary).Run()
	return nil
}
