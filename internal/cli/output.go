package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/tacogips/promptgen/internal/template/generator"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
	// colorEnabled is true only when stdout is a terminal and --no-color is unset.
	colorEnabled bool
)

// setOutput sets the writers used by the print helpers.
func setOutput(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
	colorEnabled = !globalNoColor && isTerminal(stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorize(color, msg string) string {
	if !colorEnabled {
		return msg
	}
	return color + msg + colorReset
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(out, msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(out, colorize(colorYellow, msg))
}

// printErrorMsg prints a per-item error line. It goes to stdout alongside
// progress lines and is never suppressed.
func printErrorMsg(msg string) {
	fmt.Fprintln(out, colorize(colorRed, msg))
}

// printVerbose prints a verbose message (only if verbose is enabled)
func printVerbose(verbose bool, msg string) {
	if !verbose || globalQuiet {
		return
	}
	fmt.Fprintln(out, colorize(colorGray, "[VERBOSE] "+msg))
}

// printProgress prints a progress line
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(out, colorize(colorBlue, msg))
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}

// consoleReporter prints generator events with the print helpers.
type consoleReporter struct {
	dryRun bool
}

func newConsoleReporter(dryRun bool) generator.Reporter {
	return &consoleReporter{dryRun: dryRun}
}

func (r *consoleReporter) TemplatesNotFound(dir string) {
	printInfo(generator.TemplatesNotFoundLine(dir))
}

func (r *consoleReporter) Generating(outputPath string) {
	if r.dryRun {
		printProgress(fmt.Sprintf("Would generate %s...", outputPath))
		return
	}
	printProgress(generator.GeneratingLine(outputPath))
}

func (r *consoleReporter) RenderFailed(template string, err error) {
	printErrorMsg(generator.RenderFailedLine(template, err))
}

func (r *consoleReporter) Collision(c generator.Collision) {
	printWarning(generator.CollisionLine(c))
}
