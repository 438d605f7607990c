// Package cli holds the command-line plumbing shared by the PPS tools:
// positional input/output arguments, header/footer trimming and log level.
package cli

import (
	"os"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/folkertvanheusden/pps-comparer/src/logger"
	"github.com/folkertvanheusden/pps-comparer/src/samples"
)

// EnvLogLevel overrides the --log-level default.
const EnvLogLevel = "PPSPLOT_LOG_LEVEL"

// App wraps a kingpin application with the flags every tool has.
type App struct {
	*kingpin.Application
	logLevel *string
	skipHead *int
	skipTail *int
}

// New registers the common flags. trim holds the tool's default header/footer trimming.
func New(name, help string, trim samples.Trim) *App {
	app := kingpin.New(name, help)
	app.HelpFlag.Short('h')
	return &App{
		Application: app,
		logLevel: app.Flag("log-level", "Log level (debug|info|warn|error).").
			Envar(EnvLogLevel).Default("info").Enum("debug", "info", "warn", "warning", "error"),
		skipHead: app.Flag("skip-head", "Number of leading lines (header) to ignore.").
			Default(strconv.Itoa(trim.Head)).Int(),
		skipTail: app.Flag("skip-tail", "Number of trailing lines (summary) to ignore.").
			Default(strconv.Itoa(trim.Tail)).Int(),
	}
}

// Input registers the required input file argument.
func (a *App) Input() *string {
	return a.Arg("input", "Log file written by the PPS comparer.").Required().String()
}

// Output registers the required output file argument.
func (a *App) Output() *string {
	return a.Arg("output", "SVG file to write.").Required().String()
}

// Parse parses args and applies the log level.
func (a *App) Parse(args []string) error {
	if _, err := a.Application.Parse(args); err != nil {
		return err
	}
	logger.SetLogLevel(*a.logLevel)
	return nil
}

// MustParse is Parse for main: on bad arguments it prints usage and exits 1.
func (a *App) MustParse() {
	if err := a.Parse(os.Args[1:]); err != nil {
		a.FatalUsage("%s\n", err)
	}
}

// Trim returns the trimming chosen on the command line.
func (a *App) Trim() samples.Trim {
	return samples.Trim{Head: *a.skipHead, Tail: *a.skipTail}
}

// Exit logs err, if any, and terminates with status 1.
func Exit(err error) {
	if err == nil {
		return
	}
	logger.Errorf("%v", err)
	os.Exit(1)
}
