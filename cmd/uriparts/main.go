// Command uriparts prints the components of URIs given as arguments or read line by line from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uriparts/internal/config"
	"github.com/ghettovoice/uriparts/internal/errorutil"
	"github.com/ghettovoice/uriparts/internal/log"
	"github.com/ghettovoice/uriparts/internal/report"
	"github.com/ghettovoice/uriparts/uri"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uriparts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to a TOML config file")
	format := fs.String("format", "", "output format: text|json")
	logKind := fs.String("log", "", "logger: console|dev|none")
	logLevel := fs.String("log-level", "", "log level: debug|info|warn|error")
	hostKind := fs.Bool("host-kind", false, "classify the host component")
	failFast := fs.Bool("fail-fast", false, "stop at the first input that fails to parse")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(stderr, "uriparts: %v\n", err)
			return 2
		}
	}
	// explicit flags win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "log":
			cfg.Log = log.Kind(*logKind)
		case "log-level":
			cfg.LogLevel = *logLevel
		case "host-kind":
			cfg.HostKind = *hostKind
		case "fail-fast":
			cfg.FailFast = *failFast
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "uriparts: %v\n", err)
		return 2
	}

	lvl, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.New(cfg.Log, lvl, stderr)
	write, err := report.NewWriter(cfg.Format)
	if err != nil {
		fmt.Fprintf(stderr, "uriparts: %v\n", err)
		return 2
	}

	var errs []error
	err = eachInput(fs.Args(), stdin, func(in string) bool {
		u, err := uri.Parse(in)
		if err != nil {
			logger.Error("failed to parse URI", "input", log.StringValue(in), "error", err)
			errs = append(errs, err)
			return !cfg.FailFast
		}
		logger.Debug("URI parsed", "uri", u, "authority", u.AuthorityParts())

		if err := write(stdout, report.New(u, report.Options{HostKind: cfg.HostKind})); err != nil {
			errs = append(errs, err)
			return false
		}
		return true
	})
	if err != nil {
		errs = append(errs, err)
	}

	if err := errorutil.JoinPrefix("uriparts", errs...); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// eachInput calls fn for every argument, or for every stdin line when there are no arguments,
// until fn returns false.
func eachInput(args []string, stdin io.Reader, fn func(string) bool) error {
	if len(args) > 0 {
		for _, a := range args {
			if !fn(a) {
				break
			}
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if !fn(sc.Text()) {
			break
		}
	}
	return errtrace.Wrap(sc.Err())
}
