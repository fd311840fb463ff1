// Command snoscan reads "key = value" records and prints them as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/rawbytedev/sno/pkg/record"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "snoscan:", err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)
	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "scan failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func run(cfg Config, logger log.Logger, stdin io.Reader, stdout io.Writer) error {
	buf, err := readInput(cfg.Input, cfg.Zstd, stdin)
	if err != nil {
		return errors.Wrapf(err, "reading %s", cfg.Input)
	}
	level.Debug(logger).Log("msg", "input loaded", "input", cfg.Input, "bytes", len(buf))

	p := record.NewParser(cfg.Record)
	skipped := 0
	p.OnError = func(err error) {
		skipped++
		level.Warn(logger).Log("msg", "skipping line", "err", err)
	}
	entries, err := p.Parse(buf)
	if err != nil {
		return errors.Wrap(err, "parsing records")
	}

	out, err := marshalEntries(entries)
	if err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	if cfg.Output == "-" {
		_, err = stdout.Write(out)
	} else {
		err = os.WriteFile(cfg.Output, out, 0o644)
	}
	if err != nil {
		return errors.Wrap(err, "writing output")
	}
	level.Info(logger).Log("msg", "scan complete", "entries", len(entries), "skipped", skipped)

	if cfg.MemProfile != "" {
		if err := writeHeapProfile(cfg.MemProfile); err != nil {
			return errors.Wrap(err, "writing heap profile")
		}
	}
	return nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pprof.WriteHeapProfile(f)
}
