// Command infreport converts a driver-description (INF) document into a
// normalized JSON or YAML report of manufacturers and the device models
// they declare.
//
// Usage:
//
//	infreport [flags] <inf-file-path>
//	infreport -db catalog.db -list
//
// Exit codes: 0 success, 1 invalid arguments, 2 error (a structured
// {"error": ...} payload goes to stderr), 3 unspecified error, 4
// resource exhaustion.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"infreport/internal/codec"
	"infreport/internal/config"
	"infreport/internal/errdefs"
	"infreport/internal/inf"
	"infreport/internal/report"
	"infreport/internal/repository"
	"infreport/internal/repository/sqlite"
	"infreport/internal/watcher"
)

const (
	exitSuccess = iota
	exitInvalidArguments
	exitError
	exitUnspecified
	exitResourceExhaustion
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		return reportFailure(err)
	}

	format := flag.String("format", cfg.Output.Format, "output format: json or yaml")
	output := flag.String("o", "", "write the report to a file instead of stdout")
	dbPath := flag.String("db", cfg.Catalog.Path, "SQLite catalog path; also persists each report")
	list := flag.Bool("list", false, "list cataloged documents (requires -db) instead of scanning")
	watch := flag.Bool("watch", false, "keep running and re-scan when the input changes")
	maxBytes := flag.Int64("max-bytes", cfg.Limits.MaxInputBytes, "maximum input document size")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("infreport: ")
	if cfgPath != "" {
		log.Printf("Using config %s", cfgPath)
	}

	exporter, ok := codec.ForFormat(*format)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown output format %q\n", *format)
		return exitInvalidArguments
	}
	if je, isJSON := exporter.(*codec.JSONExporter); isJSON {
		je.WithIndent(cfg.Output.Indent)
	}

	var catalog repository.Catalog
	if *dbPath != "" {
		catalog, err = sqlite.New(*dbPath)
		if err != nil {
			return reportFailure(err)
		}
		defer catalog.Close()
	}

	if *list {
		if catalog == nil {
			fmt.Fprintln(os.Stderr, "-list requires -db")
			return exitInvalidArguments
		}
		return listSources(catalog)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: infreport [flags] <inf-file-path>")
		return exitInvalidArguments
	}
	inputPath := flag.Arg(0)

	scan := func() error {
		return scanOnce(inputPath, *maxBytes, exporter, *output, catalog)
	}

	if err := scan(); err != nil {
		if !*watch {
			return reportFailure(err)
		}
		// Watch mode keeps going: report the run, wait for a fix.
		reportFailure(err)
	}
	if !*watch {
		return exitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(inputPath, func() {
		if err := scan(); err != nil {
			reportFailure(err)
		}
	}).WithDebounce(cfg.Watch.Debounce)

	if err := w.Watch(ctx); err != nil && err != context.Canceled {
		return reportFailure(err)
	}
	return exitSuccess
}

// scanOnce runs the whole pipeline for one input: load, build, export,
// and optionally catalog. Any failure aborts with no partial output.
func scanOnce(inputPath string, maxBytes int64, exporter codec.Exporter, outputPath string, catalog repository.Catalog) error {
	doc, err := inf.Load(inputPath, maxBytes)
	if err != nil {
		return err
	}

	result, err := report.Build(doc)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return errdefs.New(errdefs.KindUnclassified, err)
		}
		defer f.Close()
		out = f
	}
	if err := exporter.Export(result, out); err != nil {
		return errdefs.New(errdefs.KindUnclassified, err)
	}

	if catalog != nil {
		if err := catalog.SaveReport(context.Background(), inputPath, result); err != nil {
			return errdefs.New(errdefs.KindUnclassified, err)
		}
	}
	return nil
}

func listSources(catalog repository.Catalog) int {
	sources, err := catalog.ListSources(context.Background())
	if err != nil {
		return reportFailure(err)
	}
	for _, s := range sources {
		fmt.Printf("%s\t%s\t%d manufacturers\n",
			s.ScannedAt.Format("2006-01-02 15:04:05"), s.Path, s.Manufacturers)
	}
	return exitSuccess
}

// reportFailure maps err to its exit code and emits the structured
// error payload. Resource exhaustion skips payload formatting entirely;
// a payload that itself fails to encode downgrades to the unspecified
// code.
func reportFailure(err error) int {
	if errdefs.IsKind(err, errdefs.KindResourceExhaustion) {
		fmt.Fprintln(os.Stderr, "resource limit exceeded")
		return exitResourceExhaustion
	}
	if payloadErr := codec.ErrorPayload(os.Stderr, err); payloadErr != nil {
		return exitUnspecified
	}
	return exitError
}
