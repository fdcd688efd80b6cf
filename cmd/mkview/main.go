// Command mkview is an interactive terminal viewer for paginated
// markdown and HTML documents. It hosts the viewport controller: mouse
// wheel pans and turns pages, ctrl+wheel zooms at the pointer, dragging
// pans, and the usual keyboard shortcuts navigate and zoom. Ctrl+S
// writes a PNG snapshot of the current view.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkview/mkview/content"
	"github.com/mkview/mkview/document"
	"github.com/mkview/mkview/observability"
)

type options struct {
	path     string
	snapshot string
	logPath  string
	paper    string
	fontSize float64
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkview: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "mkview: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: mkview [flags] <file.md|file.html>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.snapshot, "snapshot", "mkview.png", "path written by ctrl+s snapshots")
	flag.StringVar(&opts.logPath, "log", "", "write debug logs to this file")
	flag.StringVar(&opts.paper, "paper", "a4", "page size: a4 or letter")
	flag.Float64Var(&opts.fontSize, "font-size", 12, "body font size in points")
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return opts, fmt.Errorf("expected exactly one input file")
	}
	opts.path = flag.Arg(0)
	return opts, nil
}

func run(opts options) error {
	log, closeLog, err := newLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	doc, err := loadDocument(opts, log)
	if err != nil {
		return err
	}
	if doc.NumPages() == 0 {
		return fmt.Errorf("%s: document has no pages", opts.path)
	}

	v, err := newViewer(doc, opts.snapshot, log)
	if err != nil {
		return err
	}
	return v.loop()
}

// loadDocument runs the content pipeline appropriate for the file type.
func loadDocument(opts options, log observability.Logger) (*document.Document, error) {
	source, err := os.ReadFile(opts.path)
	if err != nil {
		return nil, err
	}
	paper := content.A4
	if strings.EqualFold(opts.paper, "letter") {
		paper = content.Letter
	}
	engine := content.NewEngine(
		content.WithPaperSize(paper),
		content.WithFontSize(opts.fontSize),
		content.WithLogger(log),
	)
	switch strings.ToLower(filepath.Ext(opts.path)) {
	case ".html", ".htm":
		return engine.HTML(source)
	default:
		return engine.Markdown(source)
	}
}

func newLogger(path string) (observability.Logger, func(), error) {
	if path == "" {
		return observability.NopLogger{}, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return observability.NewSlog(slog.New(h)), func() { f.Close() }, nil
}
