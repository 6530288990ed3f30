package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"counterapp/internal/counter"
	"counterapp/internal/descriptor"
	"counterapp/internal/effect"
	"counterapp/internal/i18n"
	"counterapp/internal/trace"
	"counterapp/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// config holds the parsed CLI configuration.
type config struct {
	locale      string
	debugLog    string
	descriptor  bool
	noAltScreen bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("counterapp", flag.ContinueOnError)

	fs.StringVar(&cfg.locale, "locale", i18n.Detect(), "label language ("+fmt.Sprint(i18n.Languages())+")")
	fs.StringVar(&cfg.debugLog, "debug", os.Getenv("COUNTERAPP_DEBUG"), "append debug logs to this file")
	fs.BoolVar(&cfg.descriptor, "descriptor", false, "print the capability descriptor and exit")
	fs.BoolVar(&cfg.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: counterapp [flags]\n\n")
		fmt.Fprintf(fs.Output(), "A bounded counter (%d to %d) that celebrates at %d.\n\n", counter.Min, counter.Max, counter.CelebrateAt)
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging routes the standard logger to path, or discards it so nothing
// writes over the TUI.
func setupLogging(path string) (closeLog func(), err error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "counterapp")
	if err != nil {
		return nil, fmt.Errorf("debug log %q: %w", path, err)
	}
	return func() { _ = f.Close() }, nil
}

func run(ctx context.Context, cfg config, stdout io.Writer) error {
	if cfg.descriptor {
		_, err := stdout.Write(descriptor.Raw())
		return err
	}

	closeLog, err := setupLogging(cfg.debugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	labels, err := i18n.Load(cfg.locale)
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	desc, err := descriptor.Load()
	if err != nil {
		return err
	}

	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	requests := make(chan effect.Request, 1)
	c := counter.New(&effect.ChanTrigger{Ch: requests})
	c.Subscribe(func(s counter.State) {
		log.Printf("count changed to: %d (%s)", s.Count, s.Variant)
	})
	c.Subscribe(trace.NewObserver(ctx, exporter.TracerProvider()).Listener())

	log.Printf("starting: locale=%s descriptor=%s", labels.Lang, descriptor.Ref())
	model := ui.NewAppModel(ui.Options{
		Counter:    c,
		Labels:     labels,
		Descriptor: desc,
		Requests:   requests,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !cfg.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "counterapp: %v\n", err)
		os.Exit(1)
	}
}
