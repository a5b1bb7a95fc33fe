package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/filepanel/internal/config"
	"github.com/jask/filepanel/internal/core"
	"github.com/jask/filepanel/internal/handoff"
	"github.com/jask/filepanel/internal/logging"
	"github.com/jask/filepanel/internal/panel"
	"github.com/jask/filepanel/internal/screens"
	"github.com/jask/filepanel/internal/selection"
	"github.com/jask/filepanel/internal/source"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("filepanel: %v", err)
	}
}

// run drives one session. stdout only ever receives the handoff manifest;
// failures come back as errors so deferred cleanup runs.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := config.Flags("filepanel")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closer.Close()

	model, p := buildApp(cfg, logger)

	// paths given on the command line form the first batch
	if err := preload(p, fs.Args()); err != nil {
		logger.WithError(err).Error("preload failed")
		return fmt.Errorf("preload: %w", err)
	}

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	files := final.(core.Model).Submitted()
	if len(files) == 0 {
		logger.Info("exited without submitting")
		return nil
	}
	if err := handOff(ctx, cfg.Handoff, files, stdout, logger); err != nil {
		return fmt.Errorf("handoff: %w", err)
	}
	return nil
}

func buildApp(cfg config.Config, logger logrus.FieldLogger) (core.Model, *panel.Panel) {
	limits := cfg.Limits.Selection()
	p := panel.New(panel.Options{
		Title:    cfg.UI.Title,
		Limits:   limits,
		Scanner:  source.Scanner{ShowHidden: cfg.UI.ShowHidden},
		StartDir: cfg.UI.StartDir,
		Log:      logger,
	})

	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
	keys := core.NewKeyRegistry(bindings)
	m := core.NewModel("filepanel", p, keys, core.NewCommandRegistry(p.Commands()), logger)
	m.OpenHelpModal = func(m *core.Model) core.Screen {
		return screens.NewHelpScreen(m.Keys(), core.ScopePanel, limits)
	}
	m.OpenCommandModal = screens.CommandScreenFor
	return m, p
}

// preload submits paths as a single batch. A rejected batch is not an
// error here; the panel opens with the message shown.
func preload(p *panel.Panel, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	files := make([]selection.File, 0, len(paths))
	for _, path := range paths {
		f, err := source.Describe(path)
		if err != nil {
			return err
		}
		files = append(files, f)
	}
	_ = p.Submit(files)
	return nil
}

func handOff(ctx context.Context, cfg config.HandoffConfig, files []selection.File, stdout io.Writer, logger logrus.FieldLogger) (err error) {
	format, err := handoff.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	batch, err := handoff.NewBatch(files, time.Now())
	if err != nil {
		return err
	}

	w := stdout
	if cfg.Output != "" && cfg.Output != "-" {
		f, openErr := os.Create(cfg.Output)
		if openErr != nil {
			return fmt.Errorf("open output: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	var up handoff.Uploader = handoff.ManifestWriter{W: w, Format: format, Log: logger}
	return up.Upload(ctx, batch)
}
