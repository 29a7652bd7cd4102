package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui"
)

// errCancelled is returned when the form is closed without submitting
var errCancelled = errors.New("form cancelled")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, logPath string

	root := &cobra.Command{
		Use:           "typeahead",
		Short:         "Fill in a form of type-ahead combo boxes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(configPath, logPath, cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "form definition (TOML)")
	root.Flags().StringVar(&logPath, "log", "typeahead.log", "log file")

	root.AddCommand(newCheckCmd(&configPath), newFilterCmd(&configPath))
	return root
}

// openConfig resolves the config service for path. An empty path means the
// per-user form, which falls back to the built-in demo when missing.
func openConfig(path string) (config.ConfigService, *config.Config, error) {
	if path == "" {
		svc := config.NewConfigService()
		cfg, err := svc.Load()
		return svc, cfg, err
	}
	svc := config.NewConfigServiceForPath(path)
	cfg, err := svc.LoadFromPath(path)
	return svc, cfg, err
}

func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { logFile.Close() }
}

func runForm(configPath, logPath string, out io.Writer) error {
	closeLog := setupLogging(logPath)
	defer closeLog()

	svc, cfg, err := openConfig(configPath)
	if err != nil {
		return err
	}
	log.Printf("Loaded form %q with %d fields from %s", cfg.Title, len(cfg.Fields), svc.Path())

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	model, err := ui.NewModel(bus, cfg)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	// Reload the form whenever its file changes on disk
	if _, statErr := os.Stat(svc.Path()); statErr == nil {
		watcher, err := config.NewWatcher(svc.Path(), bus)
		if err != nil {
			log.Printf("Config watching disabled: %v", err)
		} else {
			defer watcher.Close()
			go watcher.Run(ctx)

			bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
				next, err := svc.LoadFromPath(svc.Path())
				if err != nil {
					p.Send(ui.ErrorMsg{Err: err})
					return
				}
				p.Send(ui.ReloadMsg{Config: next})
			})
			bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
				if ev, ok := e.(eventbus.ErrorEvent); ok {
					p.Send(ui.ErrorMsg{Err: fmt.Errorf("%s: %w", ev.Message, ev.Err)})
				}
			})
		}
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	values, submitted := model.Result()
	if !submitted {
		return errCancelled
	}
	if err := toml.NewEncoder(out).Encode(values); err != nil {
		return fmt.Errorf("failed to write values: %w", err)
	}

	if current := model.Config(); current.UISettings.PersistOnSubmit {
		current.SetValues(values)
		if err := svc.Save(current); err != nil {
			return err
		}
		log.Printf("Values saved to %s", svc.Path())
	}
	return nil
}
