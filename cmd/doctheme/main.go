package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/doctheme/internal/config"
	"git.home.luguber.info/inful/doctheme/internal/engine"
	"git.home.luguber.info/inful/doctheme/internal/logfields"
	"git.home.luguber.info/inful/doctheme/internal/model"
	"git.home.luguber.info/inful/doctheme/internal/theme"
	"git.home.luguber.info/inful/doctheme/internal/version"
)

var CLI struct {
	Options string           `short:"c" help:"Theme options file path" default:"doctheme.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Build struct {
		Manifest string `short:"m" help:"Project manifest path" default:"project.yaml"`
		Out      string `short:"o" help:"Output directory (overrides the options file)"`
	} `cmd:"" help:"Generate the documentation site once"`

	Preview struct {
		Manifest string `short:"m" help:"Project manifest path" default:"project.yaml"`
		Out      string `short:"o" help:"Output directory (overrides the options file)"`
	} `cmd:"" help:"Generate, then watch inputs and regenerate on change"`

	Check struct {
		Manifest string `short:"m" help:"Project manifest path" default:"project.yaml"`
	} `cmd:"" help:"Validate options and static page specs without writing output"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.Vars{"version": version.String()})

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Environment files are optional; the first one that loads wins.
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil {
			slog.Debug("Loaded environment variables", "path", envFile)
			break
		}
	}

	var err error
	switch ctx.Command() {
	case "build":
		err = runBuild(CLI.Build.Manifest, CLI.Build.Out)
	case "preview":
		err = runPreview(CLI.Preview.Manifest, CLI.Preview.Out)
	case "check":
		err = runCheck(CLI.Check.Manifest)
	}
	if err != nil {
		slog.Error("Command failed", logfields.Error(err))
		os.Exit(1)
	}
}

// loadInputs reads the options file (falling back to defaults when absent)
// and the project manifest.
func loadInputs(manifestPath, outOverride string) (*config.Options, *model.Project, error) {
	opts := config.Default()
	if _, err := os.Stat(CLI.Options); err == nil {
		opts, err = config.Load(CLI.Options)
		if err != nil {
			return nil, nil, err
		}
	} else {
		slog.Debug("No options file found, using defaults", "path", CLI.Options)
	}
	if outOverride != "" {
		opts.Out = outOverride
	}

	project, err := model.LoadManifest(manifestPath)
	if err != nil {
		return nil, nil, err
	}
	return opts, project, nil
}

func runBuild(manifestPath, outOverride string) error {
	opts, project, err := loadInputs(manifestPath, outOverride)
	if err != nil {
		return err
	}
	slog.Info("Building documentation", "project", project.Root.Name, "out", opts.Out)
	th := theme.New(engine.New(opts.Out), opts)
	return th.Generate(project)
}

func runCheck(manifestPath string) error {
	opts, project, err := loadInputs(manifestPath, "")
	if err != nil {
		return err
	}

	th := theme.New(engine.New(opts.Out), opts)
	for _, decl := range th.Registration().Options {
		fmt.Printf("%-34s %-8s %s\n", decl.Name, decl.Kind, decl.Help)
	}

	mappings, err := th.GetUrls(project)
	if err != nil {
		return err
	}
	// Rendering the root navigation exercises the duck-typed option shapes.
	if _, err := th.Navigation(project, project.Root); err != nil {
		return err
	}
	slog.Info("Configuration is valid", "pages", len(mappings))
	return nil
}

func runPreview(manifestPath, outOverride string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return watchAndRebuild(ctx, manifestPath, outOverride)
}
