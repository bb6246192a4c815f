package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/indaco/relver/internal/ci"
	"github.com/indaco/relver/internal/config"
	"github.com/indaco/relver/internal/core"
	"github.com/indaco/relver/internal/logging"
	"github.com/indaco/relver/internal/output"
	"github.com/indaco/relver/internal/parser"
	"github.com/indaco/relver/internal/printer"
	"github.com/indaco/relver/internal/release"
	"github.com/indaco/relver/internal/semver"
	"github.com/indaco/relver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// Deps holds the process boundary the command talks to.
type Deps struct {
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv func(string) (string, bool)
	FS        core.FileSystem
}

// DefaultDeps returns the real process boundary.
func DefaultDeps() Deps {
	return Deps{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LookupEnv: os.LookupEnv,
		FS:        core.NewOSFileSystem(),
	}
}

// New builds and returns the root CLI command. Flags default to the values in
// cfg, so a bare invocation uses the configuration as loaded.
func New(cfg *config.Config, deps Deps) *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "relver",
		Version:   fmt.Sprintf("v%s", version.Summary()),
		Usage:     "Emit the manifest version and pre-release flag for CI pipelines",
		UsageText: "relver [--flags]",
		Writer:    deps.Stdout,
		ErrWriter: deps.Stderr,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the manifest holding the version",
				Value:   cfg.Manifest,
			},
			&urfavecli.StringFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Usage:   "Dot-notation path of the version field",
				Value:   cfg.Field,
			},
			&urfavecli.StringFlag{
				Name:        "format",
				Usage:       "Manifest format: toml, json, yaml",
				Value:       cfg.Format,
				DefaultText: "by file extension",
			},
			&urfavecli.StringFlag{
				Name:  "output-env",
				Usage: "Environment variable naming the output file",
				Value: cfg.OutputEnv,
			},
			&urfavecli.BoolFlag{
				Name:  "require-output",
				Usage: "Fail when the output variable is unset instead of printing to stdout",
				Value: cfg.RequireOutput,
			},
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Print a single JSON object when falling back to stdout",
				Value: cfg.JSON,
			},
			&urfavecli.StringFlag{
				Name:  "min-version",
				Usage: "Fail if the manifest version is lower than this version",
				Value: cfg.MinVersion,
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Log each step on stderr",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color") || !isTerminal(deps.Stderr), deps.LookupEnv)
			logging.SetOutput(deps.Stderr)
			logging.SetLevel("warn")
			logging.SetLevelFromEnv(deps.LookupEnv)
			if cmd.Bool("verbose") {
				logging.SetLevel("debug")
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runAction(ctx, cmd, deps)
		},
	}
}

// runAction resolves the effective configuration, selects the output sink
// and runs the release step.
func runAction(ctx context.Context, cmd *urfavecli.Command, deps Deps) error {
	if cmd.Args().Present() {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(cmd.Args().Slice(), " "))
	}

	cfg := &config.Config{
		Manifest:      cmd.String("manifest"),
		Field:         cmd.String("field"),
		Format:        cmd.String("format"),
		OutputEnv:     cmd.String("output-env"),
		RequireOutput: cmd.Bool("require-output"),
		JSON:          cmd.Bool("json"),
		MinVersion:    cmd.String("min-version"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var minVersion *semver.SemVersion
	if cfg.MinVersion != "" {
		v, err := semver.ParseVersion(cfg.MinVersion)
		if err != nil {
			return err
		}
		minVersion = &v
	}

	sel, err := output.Select(deps.LookupEnv, deps.FS, deps.Stdout, output.Options{
		EnvVar:  cfg.OutputEnv,
		Require: cfg.RequireOutput,
		JSON:    cfg.JSON,
	})
	if err != nil {
		return err
	}

	switch sel.Target {
	case output.TargetStdout:
		if provider, ok := ci.Detect(deps.LookupEnv); ok {
			logging.Warn("output variable is not set, printing outputs to stdout",
				"env", cfg.OutputEnv, "ci", string(provider))
		}
	case output.TargetFile:
		if cfg.JSON {
			printer.FprintWarning(deps.Stderr,
				fmt.Sprintf("--json only applies to stdout, writing key=value lines to %s", sel.Path))
		}
	}
	logging.Debug("output selected", "target", string(sel.Target), "path", sel.Path)

	summary, err := release.Run(ctx, release.Options{
		Reader:     parser.NewReader(deps.FS),
		Manifest:   cfg.ManifestConfig(),
		Emitter:    sel.Emitter,
		MinVersion: minVersion,
	})
	if err != nil {
		return err
	}

	if cmd.Bool("verbose") {
		dest := "stdout"
		if sel.Target == output.TargetFile {
			dest = sel.Path
		}
		printer.FprintSummary(deps.Stderr, summary.Version.String(), summary.Manifest, dest)
	}
	return nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ci.IsTTY(f.Fd())
}
