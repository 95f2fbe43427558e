// Package main is the entry point for the vicmd CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	vicli "github.com/NikitaCOEUR/vicmd/internal/cli"
	"github.com/NikitaCOEUR/vicmd/internal/config"
	"github.com/NikitaCOEUR/vicmd/internal/osenv"
	"github.com/NikitaCOEUR/vicmd/internal/trace"
	"github.com/NikitaCOEUR/vicmd/pkg/version"
)

func main() {
	stopTrace, err := trace.Start(os.Getenv("VICMD_TRACE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vicmd: %v\n", err)
	}

	err = newApp().Run(context.Background(), os.Args)
	stopTrace()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// engineFlags describe the file manager state a completion runs against
func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (default: config.yml in $VICMD_DIR or ~/.config/vicmd)",
			Sources: cli.EnvVars("VICMD_CONFIG"),
		},
		&cli.StringFlag{
			Name:  "current",
			Usage: "Directory of the active pane (default: working directory)",
		},
		&cli.StringFlag{
			Name:  "other",
			Usage: "Directory of the inactive pane (default: same as --current)",
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "File under cursor, used by :file",
		},
	}
}

func engineParams(cmd *cli.Command) vicli.EngineParams {
	return vicli.EngineParams{
		ConfigPath: cmd.String("config"),
		LogLevel:   cmd.String("log-level"),
		Current:    cmd.String("current"),
		Other:      cmd.String("other"),
		File:       cmd.String("file"),
		Output:     cmd.Root().Writer,
		ErrOutput:  cmd.Root().ErrWriter,
	}
}

// lineArg joins the positional arguments back into one command line
func lineArg(cmd *cli.Command) string {
	return strings.Join(cmd.Args().Slice(), " ")
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "vicmd",
		Usage:                 "Command-line completion for a vi-like file manager",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error), overrides the config file",
				Sources: cli.EnvVars("VICMD_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "Complete the last argument of a command line",
				ArgsUsage: "<command-line>",
				Flags: append(engineFlags(),
					&cli.BoolFlag{
						Name:    "pretty",
						Aliases: []string{"p"},
						Usage:   "Render the result for a terminal",
					},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return vicli.Complete(ctx, vicli.CompleteParams{
						EngineParams: engineParams(cmd),
						Line:         lineArg(cmd),
						Pretty:       cmd.Bool("pretty"),
					})
				},
			},
			{
				Name:      "fastrun",
				Usage:     "Expand an abbreviated program name at the start of a shell command",
				ArgsUsage: "<shell-command>",
				Flags:     engineFlags(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("shell command required")
					}
					return vicli.FastRun(vicli.FastRunParams{
						EngineParams: engineParams(cmd),
						Line:         lineArg(cmd),
					})
				},
			},
			{
				Name:  "path",
				Usage: "Print the directories searched for executables",
				Flags: engineFlags(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					return vicli.Path(engineParams(cmd))
				},
			},
			{
				Name:  "init",
				Usage: "Create a config file with the built-in defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Configuration directory (default: $VICMD_DIR or ~/.config/vicmd)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					dir := cmd.String("dir")
					if dir == "" {
						dir = config.DefaultDir(osenv.System{})
					}
					return vicli.Init(dir, cmd.Root().Writer)
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a vicmd configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return vicli.Validate(configPath, cmd.Root().Writer)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for vicmd configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return vicli.Schema(outputPath, cmd.Root().Writer)
				},
			},
		},
	}
}
