// Package main provides the dotenv-vault CLI: it loads the environment from
// an encrypted .env.vault file (or a plaintext .env fallback) and runs a
// program with the resulting environment.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:    "dotenv-vault",
		Usage:   "Load an encrypted .env.vault file and run programs with the decrypted environment",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Load the environment and run the given program with the given arguments",
				ArgsUsage: "-- program [args...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "override",
						Usage: "Let vault or .env values override existing environment variables",
					},
					&cli.StringFlag{
						Name:  "cwd",
						Usage: "Directory to load the .env.vault or .env file from",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runProgram(ctx, cmd.String("cwd"), cmd.Bool("override"), cmd.Args().Slice())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
