package main

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	dotenvvault "github.com/allisson/dotenv-vault"
)

// Exit codes distinguish the failure categories a caller can react to:
// load failure, override-load failure, and a program that could not be
// started. A child that runs but exits non-zero keeps its own exit code.
const (
	exitCodeLoad     = 1
	exitCodeOverload = 2
	exitCodeExec     = 3
)

// runProgram loads the environment and execs args[0] with the remaining
// arguments, passing through stdio and the merged environment.
func runProgram(ctx context.Context, cwd string, override bool, args []string) error {
	if len(args) == 0 {
		return cli.Exit("missing program to run, usage: dotenv-vault run -- program [args...]", exitCodeExec)
	}

	if cwd != "" {
		if err := os.Chdir(cwd); err != nil {
			return cli.Exit(err.Error(), exitCodeExec)
		}
	}

	if override {
		if err := dotenvvault.Overload(); err != nil {
			return cli.Exit(err.Error(), exitCodeOverload)
		}
	} else {
		if err := dotenvvault.Load(); err != nil {
			return cli.Exit(err.Error(), exitCodeLoad)
		}
	}

	child := exec.CommandContext(ctx, args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = os.Environ()

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return cli.Exit("", childExitCode(err))
		}
		return cli.Exit("failed to execute program: "+err.Error(), exitCodeExec)
	}
	return nil
}

// childExitCode maps a child process failure to the CLI exit code: the
// child's own code when it ran and exited non-zero, exitCodeExec when it
// could not be started at all.
func childExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode()
	}
	return exitCodeExec
}
