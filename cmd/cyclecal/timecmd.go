package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/cyclecal/internal/report"
	"github.com/username/cyclecal/pkg/stopwatch"
)

func timeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "time -- <command> [args...]",
		Short:   "Run a command and report how long it took",
		Example: "  cyclecal time -- sleep 2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, runErr := timeCommand(ctx, stopwatch.New(nil), args)
			if err := render(result); err != nil {
				return err
			}
			return runErr
		},
	}

	// Everything after the command name belongs to the command
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// timeCommand runs args as a subprocess between Start and Stop of sw
func timeCommand(ctx context.Context, sw *stopwatch.Stopwatch, args []string) (report.ElapsedReport, error) {
	result := report.ElapsedReport{Command: strings.Join(args, " ")}

	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stderr // keep stdout for the report
	c.Stderr = os.Stderr

	sw.Start()
	result.Started, _ = sw.StartTime()
	logger.Info("Running command",
		zap.String("command", result.Command),
		zap.Time("started", result.Started))

	err := c.Run()
	sw.Stop()
	result.Elapsed = sw.Elapsed()

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			logger.Error("Command failed to start", zap.String("command", result.Command), zap.Error(err))
			result.ExitCode = -1
			return result, fmt.Errorf("failed to run %q: %w", args[0], err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logger.Info("Command finished",
		zap.String("command", result.Command),
		zap.Duration("elapsed", result.Elapsed),
		zap.Int("exit_code", result.ExitCode))

	if result.ExitCode != 0 {
		return result, fmt.Errorf("command exited with code %d", result.ExitCode)
	}
	return result, nil
}
