package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muntashirakon/logtriage/internal/classify"
	"github.com/muntashirakon/logtriage/internal/config"
	"github.com/muntashirakon/logtriage/internal/logcat"
	"github.com/muntashirakon/logtriage/internal/logger"
	"github.com/muntashirakon/logtriage/internal/report"

	"github.com/spf13/cobra"
)

var (
	watchPackage string
	watchSerial  string
	watchClear   bool
	watchAllPIDs bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch live device logs and classify failures as they happen",
	Long: `Attach to a device over adb, stream logcat, and classify each line
as it arrives. Issues print immediately and are appended to the session log.
Stop with Ctrl-C; a summary is printed on exit.

Examples:
  logtriage watch --package com.example.app
  logtriage watch --package com.example.app --serial emulator-5554 --clear`,
	RunE: watchCommand,
}

func init() {
	watchCmd.Flags().StringVar(&watchPackage, "package", "", "Target package; lines are filtered to its PID")
	watchCmd.Flags().StringVar(&watchSerial, "serial", "", "Device serial (adb -s)")
	watchCmd.Flags().BoolVar(&watchClear, "clear", false, "Clear the device log buffer before watching")
	watchCmd.Flags().BoolVar(&watchAllPIDs, "all", false, "Classify every process's lines, not just the target package")
	rootCmd.AddCommand(watchCmd)
}

func watchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, logPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pkg := watchPackage
	if pkg == "" {
		pkg = cfg.File.DefaultPackage
	}
	if pkg == "" && !watchAllPIDs {
		return fmt.Errorf("no target package. Use --package <pkg>, set default_package in config, or pass --all")
	}

	serial := watchSerial
	if serial == "" {
		serial = cfg.File.DeviceSerial
	}
	source := &logcat.Source{AdbPath: cfg.File.AdbPath, Serial: serial}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	filter := logcat.Filter{KeepUnparsed: false}
	if !watchAllPIDs {
		pid, err := source.ResolvePID(ctx, pkg)
		if err != nil {
			return err
		}
		filter.PIDs = []int{pid}
		fmt.Fprintf(os.Stderr, "Watching %s (pid %d)...\n", pkg, pid)
	} else {
		fmt.Fprintln(os.Stderr, "Watching all processes...")
	}

	if watchClear {
		if err := source.Clear(ctx); err != nil {
			return err
		}
	}

	sessionLog, err := logger.New(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to open session log: %w", err)
	}
	defer sessionLog.Close()

	writer := &report.Writer{Out: os.Stdout, Pretty: report.IsTerminal()}

	lines, errc := source.Stream(ctx)
	linesScanned := 0
	var issues []classify.Issue

	for line := range lines {
		if !filter.Keep(line) {
			continue
		}
		linesScanned++

		issue, ok := classify.ClassifyLine(line)
		if !ok {
			continue
		}
		issues = append(issues, issue)

		if err := writer.WriteIssue(issue); err != nil {
			return err
		}
		event := logger.TriageEvent{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Package:    pkg,
			Device:     serial,
			Category:   string(issue.Category),
			Summary:    issue.Summary,
			SourceLine: issue.SourceLine,
		}
		if err := sessionLog.Log(event); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write session log: %v\n", err)
		}
	}

	fmt.Fprintln(os.Stderr)
	if err := writer.WriteSummary(report.Summarize(issues, linesScanned)); err != nil {
		return err
	}

	// Ctrl-C is the normal way to end a watch session, not a failure.
	if err := <-errc; err != nil && ctx.Err() == nil {
		return fmt.Errorf("logcat stream: %w", err)
	}
	return nil
}
