package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muntashirakon/logtriage/internal/classify"
	"github.com/muntashirakon/logtriage/internal/config"
	"github.com/muntashirakon/logtriage/internal/logcat"
	"github.com/muntashirakon/logtriage/internal/logger"
	"github.com/muntashirakon/logtriage/internal/report"

	"github.com/spf13/cobra"
)

var (
	triageJSON        bool
	triagePIDs        []int
	triageMinPriority string
	triagePackage     string
	triageNoLog       bool
)

var triageCmd = &cobra.Command{
	Use:   "triage [file...]",
	Short: "Classify a saved logcat capture",
	Long: `Classify a saved logcat capture (or stdin) and report detected issues.

Examples:
  adb logcat -d -v threadtime | logtriage triage
  logtriage triage capture.txt --pid 9931 --json
  logtriage triage capture.txt --min-priority W`,
	RunE: triageCommand,
}

func init() {
	triageCmd.Flags().BoolVar(&triageJSON, "json", false, "Output issues and summary as JSON")
	triageCmd.Flags().IntSliceVar(&triagePIDs, "pid", nil, "Only classify lines from these PIDs (threadtime captures)")
	triageCmd.Flags().StringVar(&triageMinPriority, "min-priority", "", "Only classify entries at or above this priority (V/D/I/W/E/F)")
	triageCmd.Flags().StringVar(&triagePackage, "package", "", "Package name recorded with session log events")
	triageCmd.Flags().BoolVar(&triageNoLog, "no-log", false, "Do not append results to the session log")
	rootCmd.AddCommand(triageCmd)
}

func triageCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, logPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lines, err := readCaptureLines(args)
	if err != nil {
		return err
	}

	filter, err := buildFilter()
	if err != nil {
		return err
	}
	scanned := filter.Apply(lines)

	workers := cfg.File.Workers
	issues := classify.ClassifyLinesParallel(scanned, workers)
	summary := report.Summarize(issues, len(scanned))

	if !triageNoLog && len(issues) > 0 {
		if err := appendSession(cfg, issues); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write session log: %v\n", err)
		}
	}

	if triageJSON {
		return report.WriteJSON(os.Stdout, issues, summary)
	}
	w := &report.Writer{Out: os.Stdout, Pretty: report.IsTerminal()}
	return w.WriteIssues(issues, summary)
}

// readCaptureLines reads each named file in order, or stdin when no files
// are given.
func readCaptureLines(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanLines(os.Stdin)
	}

	var lines []string
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open capture: %w", err)
		}
		fileLines, err := scanLines(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		lines = append(lines, fileLines...)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func buildFilter() (logcat.Filter, error) {
	filter := logcat.Filter{PIDs: triagePIDs, KeepUnparsed: true}
	if triageMinPriority != "" {
		p, ok := logcat.ParsePriority(triageMinPriority)
		if !ok {
			return filter, fmt.Errorf("invalid --min-priority %q (want one of V D I W E F)", triageMinPriority)
		}
		filter.MinPriority = p
		// A priority threshold implies the capture is parseable; raw
		// continuation lines carry no priority to compare against.
		filter.KeepUnparsed = false
	}
	return filter, nil
}

func appendSession(cfg *config.Config, issues []classify.Issue) error {
	sessionLog, err := logger.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer sessionLog.Close()

	pkg := triagePackage
	if pkg == "" {
		pkg = cfg.File.DefaultPackage
	}

	for _, issue := range issues {
		event := logger.TriageEvent{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Package:    pkg,
			Device:     cfg.File.DeviceSerial,
			Category:   string(issue.Category),
			Summary:    issue.Summary,
			SourceLine: issue.SourceLine,
		}
		if err := sessionLog.Log(event); err != nil {
			return err
		}
	}
	return nil
}
