package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muntashirakon/logtriage/internal/config"
	"github.com/muntashirakon/logtriage/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logFilterCategory string
	logFilterPackage  string
	logLast           int
	logSummary        bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and filter the triage session log",
	Long: `View the triage session log with filtering and summary options.

Examples:
  logtriage log                               # Show all entries
  logtriage log --last 20                     # Show last 20 entries
  logtriage log --category PERMISSION_DENIED  # Show only permission denials
  logtriage log --package com.example.app     # Show one app's entries
  logtriage log --summary                     # Show summary stats`,
	RunE: logCommand,
}

func init() {
	logCmd.Flags().StringVar(&logFilterCategory, "category", "", "Filter by category (PERMISSION_DENIED, APP_OP_BLOCKED, COMPONENT_BLOCKED)")
	logCmd.Flags().StringVar(&logFilterPackage, "package", "", "Filter by package name")
	logCmd.Flags().IntVar(&logLast, "last", 0, "Show last N entries")
	logCmd.Flags().BoolVar(&logSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(logCmd)
}

func logCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, logPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	events, err := readSessionLog(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to read session log: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No session log entries found.")
		return nil
	}

	filtered := filterEvents(events)

	if logLast > 0 && logLast < len(filtered) {
		filtered = filtered[len(filtered)-logLast:]
	}

	if logSummary {
		printSummary(events)
		return nil
	}

	printEvents(filtered)
	return nil
}

func readSessionLog(path string) ([]logger.TriageEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var events []logger.TriageEvent
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var event logger.TriageEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue // skip malformed lines
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

func filterEvents(events []logger.TriageEvent) []logger.TriageEvent {
	if logFilterCategory == "" && logFilterPackage == "" {
		return events
	}

	var filtered []logger.TriageEvent
	for _, e := range events {
		if logFilterCategory != "" && !strings.EqualFold(e.Category, logFilterCategory) {
			continue
		}
		if logFilterPackage != "" && e.Package != logFilterPackage {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func printEvents(events []logger.TriageEvent) {
	for _, e := range events {
		ts := formatTimestamp(e.Timestamp)
		pkgStr := ""
		if e.Package != "" {
			pkgStr = " " + e.Package
		}

		fmt.Printf("%s [%s]%s %s\n", ts, e.Category, pkgStr, e.Summary)
		fmt.Printf("     Line: %s\n", e.SourceLine)
		if e.Device != "" {
			fmt.Printf("     Device: %s\n", e.Device)
		}
		fmt.Println()
	}
}

func printSummary(all []logger.TriageEvent) {
	counts := map[string]int{}
	packages := map[string]int{}

	for _, e := range all {
		counts[e.Category]++
		if e.Package != "" {
			packages[e.Package]++
		}
	}

	fmt.Println("═══════════════════════════════════════════")
	fmt.Println("  Triage Session Summary")
	fmt.Println("═══════════════════════════════════════════")
	fmt.Printf("  Total issues:       %d\n", len(all))
	fmt.Printf("  Permission denials: %d\n", counts["PERMISSION_DENIED"])
	fmt.Printf("  AppOps blocks:      %d\n", counts["APP_OP_BLOCKED"])
	fmt.Printf("  Blocked components: %d\n", counts["COMPONENT_BLOCKED"])
	fmt.Println("═══════════════════════════════════════════")

	if len(all) > 0 {
		fmt.Printf("  First event:        %s\n", formatTimestamp(all[0].Timestamp))
		fmt.Printf("  Last event:         %s\n", formatTimestamp(all[len(all)-1].Timestamp))
	}

	if len(packages) > 0 {
		fmt.Println()
		fmt.Println("  Issues per package:")
		for pkg, n := range packages {
			fmt.Printf("    %-40s %d\n", pkg, n)
		}
	}

	fmt.Println()
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
