package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "logtriage",
	Short: "logtriage - classify device log failures for a target app",
	Long: `logtriage reads Android logcat output and classifies known failure
patterns - permission denials, AppOps policy blocks, and disabled or
blocked components - into structured issues an operator can review,
export, or track across permission changes.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML file (default: ~/.logtriage/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to triage session log (default: ~/.logtriage/triage.jsonl)")
}

func Execute() error {
	return rootCmd.Execute()
}
