package cli

import (
	"fmt"

	"github.com/muntashirakon/logtriage/internal/classify"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Self-test — verify the classifier recognizes known failure lines",
	Long: `Run a quick diagnostic that feeds known device log lines through the
classifier and checks each lands in the expected category. Nothing touches
a device — this only validates the rule table.

  logtriage scan`,
	RunE: scanCommand,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

type scanCase struct {
	label string
	line  string
	want  classify.Category // empty Category means "no issue expected"
}

func scanCommand(cmd *cobra.Command, args []string) error {
	cases := []scanCase{
		{
			"Permission denial",
			`W ActivityManager: Permission Denial: starting Intent requires android.permission.CAMERA`,
			classify.PermissionDenied,
		},
		{
			"SecurityException",
			`E AndroidRuntime: java.lang.SecurityException: getDeviceId denied`,
			classify.PermissionDenied,
		},
		{
			"AppOps rejection",
			`W AppOps: Noting op 26 (CAMERA) for uid 10214 rejected: mode=ignore`,
			classify.AppOpBlocked,
		},
		{
			"Service start failure",
			`W ActivityManager: Unable to start service Intent { cmp=com.example/.SyncService }`,
			classify.ComponentBlocked,
		},
		{
			"Non-exported component",
			`E ActivityManager: Service not exported from uid 10088`,
			classify.ComponentBlocked,
		},
		{
			"Precedence: exception beats app-op",
			`java.lang.SecurityException: uid lacks app-op OP_CAMERA`,
			classify.PermissionDenied,
		},
		{
			"Routine line stays clean",
			`I ActivityManager: Displayed com.example/.MainActivity`,
			"",
		},
	}

	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println("  logtriage Self-Test")
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	pass := 0
	fail := 0
	for _, tc := range cases {
		issue, ok := classify.ClassifyLine(tc.line)

		var got classify.Category
		if ok {
			got = issue.Category
		}

		icon := "\xe2\x9c\x85" // ✅
		if got != tc.want {
			icon = "\xe2\x9d\x8c" // ❌
			fail++
		} else {
			pass++
		}

		gotStr := string(got)
		if gotStr == "" {
			gotStr = "no issue"
		}
		fmt.Printf("  %s  %-34s → %s\n", icon, tc.label, gotStr)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════")
	if fail == 0 {
		fmt.Printf("  ✅ All %d checks passed — classifier is working correctly\n", pass)
	} else {
		fmt.Printf("  ⚠  %d/%d checks passed, %d failed\n", pass, len(cases), fail)
		fmt.Println("  The rule table may have been modified.")
	}
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println()

	if fail > 0 {
		return fmt.Errorf("%d self-test checks failed", fail)
	}
	return nil
}
