// Package testdata holds a shared corpus of real-world logcat lines used by
// the classifier accuracy tests. Lines were collected from AOSP and
// GrapheneOS devices while exercising apps with restricted permissions.
package testdata

// LineCase is one logcat line with its expected classification.
type LineCase struct {
	// ID is a unique identifier, e.g. "PERM-001". The prefix names the
	// expected category: PERM, APPOP, COMP, or NONE for lines no rule
	// should match.
	ID string

	// Line is the raw logcat line fed to the classifier.
	Line string

	// WantCategory is the expected category string, empty for NONE cases.
	WantCategory string

	// WantSummary is the exact expected summary, empty to skip the check.
	WantSummary string

	// Description explains what device state produced this line and why
	// the expected classification is correct.
	Description string
}

// PermissionCases are lines that must classify as a permission denial.
var PermissionCases = []LineCase{
	{
		ID:           "PERM-001",
		Line:         `06-12 14:02:11.481  1712  3240 W ActivityManager: Permission Denial: starting Intent { cmp=com.example.app/.CameraActivity } from ProcessRecord{a1b2c3 9931:com.example.app/u0a214} requires android.permission.CAMERA`,
		WantCategory: "PERMISSION_DENIED",
		WantSummary:  "Permission denied: android.permission.CAMERA",
		Description:  "Canonical ActivityManager denial with an extractable permission name.",
	},
	{
		ID:           "PERM-002",
		Line:         `06-12 14:02:12.009  9931  9931 E AndroidRuntime: java.lang.SecurityException: getDeviceId: Neither user 10214 nor current process has android.permission.READ_PHONE_STATE.`,
		WantCategory: "PERMISSION_DENIED",
		WantSummary:  "Permission denied (exact permission unknown)",
		Description:  "SecurityException header without a 'requires' token; the permission is named but not in extractable form.",
	},
	{
		ID:           "PERM-003",
		Line:         `W BroadcastQueue: permission denial while delivering broadcast to receiver`,
		WantCategory: "PERMISSION_DENIED",
		WantSummary:  "Permission denied (exact permission unknown)",
		Description:  "Lower-case variant; matching is case-insensitive substring search.",
	},
	{
		ID:           "PERM-004",
		Line:         `Permission Denial: opening provider com.example.app.FileProvider requires that you obtain access using ACTION_OPEN_DOCUMENT or related APIs`,
		WantCategory: "PERMISSION_DENIED",
		WantSummary:  "Permission denied: that",
		Description:  "Heuristic extraction limitation, preserved on purpose: 'that' follows 'requires ' and is a valid single-segment identifier.",
	},
	{
		ID:           "PERM-005",
		Line:         `JAVA.LANG.SECURITYEXCEPTION: uid 10214 cannot explicitly add itself to the whitelist`,
		WantCategory: "PERMISSION_DENIED",
		WantSummary:  "Permission denied (exact permission unknown)",
		Description:  "Upper-cased exception class still matches; extraction finds nothing because 'requires' is matched case-sensitively.",
	},
}

// AppOpCases are lines that must classify as an AppOps block.
var AppOpCases = []LineCase{
	{
		ID:           "APPOP-001",
		Line:         `06-12 14:03:40.118  1712  2290 W AppOps  : Noting op 26 (CAMERA) for uid 10214 rejected: mode=ignore`,
		WantCategory: "APP_OP_BLOCKED",
		WantSummary:  "Operation blocked by AppOps / app-op policy",
		Description:  "AppOps service rejecting an op for the target uid.",
	},
	{
		ID:           "APPOP-002",
		Line:         `Op: AppOps policy rejected action`,
		WantCategory: "APP_OP_BLOCKED",
		Description:  "Short-form AppOps rejection line.",
	},
	{
		ID:           "APPOP-003",
		Line:         `W CameraService: startRecording failed, app-op OP_RECORD_AUDIO denied for package com.example.app`,
		WantCategory: "APP_OP_BLOCKED",
		Description:  "Hyphenated app-op spelling used by several system services.",
	},
	{
		ID:           "APPOP-004",
		Line:         `noteOperation: appops returned MODE_ERRORED for op 59`,
		WantCategory: "APP_OP_BLOCKED",
		Description:  "Lower-case 'appops' still matches case-insensitively.",
	},
	{
		ID:           "APPOP-005",
		Line:         `V AppOpsManager: checkOp returned MODE_ALLOWED for op 26`,
		WantCategory: "APP_OP_BLOCKED",
		Description:  "Known false positive: an informational AppOps line with no actual denial. The rules are intentionally broad; this behavior is preserved, not fixed.",
	},
}

// ComponentCases are lines that must classify as a blocked component.
var ComponentCases = []LineCase{
	{
		ID:           "COMP-001",
		Line:         `06-12 14:05:02.771  1712  1741 W ActivityManager: Unable to start service Intent { cmp=com.example.app/.SyncService } U=0: not found`,
		WantCategory: "COMPONENT_BLOCKED",
		WantSummary:  "Component (service/receiver) seems disabled or blocked",
		Description:  "Service resolution failure, typically a disabled component.",
	},
	{
		ID:           "COMP-002",
		Line:         `Unable to start service: com.example/.MyService`,
		WantCategory: "COMPONENT_BLOCKED",
		Description:  "Short-form service start failure.",
	},
	{
		ID:           "COMP-003",
		Line:         `E ActivityManager: Service Intent { cmp=com.other.app/.ExportedService } not exported from uid 10088`,
		WantCategory: "COMPONENT_BLOCKED",
		Description:  "Cross-uid access to a non-exported component.",
	},
	{
		ID:           "COMP-004",
		Line:         `java.lang.IllegalArgumentException: Service not registered: com.example.app.PlayerService$1@f00ba4`,
		WantCategory: "COMPONENT_BLOCKED",
		Description:  "unbindService on a connection that never bound; points at a blocked or dead service.",
	},
	{
		ID:           "COMP-005",
		Line:         `W ContextImpl: app com.example.app is NOT ALLOWED TO START SERVICE while in background`,
		WantCategory: "COMPONENT_BLOCKED",
		Description:  "Background start restriction, upper-cased by the platform logger.",
	},
}

// NoMatchCases are ordinary log lines that must produce no issue at all.
var NoMatchCases = []LineCase{
	{
		ID:          "NONE-001",
		Line:        `I/ActivityManager: Displayed com.example/.MainActivity`,
		Description: "Routine activity launch line.",
	},
	{
		ID:          "NONE-002",
		Line:        `D OpenGLRenderer: endAllActiveAnimators on 0x7a3c5e1000`,
		Description: "Renderer noise.",
	},
	{
		ID:          "NONE-003",
		Line:        `I chatty  : uid=10214(com.example.app) identical 12 lines`,
		Description: "Log dedup marker.",
	},
	{
		ID:          "NONE-004",
		Line:        ``,
		Description: "Empty line; skipped silently.",
	},
	{
		ID:          "NONE-005",
		Line:        `   `,
		Description: "Blank line; skipped silently.",
	},
	{
		ID:          "NONE-006",
		Line:        `E libc    : Access denied finding property "vendor.camera.aux.packagelist"`,
		Description: "'Access denied' alone is not one of the recognized patterns.",
	},
}

// AllCases concatenates every corpus in a stable order.
func AllCases() []LineCase {
	var all []LineCase
	all = append(all, PermissionCases...)
	all = append(all, AppOpCases...)
	all = append(all, ComponentCases...)
	all = append(all, NoMatchCases...)
	return all
}
