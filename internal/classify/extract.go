package classify

import "regexp"

// permissionPattern captures the dotted identifier that follows the literal
// word "requires" in ActivityManager permission-denial lines, e.g.
//
//	Permission Denial: ... requires android.permission.CAMERA
//
// One or more word-character segments separated by single dots. The word
// "requires" itself is matched case-sensitively; the surrounding rule match
// is already case-insensitive.
var permissionPattern = regexp.MustCompile(`requires (\w+(?:\.\w+)*)`)

// ExtractPermission pulls the permission name out of a denial line.
// Returns ("", false) when no "requires <dotted.name>" token exists.
//
// This is a best-effort heuristic, not a validated permission-name parser:
// any dot-separated identifier that happens to follow "requires " will be
// returned, related to a permission or not. Callers must treat the result
// as advisory.
func ExtractPermission(line string) (string, bool) {
	m := permissionPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
