package classify

import "strings"

// rule pairs a match predicate (a keyword list searched case-insensitively)
// with a builder that produces the Issue for a matching line.
type rule struct {
	id       string
	keywords []string
	build    func(line string) Issue
}

// rules is the detection table. Order matters: rules are evaluated top to
// bottom and the first hit wins, so the permission rule shadows the app-op
// rule for lines that mention both (a SecurityException about an app-op is
// still fundamentally a permission problem).
var rules = []rule{
	{
		id: "permission-denial",
		keywords: []string{
			"Permission Denial:",
			"Permission denial",
			"java.lang.SecurityException",
		},
		build: buildPermissionIssue,
	},
	{
		id: "app-op-block",
		keywords: []string{
			"app-op",
			"AppOp",
			"AppOps",
		},
		build: func(line string) Issue {
			return Issue{
				Category:   AppOpBlocked,
				SourceLine: line,
				Summary:    "Operation blocked by AppOps / app-op policy",
				Detail:     line,
			}
		},
	},
	{
		id: "component-blocked",
		keywords: []string{
			"not exported from uid",
			"not allowed to start service",
			"Unable to start service",
			"Service not registered",
		},
		build: func(line string) Issue {
			return Issue{
				Category:   ComponentBlocked,
				SourceLine: line,
				Summary:    "Component (service/receiver) seems disabled or blocked",
				Detail:     line,
			}
		},
	},
}

func buildPermissionIssue(line string) Issue {
	summary := "Permission denied (exact permission unknown)"
	if name, ok := ExtractPermission(line); ok {
		summary = "Permission denied: " + name
	}
	return Issue{
		Category:   PermissionDenied,
		SourceLine: line,
		Summary:    summary,
		Detail:     line,
	}
}

// matches reports whether any of the rule's keywords occurs in the line,
// case-insensitively. Substring search, no anchoring.
func (r rule) matches(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range r.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
