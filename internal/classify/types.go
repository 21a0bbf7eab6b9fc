// Package classify is the core of logtriage: it maps raw device log lines to
// a small, fixed set of known failure categories.
//
// The engine is deterministic and rule-based. Rules live in an ordered table
// and are evaluated with first-match-wins semantics; the relative order of
// rules is load-bearing because their patterns overlap (a SecurityException
// line often also mentions an app-op). Classification is total over strings:
// any input, including empty or malformed text, yields either one Issue or
// nothing — never an error.
package classify

// Category identifies which detection rule matched a log line.
type Category string

const (
	// PermissionDenied covers manifest-permission denials and
	// SecurityException stack trace headers.
	PermissionDenied Category = "PERMISSION_DENIED"

	// AppOpBlocked covers operations rejected by the AppOps layer, the
	// platform's fine-grained operation gate distinct from manifest
	// permissions.
	AppOpBlocked Category = "APP_OP_BLOCKED"

	// ComponentBlocked covers services/receivers that are disabled, not
	// exported, or otherwise unreachable.
	ComponentBlocked Category = "COMPONENT_BLOCKED"

	// Unknown is reserved for future rules. No current rule produces it;
	// consumers switching on Category should still handle it.
	Unknown Category = "UNKNOWN"
)

// String returns the category identifier.
func (c Category) String() string { return string(c) }

// Issue is one detected problem for one log line. Issues are plain values
// with no identity beyond structural equality; the caller owns them.
type Issue struct {
	// Category is the rule that matched.
	Category Category

	// SourceLine is the input line, byte-for-byte unmodified.
	SourceLine string

	// Summary is a short human-readable description. For PermissionDenied
	// it embeds the extracted permission name when one was found.
	Summary string

	// Detail is currently identical to SourceLine; kept as a separate
	// field so richer context (e.g. surrounding stack frames) can be
	// attached later without changing consumers.
	Detail string
}
