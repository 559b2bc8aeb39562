package engine

import "fmt"

// Role names one of the four buffers a State owns.
type Role int

const (
	// Source holds the values the next verb reads.
	Source Role = iota
	// Staging is the read-only view a verb works on during a session.
	Staging
	// Pending collects a verb's output until the session commits.
	Pending
	// Result holds the most recently committed output.
	Result

	numRoles = 4
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case Source:
		return "source"
	case Staging:
		return "staging"
	case Pending:
		return "pending"
	case Result:
		return "result"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}
