package session

import (
	"fmt"
	"strings"
)

// LeavePolicy decides what happens to the answer of the question the cursor
// is moving away from.
type LeavePolicy string

const (
	// ClearOnLeave removes the response of the question being left. The
	// presentation layer is expected to resubmit it while the question is
	// shown; an answer that is not resubmitted is lost.
	ClearOnLeave LeavePolicy = "clear"

	// RetainOnLeave keeps committed answers across navigation.
	RetainOnLeave LeavePolicy = "retain"
)

// ParseLeavePolicy converts a config value into a LeavePolicy. The empty
// string selects ClearOnLeave.
func ParseLeavePolicy(s string) (LeavePolicy, error) {
	switch LeavePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ClearOnLeave:
		return ClearOnLeave, nil
	case RetainOnLeave:
		return RetainOnLeave, nil
	default:
		return "", fmt.Errorf("invalid leave policy %q (want %q or %q)", s, ClearOnLeave, RetainOnLeave)
	}
}
