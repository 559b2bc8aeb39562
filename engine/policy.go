package engine

import (
	"fmt"
	"strings"

	"github.com/kbukum/knife/errors"
)

// Policy decides what a committed session does to Source.
type Policy int

const (
	// Replace makes Source a copy of Result after every commit.
	Replace Policy = iota
	// Accumulate appends Result to Source after every commit.
	Accumulate
	// Manual never touches Source; callers rebalance with Sync or Shift.
	Manual
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Accumulate:
		return "accumulate"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy resolves a policy from its configuration name. The empty
// string selects Replace.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return Replace, nil
	case "accumulate":
		return Accumulate, nil
	case "manual":
		return Manual, nil
	default:
		return Replace, errors.InvalidInput("policy", fmt.Sprintf("unknown policy %q", s))
	}
}
