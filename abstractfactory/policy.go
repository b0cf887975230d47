package abstractfactory

import (
	"strings"

	"github.com/kbukum/creational/errors"
)

// CollaborationPolicy decides what a Client does with a cross-variant pairing.
type CollaborationPolicy int

const (
	// PolicyPermit lets products of different variants collaborate; the
	// result text carries a cross-variant label.
	PolicyPermit CollaborationPolicy = iota
	// PolicyReject refuses cross-variant pairings with VARIANT_MISMATCH.
	PolicyReject
)

// String returns the config spelling of the policy.
func (p CollaborationPolicy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	default:
		return "permit"
	}
}

// ParsePolicy maps a config value to a policy. The empty string is PolicyPermit.
func ParsePolicy(s string) (CollaborationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permit":
		return PolicyPermit, nil
	case "reject":
		return PolicyReject, nil
	default:
		return PolicyPermit, errors.InvalidConfig("unknown collaboration policy " + s)
	}
}
