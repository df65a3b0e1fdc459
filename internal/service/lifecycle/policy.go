package lifecycle

import (
	"fmt"
	"strings"
)

type Policy string

const (
	// PolicyUnrestricted lets an administrator assign any known status.
	PolicyUnrestricted Policy = "unrestricted"
	// PolicyMonotonic only allows moving forward along Order.
	PolicyMonotonic Policy = "monotonic"
)

const DefaultPolicy = PolicyUnrestricted

func (p Policy) String() string {
	return string(p)
}

func ParsePolicy(raw string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return DefaultPolicy, nil
	case PolicyUnrestricted:
		return PolicyUnrestricted, nil
	case PolicyMonotonic:
		return PolicyMonotonic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, raw)
	}
}
