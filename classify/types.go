package classify

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("classify: invalid option supplied")

// Rule selects how a non-free cell is decided in the ray pass.
type Rule int

const (
	// RunParity counts maximal boundary runs as crossings; odd means interior.
	RunParity Rule = iota
	// Facing reads the orientation tag of the first boundary cell each ray meets.
	Facing
)

func (r Rule) String() string {
	switch r {
	case RunParity:
		return "parity"
	case Facing:
		return "facing"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule maps "parity" or "facing" to a Rule.
func ParseRule(s string) (Rule, error) {
	switch s {
	case "parity", "":
		return RunParity, nil
	case "facing":
		return Facing, nil
	}
	return 0, fmt.Errorf("%w: unknown rule %q", ErrOptionViolation, s)
}

// Propagation selects how many neighbor sweeps run after the ray pass.
type Propagation int

const (
	// SinglePass runs exactly one sweep.
	SinglePass Propagation = iota
	// FixedPoint sweeps until nothing changes.
	FixedPoint
)

// Option configures Classify via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Classify runs.
type Option func(*Options)

// Options holds the classifier settings.
type Options struct {
	Rule        Rule
	Propagation Propagation

	err error
}

// DefaultOptions returns RunParity with a single propagation sweep.
func DefaultOptions() Options {
	return Options{Rule: RunParity, Propagation: SinglePass}
}

// WithRule selects the decision rule for the ray pass.
func WithRule(r Rule) Option {
	return func(o *Options) {
		if r != RunParity && r != Facing {
			o.err = fmt.Errorf("%w: unknown rule %d", ErrOptionViolation, int(r))
			return
		}
		o.Rule = r
	}
}

// WithPropagation selects SinglePass or FixedPoint neighbor propagation.
func WithPropagation(p Propagation) Option {
	return func(o *Options) {
		if p != SinglePass && p != FixedPoint {
			o.err = fmt.Errorf("%w: unknown propagation %d", ErrOptionViolation, int(p))
			return
		}
		o.Propagation = p
	}
}

// Stats summarizes one Classify call.
type Stats struct {
	// Interior counts cells marked by the ray pass.
	Interior int
	// Exterior counts cells proven exterior: a free ray, or under Facing a
	// nearest boundary cell whose tag faces away.
	Exterior int
	// Undecided counts cells neither free nor judged interior by the ray pass.
	Undecided int
	// Propagated counts cells marked by neighbor sweeps.
	Propagated int
	// Sweeps is the number of neighbor sweeps performed.
	Sweeps int
}

// Changed returns the number of cells this call marked InteriorFilled.
func (s Stats) Changed() int { return s.Interior + s.Propagated }
