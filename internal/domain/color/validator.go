package color

import (
	"context"
	"errors"
)

// ErrRejected is the only validation failure: the oracle did not accept the
// candidate. It carries no further detail.
var ErrRejected = errors.New("color rejected")

// Validator turns a candidate string into a validated Value.
type Validator struct {
	oracle Oracle
}

// NewValidator returns a Validator backed by oracle. A nil oracle falls back to
// CSSOracle.
func NewValidator(oracle Oracle) *Validator {
	if oracle == nil {
		oracle = CSSOracle{}
	}
	return &Validator{oracle: oracle}
}

// Validate resolves candidate. The empty string is always valid. Any other
// candidate is valid only when the oracle accepts it, in which case it is
// returned unchanged. A context cancelled before the check returns ctx.Err().
func (v *Validator) Validate(ctx context.Context, candidate Value) (Value, error) {
	if candidate.IsNone() {
		return None, nil
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return None, err
		}
	} else {
		ctx = context.Background()
	}
	accepted := v.oracle.Accepts(ctx, string(candidate))
	if err := ctx.Err(); err != nil {
		return None, err
	}
	if !accepted {
		return None, ErrRejected
	}
	return candidate, nil
}
