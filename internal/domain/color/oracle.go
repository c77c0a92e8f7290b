package color

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/image/colornames"
)

// Oracle reports whether a candidate string is renderable as a color. It is
// the environment-specific half of validation and may block.
type Oracle interface {
	Accepts(ctx context.Context, candidate string) bool
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, candidate string) bool

// Accepts calls f.
func (f OracleFunc) Accepts(ctx context.Context, candidate string) bool {
	return f(ctx, candidate)
}

var (
	grammarOnce sync.Once
	grammarInst *validator.Validate
)

var keywords = map[string]struct{}{
	"transparent":  {},
	"currentcolor": {},
}

func grammar() *validator.Validate {
	grammarOnce.Do(func() {
		grammarInst = validator.New()
	})
	return grammarInst
}

// CSSOracle accepts the subset of CSS Color Module syntax a terminal can
// reasonably render: hex forms (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb(),
// rgba(), hsl(), hsla(), the CSS named colors and the transparent and
// currentcolor keywords. Names and keywords are matched case-insensitively.
// Surrounding whitespace is ignored.
type CSSOracle struct{}

// Accepts implements Oracle.
func (CSSOracle) Accepts(_ context.Context, candidate string) bool {
	return IsCSSColor(candidate)
}

// IsCSSColor is the grammar behind CSSOracle.
func IsCSSColor(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	if _, ok := keywords[lower]; ok {
		return true
	}
	if _, ok := colornames.Map[lower]; ok {
		return true
	}
	return grammar().Var(lower, "iscolor") == nil
}

var _ Oracle = CSSOracle{}
