package export

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled record filter expression. One expression is
// compiled per run and evaluated against every record's environment.
//
// Example: Year >= 2000 && "Action" in Genres
type Filter struct {
	expression string
	program    *vm.Program
}

// NewFilter compiles a filter expression.
func NewFilter(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(), // record fields vary by kind
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter against one record's environment.
func (f *Filter) Match(env map[string]any) (bool, error) {
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate %q: %w", f.expression, err)
	}
	match, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q did not return a boolean", f.expression)
	}
	return match, nil
}

// Expression returns the source text the filter was compiled from.
func (f *Filter) Expression() string {
	return f.expression
}
