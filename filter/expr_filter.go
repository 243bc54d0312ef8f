package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/twit/twit"
)

// ItemFilter represents a compiled expr filter over payload items
type ItemFilter struct {
	program *vm.Program
	expr    string
}

// helpers are the functions available to every expression
var helpers = map[string]any{
	"contains": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	"startsWith": func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	},
	"endsWith": func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	},
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"str": func(v any) string {
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	},
}

// Compile compiles a filter expression. Item fields are exposed as
// top-level variables (label, id, ...) and the whole item as Item.
func Compile(expression string) (*ItemFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &SyntaxError{Expression: expression, Err: ErrEmptyExpression}
	}

	env := make(map[string]any, len(helpers)+1)
	for k, v := range helpers {
		env[k] = v
	}
	env["Item"] = map[string]any{}

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		synErr := &SyntaxError{Expression: expression, Err: err}
		var fileErr *file.Error
		if errors.As(err, &fileErr) {
			synErr.Err = errors.New(fileErr.Message)
			synErr.Column = fileErr.Column + 1
		}
		return nil, synErr
	}

	return &ItemFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Match evaluates the filter against a single item. Items that are not
// JSON objects expose no fields.
func (f *ItemFilter) Match(item twit.Payload) (bool, error) {
	fields, _ := normalize(item.Value()).(map[string]any)

	env := make(map[string]any, len(fields)+len(helpers)+1)
	for k, v := range fields {
		env[k] = v
	}
	for k, v := range helpers {
		env[k] = v
	}
	env["Item"] = fields

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, f.matchError(item, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, f.matchError(item, fmt.Errorf("expression returned %T, not bool", result))
	}
	return matched, nil
}

func (f *ItemFilter) matchError(item twit.Payload, err error) *MatchError {
	return &MatchError{Expression: f.expr, ID: item.ID(), Label: item.Label(), Err: err}
}

// Apply returns the items the filter matches, in their original order
func (f *ItemFilter) Apply(items []twit.Payload) ([]twit.Payload, error) {
	var matched []twit.Payload
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// String returns the original expression
func (f *ItemFilter) String() string {
	return f.expr
}

// normalize converts json.Number values to int64 or float64 so expressions
// can compare them with numeric literals.
func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case twit.Payload:
		return normalize(val.Value())
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
