// SPDX-License-Identifier: MIT

package param

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sketchrule/primitive"
)

// call renders kind(a, b, ...).
func call(kind Kind, args ...primitive.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}

	return callText(kind, parts)
}

func callText(kind Kind, parts []string) string {
	return kind.String() + "(" + strings.Join(parts, ", ") + ")"
}

// FromArgs rebuilds a Pattern from its DSL call. Operator symbols arrive as
// String values ("+", "-", "*", "/"). The result reports confidence 1.
//
// Errors:
//   - ErrUnknownPattern for a name ParseKind does not know.
//   - ErrArguments (wrapped) for a wrong count or variant.
func FromArgs(name string, args []primitive.Value) (Pattern, error) {
	kind, ok := ParseKind(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	switch kind {
	case KindConstant:
		if len(args) != 1 {
			return nil, argErrorf(kind, "want 1 argument, got %d", len(args))
		}
		return NewConstant(args[0]), nil

	case KindLinear:
		if len(args) != 2 {
			return nil, argErrorf(kind, "want 2 arguments, got %d", len(args))
		}
		if !args[0].IsNumeric() || !args[1].IsNumeric() {
			return nil, argErrorf(kind, "arguments must be numeric")
		}
		return NewLinear(args[0], args[1]), nil

	case KindPeriodic:
		if len(args) == 0 {
			return nil, argErrorf(kind, "want at least 1 argument")
		}
		return NewPeriodic(args...), nil

	case KindOperator:
		return operatorFromArgs(args)

	case KindSinusoidal:
		if len(args) != 4 {
			return nil, argErrorf(kind, "want 4 arguments, got %d", len(args))
		}
		xs, ok := floats(args)
		if !ok {
			return nil, argErrorf(kind, "arguments must be numeric")
		}
		return NewSinusoidal(xs[0], xs[1], xs[2], xs[3]), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

func operatorFromArgs(args []primitive.Value) (Pattern, error) {
	var ops []Op
	for _, a := range args {
		if a.Kind() != primitive.StringValue {
			break
		}
		op, ok := ParseOp(a.AsString())
		if !ok {
			return nil, argErrorf(KindOperator, "unknown operator %q", a.AsString())
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return nil, argErrorf(KindOperator, "want at least 1 operator")
	}
	rest := args[len(ops):]
	if len(rest) != len(ops)+1 {
		return nil, argErrorf(KindOperator, "%d operators need %d seeds, got %d", len(ops), len(ops)+1, len(rest))
	}
	seeds, ok := floats(rest)
	if !ok {
		return nil, argErrorf(KindOperator, "seeds must be numeric")
	}
	integral := true
	for _, s := range rest {
		integral = integral && s.Kind() == primitive.IntValue
	}

	return NewOperator(ops, seeds, integral), nil
}

func argErrorf(kind Kind, format string, a ...any) error {
	return fmt.Errorf("%s: %s: %w", kind, fmt.Sprintf(format, a...), ErrArguments)
}
