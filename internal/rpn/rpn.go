// Package rpn evaluates arithmetic expressions over fixed-point decimals
// written in prefix (Polish) notation, such as "* 10 + 1.23 4.56".
package rpn

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/govalues/fixedpoint"
	"github.com/govalues/fixedpoint/internal/logging"
)

// Error is the class of every error returned by [Evaluator.Evaluate].
// Errors of the fixedpoint classes stay reachable through it, so
// fixedpoint.DivisionByZero.Has(err) reports a division by zero.
var Error = errs.Class("rpn")

// wrapf wraps err with a formatted context message.
// The result is an errs error, so the classes of err remain visible to Has.
func wrapf(err error, format string, args ...any) error {
	class := errs.Class(fmt.Sprintf(format, args...))
	return class.Wrap(err)
}

// Evaluator evaluates expressions at a fixed precision.
// Operands are decimal numbers, parsed with [fixedpoint.ParseWithPrecision],
// or 0x-prefixed on-chain amounts already scaled by 10^Precision.
// Supported operators are +, -, * and /.
type Evaluator struct {
	Precision int
}

// New returns an evaluator for the given precision.
func New(precision int) *Evaluator {
	return &Evaluator{Precision: precision}
}

// Evaluate evaluates the expression in input.
// Each step is logged at debug level to the logger found in ctx.
func (e *Evaluator) Evaluate(ctx context.Context, input string) (fixedpoint.Decimal, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return fixedpoint.Decimal{}, Error.Wrap(wrapf(err, "parsing tokens"))
	}
	stack, err := e.processTokens(ctx, tokens)
	if err != nil {
		return fixedpoint.Decimal{}, Error.Wrap(wrapf(err, "processing tokens"))
	}
	if len(stack) != 1 {
		return fixedpoint.Decimal{}, Error.New("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, oops.New("no tokens")
	}
	return tokens, nil
}

func (e *Evaluator) processTokens(ctx context.Context, tokens []string) ([]fixedpoint.Decimal, error) {
	stack := make([]fixedpoint.Decimal, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(ctx, stack, token)
		default:
			stack, err = e.processOperand(stack, token)
		}
		if err != nil {
			return nil, wrapf(err, "processing token %q", token)
		}
	}
	return stack, nil
}

func processOperator(ctx context.Context, stack []fixedpoint.Decimal, token string) ([]fixedpoint.Decimal, error) {
	if len(stack) < 2 {
		return nil, oops.New("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result fixedpoint.Decimal
	var err error
	switch token {
	case "+":
		result, err = left.AddStrict(right)
	case "-":
		result, err = left.SubStrict(right)
	case "*":
		result, err = left.MulStrict(right)
	case "/":
		result, err = left.DivStrict(right)
	}
	if err != nil {
		return nil, wrapf(err, "evaluating \"%s %s %s\"", left, token, right)
	}
	logging.FromContext(ctx).Debug("evaluated", "left", left, "op", token, "right", right, "result", result)
	return append(stack, result), nil
}

func (e *Evaluator) processOperand(stack []fixedpoint.Decimal, token string) ([]fixedpoint.Decimal, error) {
	var d fixedpoint.Decimal
	var err error
	if strings.HasPrefix(token, "0x") {
		d, err = fixedpoint.ParseChainAmount(token, e.Precision)
	} else {
		d, err = fixedpoint.ParseWithPrecision(token, e.Precision)
	}
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
