package expression

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-logr/logr"

	"github.com/l7mp/dquery/pkg/document"
)

type Unstructured = map[string]any

// EvalCtx is the evaluation context: Object is the record the query runs on, Subject is the
// current element inside list operators (@filter, @map, ...) and the right-hand record in joins.
type EvalCtx struct {
	Object, Subject any
	Log             logr.Logger
}

// Expression is a node of a declarative query. Terminal nodes hold a Literal, operators hold
// their argument in Arg.
type Expression struct {
	Op      string
	Arg     *Expression
	Literal any
}

// Evaluate evaluates the expression in the given context. Evaluation never modifies the object
// or the subject.
func (e *Expression) Evaluate(ctx EvalCtx) (any, error) {
	if len(e.Op) == 0 {
		return nil, NewInvalidArgumentsError(fmt.Sprintf("empty operator in expression %q", e.String()))
	}

	switch e.Op {
	case "@nil":
		return nil, nil

	case "@bool":
		lit, err := e.literal(ctx)
		if err != nil {
			return nil, err
		}

		v, err := document.AsBool(lit)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", v)
		return v, nil

	case "@int":
		lit, err := e.literal(ctx)
		if err != nil {
			return nil, err
		}

		// conversion truncates floats
		i, f, kind, err := document.AsIntOrFloat(lit)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}
		v := i
		if kind == reflect.Float64 {
			v = int64(math.Trunc(f))
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", v)
		return v, nil

	case "@float":
		lit, err := e.literal(ctx)
		if err != nil {
			return nil, err
		}

		v, err := document.AsFloat(lit)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", v)
		return v, nil

	case "@string":
		lit, err := e.literal(ctx)
		if err != nil {
			return nil, err
		}

		str, err := document.AsString(lit)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		ret, err := GetJSONPath(ctx, str)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", ret)
		return ret, nil

	case "@list":
		ret := []any{}
		if e.Arg != nil {
			v, err := e.Arg.Evaluate(ctx)
			if err != nil {
				return nil, err
			}

			vs, err := document.AsList(v)
			if err != nil {
				return nil, NewExpressionError(e, err)
			}
			ret = vs
		} else {
			vs, ok := e.Literal.([]Expression)
			if !ok {
				return nil, NewExpressionError(e, errors.New("argument must be an expression list"))
			}

			for i := range vs {
				res, err := vs[i].Evaluate(ctx)
				if err != nil {
					return nil, err
				}
				ret = append(ret, res)
			}
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", ret)
		return ret, nil

	case "@dict":
		ret := Unstructured{}
		if e.Arg != nil {
			v, err := e.Arg.Evaluate(ctx)
			if err != nil {
				return nil, err
			}

			vs, err := document.AsMap(v)
			if err != nil {
				return nil, NewExpressionError(e, err)
			}
			ret = document.DeepCopyDocument(vs)
		} else {
			vm, ok := e.Literal.(map[string]Expression)
			if !ok {
				return nil, NewExpressionError(e, errors.New("argument must be a string->expression map"))
			}

			for k, exp := range vm {
				res, err := exp.Evaluate(ctx)
				if err != nil {
					return nil, err
				}

				// results may alias the object: copy before storing
				if err := SetJSONPath(k, document.DeepCopy(res), ret); err != nil {
					return nil, NewExpressionError(e,
						fmt.Errorf("could not set key %q: %w", k, err))
				}
			}
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", ret)
		return ret, nil
	}

	// list commands: must eval the arg themselves
	switch e.Op {
	case "@filter", "@map", "@any", "@all", "@none":
		return e.evalListCommand(ctx)
	}

	// operators
	if e.Arg == nil {
		return nil, NewExpressionError(e, errors.New("empty argument list"))
	}

	arg, err := e.Arg.Evaluate(ctx)
	if err != nil {
		return nil, err
	}

	if e.Op[0] != '@' {
		// literal map
		return Unstructured{e.Op: arg}, nil
	}

	switch e.Op {
	// unary bool
	case "@isnil":
		v := arg == nil
		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", arg, "result", v)
		return v, nil

	case "@exists":
		v := arg != nil
		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", arg, "result", v)
		return v, nil

	case "@not":
		b, err := document.AsBool(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := !b
		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", b, "result", v)
		return v, nil

	// binary bool
	case "@eq":
		args, err := asBinaryList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := document.Equal(args[0], args[1])
		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", args, "result", v)
		return v, nil

	// list bool
	case "@and":
		args, err := document.AsBoolList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := true
		for i := range args {
			v = v && args[i]
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", args, "result", v)
		return v, nil

	case "@or":
		args, err := document.AsBoolList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := false
		for i := range args {
			v = v || args[i]
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", args, "result", v)
		return v, nil

	// binary comparison
	case "@lt", "@lte", "@gt", "@gte":
		v, err := compare(e.Op, arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", arg, "result", v)
		return v, nil

	// binary arithmetic
	case "@add", "@sub", "@mul", "@div":
		v, err := arithmetic(e.Op, arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", arg, "result", v)
		return v, nil

	// unary arithmetic
	case "@abs", "@ceil", "@floor":
		f, err := document.AsFloat(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		var v float64
		switch e.Op {
		case "@abs":
			v = math.Abs(f)
		case "@ceil":
			v = math.Ceil(f)
		default:
			v = math.Floor(f)
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "args", f, "result", v)
		return v, nil

	// list ops
	case "@sum":
		is, fs, kind, err := document.AsIntOrFloatList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		var v any
		if kind == reflect.Int64 {
			vi := int64(0)
			for i := range is {
				vi += is[i]
			}
			v = vi
		} else {
			vf := 0.0
			for i := range fs {
				vf += fs[i]
			}
			v = vf
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "arg", arg, "result", v)
		return v, nil

	case "@len":
		args, err := document.AsList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := int64(len(args))
		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "arg", args, "result", v)
		return v, nil

	case "@distinct":
		args, err := document.AsList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := []any{}
		for _, a := range args {
			if !contains(v, a) {
				v = append(v, a)
			}
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "arg", args, "result", v)
		return v, nil

	case "@in": // @in: [elem, list]
		args, err := asBinaryList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		list, err := document.AsList(args[1])
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := contains(list, args[0])
		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "arg", args, "result", v)
		return v, nil

	case "@concat":
		args, err := document.AsStringList(arg)
		if err != nil {
			return nil, NewExpressionError(e, err)
		}

		v := ""
		for i := range args {
			v += args[i]
		}

		ctx.Log.V(8).Info("eval ready", "expression", e.String(), "arg", args, "result", v)
		return v, nil

	default:
		return nil, NewExpressionError(e, errors.New("unknown op"))
	}
}

// literal returns the literal of a terminal expression, evaluating stacked expressions stored in
// Arg first.
func (e *Expression) literal(ctx EvalCtx) (any, error) {
	if e.Arg == nil {
		return e.Literal, nil
	}
	return e.Arg.Evaluate(ctx)
}

// evalListCommand evaluates the list commands, taking [expression, list] as arguments. The
// expression is evaluated with each list element as the subject.
func (e *Expression) evalListCommand(ctx EvalCtx) (any, error) {
	args, err := AsExpOrExpList(e.Arg)
	if err != nil {
		return nil, NewExpressionError(e, err)
	}

	if len(args) != 2 {
		return nil, NewExpressionError(e, errors.New("invalid arguments: expected 2 arguments"))
	}

	fn := args[0]

	rawArg, err := args[1].Evaluate(ctx)
	if err != nil {
		return nil, NewExpressionError(e, fmt.Errorf("failed to evaluate arguments: %w", err))
	}

	list, err := document.AsList(rawArg)
	if err != nil {
		return nil, NewExpressionError(e, fmt.Errorf("invalid arguments: %w", err))
	}

	vs := []any{}
	for _, input := range list {
		res, err := fn.Evaluate(EvalCtx{Object: ctx.Object, Subject: input, Log: ctx.Log})
		if err != nil {
			return nil, err
		}

		if e.Op == "@map" {
			vs = append(vs, res)
			continue
		}

		b, err := document.AsBool(res)
		if err != nil {
			return nil, NewExpressionError(e,
				fmt.Errorf("expected conditional expression to evaluate to boolean: %w", err))
		}

		switch e.Op {
		case "@filter":
			if b {
				vs = append(vs, input)
			}
		case "@any":
			if b {
				ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", true)
				return true, nil
			}
		case "@all":
			if !b {
				ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", false)
				return false, nil
			}
		case "@none":
			if b {
				ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", false)
				return false, nil
			}
		}
	}

	var v any = vs
	switch e.Op {
	case "@any":
		v = false
	case "@all", "@none":
		v = true
	}

	ctx.Log.V(8).Info("eval ready", "expression", e.String(), "result", v)
	return v, nil
}

// AsExpOrExpList returns the expressions of a literal list, or the expression itself.
func AsExpOrExpList(exp *Expression) ([]Expression, error) {
	if exp == nil {
		return nil, errors.New("argument is empty")
	}

	if exp.Op == "@list" && exp.Arg == nil {
		ret, ok := exp.Literal.([]Expression)
		if !ok {
			return nil, fmt.Errorf("internal error: list expression should contain a literal list: %s",
				exp.String())
		}
		return ret, nil
	}

	return []Expression{*exp}, nil
}

func asBinaryList(arg any) ([]any, error) {
	args, err := document.AsList(arg)
	if err != nil {
		return nil, err
	}
	if len(args) != 2 {
		return nil, errors.New("expected 2 arguments")
	}
	return args, nil
}

func compare(op string, arg any) (bool, error) {
	is, fs, kind, err := document.AsBinaryIntOrFloatList(arg)
	if err != nil {
		return false, err
	}

	var c int
	if kind == reflect.Int64 {
		c = cmpNum(is[0], is[1])
	} else {
		c = cmpNum(fs[0], fs[1])
	}

	switch op {
	case "@lt":
		return c < 0, nil
	case "@lte":
		return c <= 0, nil
	case "@gt":
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

// arithmetic evaluates a binary numeric op. Integer operands stay integers except for @div,
// which always yields a float.
func arithmetic(op string, arg any) (any, error) {
	is, fs, kind, err := document.AsBinaryIntOrFloatList(arg)
	if err != nil {
		return nil, err
	}

	if kind == reflect.Int64 && op != "@div" {
		switch op {
		case "@add":
			return is[0] + is[1], nil
		case "@sub":
			return is[0] - is[1], nil
		default:
			return is[0] * is[1], nil
		}
	}

	if kind == reflect.Int64 {
		fs = []float64{float64(is[0]), float64(is[1])}
	}

	switch op {
	case "@add":
		return fs[0] + fs[1], nil
	case "@sub":
		return fs[0] - fs[1], nil
	case "@mul":
		return fs[0] * fs[1], nil
	default:
		if fs[1] == 0 {
			return nil, errors.New("division by zero")
		}
		return fs[0] / fs[1], nil
	}
}

func cmpNum[N int64 | float64](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func contains(list []any, v any) bool {
	for i := range list {
		if document.Equal(list[i], v) {
			return true
		}
	}
	return false
}

// Compare orders two evaluated values: numbers compare numerically, strings lexically. Any other
// combination is an error.
func Compare(a, b any) (int, error) {
	ia, fa, ka, erra := document.AsIntOrFloat(a)
	ib, fb, kb, errb := document.AsIntOrFloat(b)
	if erra == nil && errb == nil {
		if ka == reflect.Int64 && kb == reflect.Int64 {
			return cmpNum(ia, ib), nil
		}
		if ka == reflect.Int64 {
			fa = float64(ia)
		}
		if kb == reflect.Int64 {
			fb = float64(ib)
		}
		return cmpNum(fa, fb), nil
	}

	sa, oka := a.(string)
	sb, okb := b.(string)
	if oka && okb {
		return strings.Compare(sa, sb), nil
	}

	return 0, fmt.Errorf("cannot compare %#v and %#v", a, b)
}
