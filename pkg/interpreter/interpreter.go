package interpreter

import (
	"fmt"
	"io"
	"os"

	"stimpl/interpreter-go/pkg/ast"
	"stimpl/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of STIMPL expression trees. Print side
// effects and the optional debug dump share Stdout, so their ordering
// reflects evaluation order.
type Interpreter struct {
	Stdout io.Writer
}

// New returns an interpreter writing print output to os.Stdout.
func New() *Interpreter {
	return &Interpreter{Stdout: os.Stdout}
}

// Run evaluates program against a fresh empty environment. With debug
// set it additionally emits the program tree, the final (value, type)
// pair, and the final environment after evaluation returns.
func (i *Interpreter) Run(program ast.Expression, debug bool) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	val, typ, env, err := i.Evaluate(program, runtime.NewEnvironment())
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	if debug {
		fmt.Fprintf(i.Stdout, "program: %s\n", FormatExpression(program))
		fmt.Fprintf(i.Stdout, "final_value: (%s, %s)\n", runtime.FormatValue(val), typ)
		fmt.Fprintf(i.Stdout, "final_state: %s\n", env)
	}
	return val, typ, env, nil
}

// Evaluate walks one expression node. Sub-expressions evaluate left to
// right, each against the environment produced by its predecessor, and
// the possibly extended environment travels back up with the result.
// Any failure aborts straight to the caller.
func (i *Interpreter) Evaluate(node ast.Expression, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	switch n := node.(type) {
	case *ast.UnitLiteral:
		return runtime.UnitValue{}, runtime.KindUnit, env, nil
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, runtime.KindInteger, env, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: n.Value}, runtime.KindFloat, env, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, runtime.KindString, env, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, runtime.KindBool, env, nil
	case *ast.Print:
		val, typ, next, err := i.Evaluate(n.Operand, env)
		if err != nil {
			return nil, runtime.KindUnit, nil, err
		}
		fmt.Fprintln(i.Stdout, runtime.FormatValue(val))
		return val, typ, next, nil
	case *ast.Sequence:
		return i.evaluateSequence(n.Expressions, env)
	case *ast.Program:
		return i.evaluateSequence(n.Expressions, env)
	case *ast.Variable:
		val, typ, ok := env.Lookup(n.Name)
		if !ok {
			return nil, runtime.KindUnit, nil, syntaxErrorf("Cannot read from %s before assignment", n.Name)
		}
		return val, typ, env, nil
	case *ast.Assign:
		return i.evaluateAssign(n, env)
	case *ast.Add:
		return i.evaluateArithmetic("Add", n.Left, n.Right, env)
	case *ast.Subtract:
		return i.evaluateArithmetic("Subtract", n.Left, n.Right, env)
	case *ast.Multiply:
		return i.evaluateArithmetic("Multiply", n.Left, n.Right, env)
	case *ast.Divide:
		return i.evaluateArithmetic("Divide", n.Left, n.Right, env)
	case *ast.And:
		return i.evaluateAnd(n, env)
	case *ast.Or:
		return i.evaluateOr(n, env)
	case *ast.Not:
		val, _, next, err := i.Evaluate(n.Operand, env)
		if err != nil {
			return nil, runtime.KindUnit, nil, err
		}
		bv, ok := val.(runtime.BoolValue)
		if !ok {
			return nil, runtime.KindUnit, nil, typeErrorf("Cannot perform logical not on non-Boolean operand")
		}
		return runtime.BoolValue{Val: !bv.Val}, runtime.KindBool, next, nil
	case *ast.Lt:
		return i.evaluateComparison("Lt", n.Left, n.Right, env)
	case *ast.Lte:
		return i.evaluateComparison("Lte", n.Left, n.Right, env)
	case *ast.Gt:
		return i.evaluateComparison("Gt", n.Left, n.Right, env)
	case *ast.Gte:
		return i.evaluateComparison("Gte", n.Left, n.Right, env)
	case *ast.Eq:
		return i.evaluateComparison("Eq", n.Left, n.Right, env)
	case *ast.Ne:
		return i.evaluateComparison("Ne", n.Left, n.Right, env)
	case *ast.If:
		return i.evaluateIf(n, env)
	case *ast.While:
		return i.evaluateWhile(n, env)
	default:
		// The node set is closed; landing here means a new kind was added
		// without evaluator support.
		return nil, runtime.KindUnit, nil, syntaxErrorf("Unhandled expression node %s", node.NodeType())
	}
}

// evaluateSequence threads the environment through each expression in
// order and returns the last triple. An empty sequence yields an absent
// value of unit type against the unchanged environment.
func (i *Interpreter) evaluateSequence(exprs []ast.Expression, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	var (
		val runtime.Value
		typ = runtime.KindUnit
		err error
	)
	for _, expr := range exprs {
		val, typ, env, err = i.Evaluate(expr, env)
		if err != nil {
			return nil, runtime.KindUnit, nil, err
		}
	}
	return val, typ, env, nil
}

func (i *Interpreter) evaluateAssign(assign *ast.Assign, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	val, typ, next, err := i.Evaluate(assign.Value, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	name := assign.Target.Name
	// The type of a variable is fixed by its first assignment.
	if _, prior, ok := next.Lookup(name); ok && prior != typ {
		return nil, runtime.KindUnit, nil, typeErrorf("Mismatched types for Assignment: cannot assign %s to %s %s", typ, prior, name)
	}
	return val, typ, next.Bind(name, val, typ), nil
}

func (i *Interpreter) evaluateIf(expr *ast.If, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	cond, condType, next, err := i.Evaluate(expr.Condition, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	if condType != runtime.KindBool {
		return nil, runtime.KindUnit, nil, typeErrorf("Condition of If must be Boolean, got %s", condType)
	}
	if cond.(runtime.BoolValue).Val {
		return i.Evaluate(expr.Then, next)
	}
	return i.Evaluate(expr.Else, next)
}

func (i *Interpreter) evaluateWhile(expr *ast.While, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	var (
		val runtime.Value
		typ = runtime.KindUnit
	)
	cond, condType, next, err := i.Evaluate(expr.Condition, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	if condType != runtime.KindBool {
		return nil, runtime.KindUnit, nil, typeErrorf("Condition of While must be Boolean, got %s", condType)
	}
	for cond.(runtime.BoolValue).Val {
		val, typ, next, err = i.Evaluate(expr.Body, next)
		if err != nil {
			return nil, runtime.KindUnit, nil, err
		}
		cond, condType, next, err = i.Evaluate(expr.Condition, next)
		if err != nil {
			return nil, runtime.KindUnit, nil, err
		}
		if condType != runtime.KindBool {
			return nil, runtime.KindUnit, nil, typeErrorf("Condition of While must be Boolean, got %s", condType)
		}
	}
	return val, typ, next, nil
}
