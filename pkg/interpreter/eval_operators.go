package interpreter

import (
	"stimpl/interpreter-go/pkg/ast"
	"stimpl/interpreter-go/pkg/runtime"
)

// evaluateOperands runs left then right, the right side against the
// environment the left side produced.
func (i *Interpreter) evaluateOperands(left, right ast.Expression, env *runtime.Environment) (runtime.Value, runtime.Type, runtime.Value, runtime.Type, *runtime.Environment, error) {
	leftVal, leftType, next, err := i.Evaluate(left, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, runtime.KindUnit, nil, err
	}
	rightVal, rightType, next, err := i.Evaluate(right, next)
	if err != nil {
		return nil, runtime.KindUnit, nil, runtime.KindUnit, nil, err
	}
	return leftVal, leftType, rightVal, rightType, next, nil
}

func (i *Interpreter) evaluateArithmetic(op string, left, right ast.Expression, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	leftVal, leftType, rightVal, rightType, next, err := i.evaluateOperands(left, right, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	// No promotion between Integer and FloatingPoint: mixed operands are
	// a mismatch, not a widening.
	if leftType != rightType {
		return nil, runtime.KindUnit, nil, typeErrorf("Mismatched types for %s: cannot combine %s and %s", op, leftType, rightType)
	}
	switch leftType {
	case runtime.KindInteger:
		lv := leftVal.(runtime.IntegerValue).Val
		rv := rightVal.(runtime.IntegerValue).Val
		result, err := applyIntegerOp(op, lv, rv)
		if err != nil {
			return nil, runtime.KindUnit, nil, err
		}
		return runtime.IntegerValue{Val: result}, runtime.KindInteger, next, nil
	case runtime.KindFloat:
		lv := leftVal.(runtime.FloatValue).Val
		rv := rightVal.(runtime.FloatValue).Val
		result, err := applyFloatOp(op, lv, rv)
		if err != nil {
			return nil, runtime.KindUnit, nil, err
		}
		return runtime.FloatValue{Val: result}, runtime.KindFloat, next, nil
	case runtime.KindString:
		if op != "Add" {
			return nil, runtime.KindUnit, nil, typeErrorf("Cannot perform %s on String operands", op)
		}
		lv := leftVal.(runtime.StringValue).Val
		rv := rightVal.(runtime.StringValue).Val
		return runtime.StringValue{Val: lv + rv}, runtime.KindString, next, nil
	default:
		return nil, runtime.KindUnit, nil, typeErrorf("Cannot perform %s on %s operands", op, leftType)
	}
}

func applyIntegerOp(op string, left, right int64) (int64, error) {
	switch op {
	case "Add":
		return left + right, nil
	case "Subtract":
		return left - right, nil
	case "Multiply":
		return left * right, nil
	case "Divide":
		if right == 0 {
			return 0, arithmeticErrorf("Division by zero")
		}
		return left / right, nil
	default:
		return 0, syntaxErrorf("Unhandled arithmetic operator %s", op)
	}
}

func applyFloatOp(op string, left, right float64) (float64, error) {
	switch op {
	case "Add":
		return left + right, nil
	case "Subtract":
		return left - right, nil
	case "Multiply":
		return left * right, nil
	case "Divide":
		if right == 0 {
			return 0, arithmeticErrorf("Division by zero")
		}
		return left / right, nil
	default:
		return 0, syntaxErrorf("Unhandled arithmetic operator %s", op)
	}
}

// evaluateAnd evaluates both operands unconditionally; there is no
// short-circuit for logical and.
func (i *Interpreter) evaluateAnd(expr *ast.And, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	leftVal, leftType, rightVal, rightType, next, err := i.evaluateOperands(expr.Left, expr.Right, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	if leftType != rightType {
		return nil, runtime.KindUnit, nil, typeErrorf("Mismatched types for And: cannot combine %s and %s", leftType, rightType)
	}
	if leftType != runtime.KindBool {
		return nil, runtime.KindUnit, nil, typeErrorf("Cannot perform logical and on %s operands", leftType)
	}
	lb := leftVal.(runtime.BoolValue).Val
	rb := rightVal.(runtime.BoolValue).Val
	return runtime.BoolValue{Val: lb && rb}, runtime.KindBool, next, nil
}

// evaluateOr short-circuits only once the left side is confirmed to be a
// true Boolean; otherwise the right side evaluates and both operand
// types are validated.
func (i *Interpreter) evaluateOr(expr *ast.Or, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	leftVal, leftType, next, err := i.Evaluate(expr.Left, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	if lb, ok := leftVal.(runtime.BoolValue); ok && lb.Val {
		return runtime.BoolValue{Val: true}, runtime.KindBool, next, nil
	}
	rightVal, rightType, next, err := i.Evaluate(expr.Right, next)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	if leftType != runtime.KindBool || rightType != runtime.KindBool {
		return nil, runtime.KindUnit, nil, typeErrorf("Cannot perform logical or on %s and %s operands", leftType, rightType)
	}
	rb := rightVal.(runtime.BoolValue).Val
	return runtime.BoolValue{Val: rb}, runtime.KindBool, next, nil
}

func (i *Interpreter) evaluateComparison(op string, left, right ast.Expression, env *runtime.Environment) (runtime.Value, runtime.Type, *runtime.Environment, error) {
	leftVal, leftType, rightVal, rightType, next, err := i.evaluateOperands(left, right, env)
	if err != nil {
		return nil, runtime.KindUnit, nil, err
	}
	if leftType != rightType {
		return nil, runtime.KindUnit, nil, typeErrorf("Mismatched types for %s: cannot compare %s and %s", op, leftType, rightType)
	}
	cmp := compareValues(leftVal, rightVal, leftType)
	return runtime.BoolValue{Val: comparisonOp(op, cmp)}, runtime.KindBool, next, nil
}

// compareValues orders two values of the same type: integers and floats
// numerically, strings lexicographically, false before true, and any two
// units as equal.
func compareValues(left, right runtime.Value, typ runtime.Type) int {
	switch typ {
	case runtime.KindInteger:
		lv := left.(runtime.IntegerValue).Val
		rv := right.(runtime.IntegerValue).Val
		return compareOrdered(lv, rv)
	case runtime.KindFloat:
		lv := left.(runtime.FloatValue).Val
		rv := right.(runtime.FloatValue).Val
		return compareOrdered(lv, rv)
	case runtime.KindString:
		lv := left.(runtime.StringValue).Val
		rv := right.(runtime.StringValue).Val
		return compareOrdered(lv, rv)
	case runtime.KindBool:
		lv := left.(runtime.BoolValue).Val
		rv := right.(runtime.BoolValue).Val
		switch {
		case lv == rv:
			return 0
		case rv:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

func compareOrdered[T int64 | float64 | string](left, right T) int {
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

func comparisonOp(op string, cmp int) bool {
	switch op {
	case "Lt":
		return cmp < 0
	case "Lte":
		return cmp <= 0
	case "Gt":
		return cmp > 0
	case "Gte":
		return cmp >= 0
	case "Eq":
		return cmp == 0
	case "Ne":
		return cmp != 0
	default:
		return false
	}
}
