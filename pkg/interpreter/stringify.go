package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"stimpl/interpreter-go/pkg/ast"
)

// FormatExpression renders an expression tree in a deterministic,
// human-readable form for debug output.
func FormatExpression(node ast.Expression) string {
	switch n := node.(type) {
	case *ast.UnitLiteral:
		return "UnitLiteral()"
	case *ast.IntegerLiteral:
		return fmt.Sprintf("IntegerLiteral(%d)", n.Value)
	case *ast.FloatLiteral:
		return fmt.Sprintf("FloatLiteral(%s)", strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *ast.StringLiteral:
		return fmt.Sprintf("StringLiteral(%q)", n.Value)
	case *ast.BooleanLiteral:
		return fmt.Sprintf("BooleanLiteral(%t)", n.Value)
	case *ast.Variable:
		return fmt.Sprintf("Variable(%s)", n.Name)
	case *ast.Assign:
		return fmt.Sprintf("Assign(%s, %s)", FormatExpression(n.Target), FormatExpression(n.Value))
	case *ast.Print:
		return fmt.Sprintf("Print(%s)", FormatExpression(n.Operand))
	case *ast.Sequence:
		return formatChildren("Sequence", n.Expressions)
	case *ast.Program:
		return formatChildren("Program", n.Expressions)
	case *ast.Add:
		return formatBinary("Add", n.Left, n.Right)
	case *ast.Subtract:
		return formatBinary("Subtract", n.Left, n.Right)
	case *ast.Multiply:
		return formatBinary("Multiply", n.Left, n.Right)
	case *ast.Divide:
		return formatBinary("Divide", n.Left, n.Right)
	case *ast.And:
		return formatBinary("And", n.Left, n.Right)
	case *ast.Or:
		return formatBinary("Or", n.Left, n.Right)
	case *ast.Not:
		return fmt.Sprintf("Not(%s)", FormatExpression(n.Operand))
	case *ast.Lt:
		return formatBinary("Lt", n.Left, n.Right)
	case *ast.Lte:
		return formatBinary("Lte", n.Left, n.Right)
	case *ast.Gt:
		return formatBinary("Gt", n.Left, n.Right)
	case *ast.Gte:
		return formatBinary("Gte", n.Left, n.Right)
	case *ast.Eq:
		return formatBinary("Eq", n.Left, n.Right)
	case *ast.Ne:
		return formatBinary("Ne", n.Left, n.Right)
	case *ast.If:
		return fmt.Sprintf("If(%s, %s, %s)", FormatExpression(n.Condition), FormatExpression(n.Then), FormatExpression(n.Else))
	case *ast.While:
		return fmt.Sprintf("While(%s, %s)", FormatExpression(n.Condition), FormatExpression(n.Body))
	default:
		return fmt.Sprintf("Unknown(%s)", node.NodeType())
	}
}

func formatBinary(name string, left, right ast.Expression) string {
	return fmt.Sprintf("%s(%s, %s)", name, FormatExpression(left), FormatExpression(right))
}

func formatChildren(name string, exprs []ast.Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, FormatExpression(expr))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
