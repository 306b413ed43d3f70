package interpreter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"stimpl/interpreter-go/pkg/ast"
)

// Fixture decoding: expression trees are stored on disk as JSON with a
// "type" tag per node, the same shape the ast package marshals to.
// Decoding is strict; an unknown tag or a malformed payload is an error
// rather than a silently dropped node.

// LoadProgram reads and decodes a JSON fixture file.
func LoadProgram(path string) (ast.Expression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	expr, err := DecodeExpression(data)
	if err != nil {
		return nil, fmt.Errorf("fixture: %s: %w", path, err)
	}
	return expr, nil
}

// DecodeExpression decodes one JSON-encoded expression tree.
func DecodeExpression(data []byte) (ast.Expression, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	return decodeNode(raw)
}

func decodeNode(node map[string]any) (ast.Expression, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeUnitLiteral:
		return ast.NewUnitLiteral(), nil
	case ast.NodeIntegerLiteral:
		val, err := decodeInt64(node["value"])
		if err != nil {
			return nil, fmt.Errorf("integer literal: %w", err)
		}
		return ast.NewIntegerLiteral(val), nil
	case ast.NodeFloatLiteral:
		val, err := decodeFloat64(node["value"])
		if err != nil {
			return nil, fmt.Errorf("float literal: %w", err)
		}
		return ast.NewFloatLiteral(val), nil
	case ast.NodeStringLiteral:
		val, ok := node["value"].(string)
		if !ok {
			return nil, fmt.Errorf("string literal requires a string value")
		}
		return ast.NewStringLiteral(val), nil
	case ast.NodeBooleanLiteral:
		val, ok := node["value"].(bool)
		if !ok {
			return nil, fmt.Errorf("boolean literal requires a bool value")
		}
		return ast.NewBooleanLiteral(val), nil
	case ast.NodeVariable:
		name, ok := node["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("variable requires a name")
		}
		return ast.NewVariable(name), nil
	case ast.NodeAssign:
		target, err := decodeChild(node, "target")
		if err != nil {
			return nil, err
		}
		variable, ok := target.(*ast.Variable)
		if !ok {
			return nil, fmt.Errorf("assignment target must be a variable, got %s", target.NodeType())
		}
		value, err := decodeChild(node, "value")
		if err != nil {
			return nil, err
		}
		return ast.NewAssign(variable, value), nil
	case ast.NodePrint:
		operand, err := decodeChild(node, "operand")
		if err != nil {
			return nil, err
		}
		return ast.NewPrint(operand), nil
	case ast.NodeSequence:
		exprs, err := decodeChildren(node, "expressions")
		if err != nil {
			return nil, err
		}
		return ast.NewSequence(exprs...), nil
	case ast.NodeProgram:
		exprs, err := decodeChildren(node, "expressions")
		if err != nil {
			return nil, err
		}
		return ast.NewProgram(exprs...), nil
	case ast.NodeAdd:
		return decodeBinary(node, ast.NewAdd)
	case ast.NodeSubtract:
		return decodeBinary(node, ast.NewSubtract)
	case ast.NodeMultiply:
		return decodeBinary(node, ast.NewMultiply)
	case ast.NodeDivide:
		return decodeBinary(node, ast.NewDivide)
	case ast.NodeAnd:
		return decodeBinary(node, ast.NewAnd)
	case ast.NodeOr:
		return decodeBinary(node, ast.NewOr)
	case ast.NodeNot:
		operand, err := decodeChild(node, "operand")
		if err != nil {
			return nil, err
		}
		return ast.NewNot(operand), nil
	case ast.NodeLt:
		return decodeBinary(node, ast.NewLt)
	case ast.NodeLte:
		return decodeBinary(node, ast.NewLte)
	case ast.NodeGt:
		return decodeBinary(node, ast.NewGt)
	case ast.NodeGte:
		return decodeBinary(node, ast.NewGte)
	case ast.NodeEq:
		return decodeBinary(node, ast.NewEq)
	case ast.NodeNe:
		return decodeBinary(node, ast.NewNe)
	case ast.NodeIf:
		condition, err := decodeChild(node, "condition")
		if err != nil {
			return nil, err
		}
		then, err := decodeChild(node, "then")
		if err != nil {
			return nil, err
		}
		els, err := decodeChild(node, "else")
		if err != nil {
			return nil, err
		}
		return ast.NewIf(condition, then, els), nil
	case ast.NodeWhile:
		condition, err := decodeChild(node, "condition")
		if err != nil {
			return nil, err
		}
		body, err := decodeChild(node, "body")
		if err != nil {
			return nil, err
		}
		return ast.NewWhile(condition, body), nil
	default:
		return nil, fmt.Errorf("unknown node type %q", typ)
	}
}

func decodeBinary[T ast.Expression](node map[string]any, build func(left, right ast.Expression) T) (ast.Expression, error) {
	left, err := decodeChild(node, "left")
	if err != nil {
		return nil, err
	}
	right, err := decodeChild(node, "right")
	if err != nil {
		return nil, err
	}
	return build(left, right), nil
}

func decodeChild(node map[string]any, field string) (ast.Expression, error) {
	raw, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s node missing %q", node["type"], field)
	}
	return decodeNode(raw)
}

func decodeChildren(node map[string]any, field string) ([]ast.Expression, error) {
	raw, present := node[field]
	if !present || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s node field %q must be a list", node["type"], field)
	}
	exprs := make([]ast.Expression, 0, len(list))
	for idx, entry := range list {
		child, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s node field %q entry %d is not an object", node["type"], field, idx)
		}
		expr, err := decodeNode(child)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func decodeInt64(raw any) (int64, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("requires a number, got %T", raw)
	}
	val, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("value %s is not a 64-bit integer", num)
	}
	return val, nil
}

func decodeFloat64(raw any) (float64, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, fmt.Errorf("requires a number, got %T", raw)
	}
	return num.Float64()
}
