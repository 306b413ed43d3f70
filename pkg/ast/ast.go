package ast

// NodeType tags every expression node. The set is closed: the evaluator
// dispatches exhaustively over it, and JSON fixtures carry the tag in a
// "type" field.
type NodeType string

const (
	NodeUnitLiteral    NodeType = "UnitLiteral"
	NodeIntegerLiteral NodeType = "IntegerLiteral"
	NodeFloatLiteral   NodeType = "FloatLiteral"
	NodeStringLiteral  NodeType = "StringLiteral"
	NodeBooleanLiteral NodeType = "BooleanLiteral"
	NodeVariable       NodeType = "Variable"
	NodeAssign         NodeType = "Assign"
	NodePrint          NodeType = "Print"
	NodeSequence       NodeType = "Sequence"
	NodeProgram        NodeType = "Program"
	NodeAdd            NodeType = "Add"
	NodeSubtract       NodeType = "Subtract"
	NodeMultiply       NodeType = "Multiply"
	NodeDivide         NodeType = "Divide"
	NodeAnd            NodeType = "And"
	NodeOr             NodeType = "Or"
	NodeNot            NodeType = "Not"
	NodeLt             NodeType = "Lt"
	NodeLte            NodeType = "Lte"
	NodeGt             NodeType = "Gt"
	NodeGte            NodeType = "Gte"
	NodeEq             NodeType = "Eq"
	NodeNe             NodeType = "Ne"
	NodeIf             NodeType = "If"
	NodeWhile          NodeType = "While"
)

// Expression is the shared behaviour of every node in a STIMPL tree.
// Trees are immutable records built by a front-end; evaluation never
// modifies them.
type Expression interface {
	NodeType() NodeType
	expressionNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) expressionNode()      {}

// Literals

type UnitLiteral struct {
	nodeImpl
}

func NewUnitLiteral() *UnitLiteral {
	return &UnitLiteral{nodeImpl: newNodeImpl(NodeUnitLiteral)}
}

type IntegerLiteral struct {
	nodeImpl

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl

	Value float64 `json:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// Variables and assignment

type Variable struct {
	nodeImpl

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

type Assign struct {
	nodeImpl

	Target *Variable  `json:"target"`
	Value  Expression `json:"value"`
}

func NewAssign(target *Variable, value Expression) *Assign {
	return &Assign{nodeImpl: newNodeImpl(NodeAssign), Target: target, Value: value}
}

// Print

type Print struct {
	nodeImpl

	Operand Expression `json:"operand"`
}

func NewPrint(operand Expression) *Print {
	return &Print{nodeImpl: newNodeImpl(NodePrint), Operand: operand}
}

// Sequencing. Program is the top-level sequence a front-end hands to the
// driver; the two evaluate identically.

type Sequence struct {
	nodeImpl

	Expressions []Expression `json:"expressions"`
}

func NewSequence(exprs ...Expression) *Sequence {
	return &Sequence{nodeImpl: newNodeImpl(NodeSequence), Expressions: exprs}
}

type Program struct {
	nodeImpl

	Expressions []Expression `json:"expressions"`
}

func NewProgram(exprs ...Expression) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Expressions: exprs}
}

// Arithmetic

type Add struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewAdd(left, right Expression) *Add {
	return &Add{nodeImpl: newNodeImpl(NodeAdd), Left: left, Right: right}
}

type Subtract struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewSubtract(left, right Expression) *Subtract {
	return &Subtract{nodeImpl: newNodeImpl(NodeSubtract), Left: left, Right: right}
}

type Multiply struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewMultiply(left, right Expression) *Multiply {
	return &Multiply{nodeImpl: newNodeImpl(NodeMultiply), Left: left, Right: right}
}

type Divide struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewDivide(left, right Expression) *Divide {
	return &Divide{nodeImpl: newNodeImpl(NodeDivide), Left: left, Right: right}
}

// Boolean logic

type And struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewAnd(left, right Expression) *And {
	return &And{nodeImpl: newNodeImpl(NodeAnd), Left: left, Right: right}
}

type Or struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewOr(left, right Expression) *Or {
	return &Or{nodeImpl: newNodeImpl(NodeOr), Left: left, Right: right}
}

type Not struct {
	nodeImpl

	Operand Expression `json:"operand"`
}

func NewNot(operand Expression) *Not {
	return &Not{nodeImpl: newNodeImpl(NodeNot), Operand: operand}
}

// Comparisons

type Lt struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewLt(left, right Expression) *Lt {
	return &Lt{nodeImpl: newNodeImpl(NodeLt), Left: left, Right: right}
}

type Lte struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewLte(left, right Expression) *Lte {
	return &Lte{nodeImpl: newNodeImpl(NodeLte), Left: left, Right: right}
}

type Gt struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewGt(left, right Expression) *Gt {
	return &Gt{nodeImpl: newNodeImpl(NodeGt), Left: left, Right: right}
}

type Gte struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewGte(left, right Expression) *Gte {
	return &Gte{nodeImpl: newNodeImpl(NodeGte), Left: left, Right: right}
}

type Eq struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewEq(left, right Expression) *Eq {
	return &Eq{nodeImpl: newNodeImpl(NodeEq), Left: left, Right: right}
}

type Ne struct {
	nodeImpl

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewNe(left, right Expression) *Ne {
	return &Ne{nodeImpl: newNodeImpl(NodeNe), Left: left, Right: right}
}

// Control flow

type If struct {
	nodeImpl

	Condition Expression `json:"condition"`
	Then      Expression `json:"then"`
	Else      Expression `json:"else"`
}

func NewIf(condition, then, els Expression) *If {
	return &If{nodeImpl: newNodeImpl(NodeIf), Condition: condition, Then: then, Else: els}
}

type While struct {
	nodeImpl

	Condition Expression `json:"condition"`
	Body      Expression `json:"body"`
}

func NewWhile(condition, body Expression) *While {
	return &While{nodeImpl: newNodeImpl(NodeWhile), Condition: condition, Body: body}
}
