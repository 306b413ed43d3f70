package ast

// Compact builders for assembling trees by hand. Front-ends and tests
// build whole programs out of these.

func Unit() *UnitLiteral { return NewUnitLiteral() }

func Int(value int64) *IntegerLiteral { return NewIntegerLiteral(value) }

func Flt(value float64) *FloatLiteral { return NewFloatLiteral(value) }

func Str(value string) *StringLiteral { return NewStringLiteral(value) }

func Bool(value bool) *BooleanLiteral { return NewBooleanLiteral(value) }

func Var(name string) *Variable { return NewVariable(name) }

// Set assigns value to the named variable.
func Set(name string, value Expression) *Assign {
	return NewAssign(NewVariable(name), value)
}

func Echo(operand Expression) *Print { return NewPrint(operand) }

func Seq(exprs ...Expression) *Sequence { return NewSequence(exprs...) }

func Prog(exprs ...Expression) *Program { return NewProgram(exprs...) }

func Plus(left, right Expression) *Add { return NewAdd(left, right) }

func Minus(left, right Expression) *Subtract { return NewSubtract(left, right) }

func Times(left, right Expression) *Multiply { return NewMultiply(left, right) }

func Div(left, right Expression) *Divide { return NewDivide(left, right) }

func Conj(left, right Expression) *And { return NewAnd(left, right) }

func Disj(left, right Expression) *Or { return NewOr(left, right) }

func Neg(operand Expression) *Not { return NewNot(operand) }

func Less(left, right Expression) *Lt { return NewLt(left, right) }

func LessEq(left, right Expression) *Lte { return NewLte(left, right) }

func Greater(left, right Expression) *Gt { return NewGt(left, right) }

func GreaterEq(left, right Expression) *Gte { return NewGte(left, right) }

func Equal(left, right Expression) *Eq { return NewEq(left, right) }

func NotEqual(left, right Expression) *Ne { return NewNe(left, right) }

func Cond(condition, then, els Expression) *If { return NewIf(condition, then, els) }

func Loop(condition, body Expression) *While { return NewWhile(condition, body) }
