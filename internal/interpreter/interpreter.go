// Package interpreter walks the Bolt statement tree, evaluates
// expressions, mutates environments, and performs side effects.
// Return-value propagation out of a function call is modeled as a tagged
// control-flow signal returned alongside every statement's error, rather
// than a side-channel "specials" frame.
package interpreter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/environment"
	"github.com/boltlang/bolt/internal/token"
	"github.com/boltlang/bolt/internal/value"
)

// RuntimeError is any error raised while walking the tree: type mismatches,
// undefined variables, arity mismatches, non-callable invocations. These
// abort the current run immediately.
type RuntimeError struct {
	Line    int // 0 when no token was available to attribute the error to
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

// control is the tagged signal, returned by every exec call, that carries
// a pending return value up out of a function body.
type control struct {
	returning bool
	value     value.Value
}

// Interpreter owns the lexical scope stack and runs statements against it.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
}

// New returns an Interpreter with a fresh globals frame pre-defining
// clock.
func New(out io.Writer) *Interpreter {
	globals := environment.New(nil)
	in := &Interpreter{Globals: globals, env: globals, Out: out}
	globals.Define("clock", value.FromCallable(&value.Callable{
		Name:  "clock",
		Arity: 0,
		Thunk: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixMilli()) / 1000.0), nil
		},
	}))
	return in
}

// Interpret runs a full program (the statement sequence the parser
// produced) against the current global environment.
func (in *Interpreter) Interpret(program []ast.Stmt) error {
	for _, stmt := range program {
		if _, err := in.exec(in.env, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ---- statement execution ----

func (in *Interpreter) exec(env *environment.Environment, stmt ast.Stmt) (control, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.eval(env, s.Expr)
		return control{}, err

	case *ast.PrintStmt:
		v, err := in.eval(env, s.Expr)
		if err != nil {
			return control{}, err
		}
		fmt.Fprintln(in.Out, value.Display(v))
		return control{}, nil

	case *ast.VarStmt:
		v := value.Nil()
		if s.Initializer != nil {
			var err error
			v, err = in.eval(env, s.Initializer)
			if err != nil {
				return control{}, err
			}
		}
		env.Define(s.Name.Lexeme, v)
		return control{}, nil

	case *ast.BlockStmt:
		return in.execBlock(environment.New(env), s.Statements)

	case *ast.IfStmt:
		cond, err := in.eval(env, s.Condition)
		if err != nil {
			return control{}, err
		}
		if value.Truthy(cond) {
			return in.exec(env, s.Then)
		}
		if s.Else != nil {
			return in.exec(env, s.Else)
		}
		return control{}, nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(env, s.Condition)
			if err != nil {
				return control{}, err
			}
			if !value.Truthy(cond) {
				return control{}, nil
			}
			ctrl, err := in.exec(env, s.Body)
			if err != nil {
				return control{}, err
			}
			if ctrl.returning {
				return ctrl, nil
			}
		}

	case *ast.FunctionStmt:
		fn := in.bindFunction(s.Name.Lexeme, s.Fn, env)
		env.Define(s.Name.Lexeme, value.FromCallable(fn))
		return control{}, nil

	case *ast.ReturnStmt:
		v := value.Nil()
		if s.Value != nil {
			var err error
			v, err = in.eval(env, s.Value)
			if err != nil {
				return control{}, err
			}
		}
		return control{returning: true, value: v}, nil
	}
	panic(fmt.Sprintf("interpreter: unhandled statement type %T", stmt))
}

// execBlock runs stmts in order, stopping early — without executing the
// rest of the block — the moment a return signal surfaces.
func (in *Interpreter) execBlock(env *environment.Environment, stmts []ast.Stmt) (control, error) {
	for _, stmt := range stmts {
		ctrl, err := in.exec(env, stmt)
		if err != nil {
			return control{}, err
		}
		if ctrl.returning {
			return ctrl, nil
		}
	}
	return control{}, nil
}

// bindFunction builds the Callable for both named and anonymous functions,
// capturing env as the defining frame.
func (in *Interpreter) bindFunction(name string, fn *ast.FunctionExpr, closure *environment.Environment) *value.Callable {
	return &value.Callable{
		Name:  name,
		Arity: len(fn.Params),
		Thunk: func(args []value.Value) (value.Value, error) {
			callEnv := environment.New(closure)
			for i, param := range fn.Params {
				callEnv.Define(param.Lexeme, args[i])
			}
			ctrl, err := in.execBlock(callEnv, fn.Body)
			if err != nil {
				return value.Value{}, err
			}
			if ctrl.returning {
				return ctrl.value, nil
			}
			return value.Nil(), nil
		},
	}
}

// ---- expression evaluation ----

func (in *Interpreter) eval(env *environment.Environment, expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Val, nil

	case *ast.VariableExpr:
		v, ok := env.Get(e.Name.Lexeme)
		if !ok {
			return value.Value{}, &RuntimeError{
				Line:    e.Name.Line,
				Message: fmt.Sprintf("Variable '%s' has not been declared", e.Name.Lexeme),
			}
		}
		return v, nil

	case *ast.AssignExpr:
		v, err := in.eval(env, e.Value)
		if err != nil {
			return value.Value{}, err
		}
		if !env.Assign(e.Name.Lexeme, v) {
			return value.Value{}, &RuntimeError{
				Line:    e.Name.Line,
				Message: fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme),
			}
		}
		return v, nil

	case *ast.GroupingExpr:
		return in.eval(env, e.Inner)

	case *ast.UnaryExpr:
		return in.evalUnary(env, e)

	case *ast.LogicalExpr:
		return in.evalLogical(env, e)

	case *ast.BinaryExpr:
		return in.evalBinary(env, e)

	case *ast.CallExpr:
		return in.evalCall(env, e)

	case *ast.FunctionExpr:
		return value.FromCallable(in.bindFunction("anonymous", e, env)), nil
	}
	panic(fmt.Sprintf("interpreter: unhandled expression type %T", expr))
}

func (in *Interpreter) evalUnary(env *environment.Environment, e *ast.UnaryExpr) (value.Value, error) {
	right, err := in.eval(env, e.Right)
	if err != nil {
		return value.Value{}, err
	}
	switch e.Op.Kind {
	case token.Bang:
		return value.Bool(!value.Truthy(right)), nil
	case token.Minus:
		if right.Kind != value.KindNumber {
			return value.Value{}, &RuntimeError{
				Line:    e.Op.Line,
				Message: fmt.Sprintf("Minus not implemented for %s", value.TypeName(right)),
			}
		}
		return value.Number(-right.Num), nil
	}
	panic("interpreter: unhandled unary operator " + e.Op.Kind.String())
}

// evalLogical implements short-circuiting and/or. `or` returns whichever
// operand decided the result, unchanged. `and` returns the boolean false
// when the left operand is falsy rather than the left operand itself,
// kept distinct from the more common "return LHS" Lox behavior (see
// DESIGN.md).
func (in *Interpreter) evalLogical(env *environment.Environment, e *ast.LogicalExpr) (value.Value, error) {
	left, err := in.eval(env, e.Left)
	if err != nil {
		return value.Value{}, err
	}
	if e.Op.Kind == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
		return in.eval(env, e.Right)
	}
	// And
	if !value.Truthy(left) {
		return value.Bool(false), nil
	}
	return in.eval(env, e.Right)
}

func (in *Interpreter) evalBinary(env *environment.Environment, e *ast.BinaryExpr) (value.Value, error) {
	left, err := in.eval(env, e.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := in.eval(env, e.Right)
	if err != nil {
		return value.Value{}, err
	}

	op := e.Op.Lexeme
	bothNumbers := left.Kind == value.KindNumber && right.Kind == value.KindNumber
	bothStrings := left.Kind == value.KindString && right.Kind == value.KindString

	switch e.Op.Kind {
	case token.Plus:
		if bothNumbers {
			return value.Number(left.Num + right.Num), nil
		}
		if bothStrings {
			return value.String(left.Str + right.Str), nil
		}
		return value.Value{}, binaryTypeError(op, left, right, e.Op.Line)

	case token.Minus, token.Star, token.Slash:
		if !bothNumbers {
			return value.Value{}, binaryTypeError(op, left, right, e.Op.Line)
		}
		switch e.Op.Kind {
		case token.Minus:
			return value.Number(left.Num - right.Num), nil
		case token.Star:
			return value.Number(left.Num * right.Num), nil
		default:
			return value.Number(left.Num / right.Num), nil
		}

	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		if bothNumbers {
			return value.Bool(compareNumbers(e.Op.Kind, left.Num, right.Num)), nil
		}
		if bothStrings {
			return value.Bool(compareStrings(e.Op.Kind, left.Str, right.Str)), nil
		}
		return value.Value{}, binaryTypeError(op, left, right, e.Op.Line)

	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil
	}
	panic("interpreter: unhandled binary operator " + e.Op.Kind.String())
}

func compareNumbers(op token.Kind, a, b float64) bool {
	switch op {
	case token.Greater:
		return a > b
	case token.GreaterEqual:
		return a >= b
	case token.Less:
		return a < b
	default:
		return a <= b
	}
}

func compareStrings(op token.Kind, a, b string) bool {
	switch op {
	case token.Greater:
		return strings.Compare(a, b) > 0
	case token.GreaterEqual:
		return strings.Compare(a, b) >= 0
	case token.Less:
		return strings.Compare(a, b) < 0
	default:
		return strings.Compare(a, b) <= 0
	}
}

// binaryTypeError distinguishes the string/number mix case from every
// other unsupported operand combination, each with its own message.
func binaryTypeError(op string, left, right value.Value, line int) error {
	mixedStringNumber := (left.Kind == value.KindString && right.Kind == value.KindNumber) ||
		(left.Kind == value.KindNumber && right.Kind == value.KindString)
	if mixedStringNumber {
		return &RuntimeError{Line: line, Message: fmt.Sprintf("%s is not defined string and number", op)}
	}
	return &RuntimeError{Line: line, Message: fmt.Sprintf("%s is not implemented for operands", op)}
}

func (in *Interpreter) evalCall(env *environment.Environment, e *ast.CallExpr) (value.Value, error) {
	callee, err := in.eval(env, e.Callee)
	if err != nil {
		return value.Value{}, err
	}
	if callee.Kind != value.KindCallable {
		return value.Value{}, &RuntimeError{Line: e.Paren.Line, Message: "Can only call functions."}
	}

	if len(e.Args) != callee.Callable.Arity {
		return value.Value{}, &RuntimeError{
			Line:    e.Paren.Line,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", callee.Callable.Arity, len(e.Args)),
		}
	}

	// Arguments are evaluated in left-to-right source order before the
	// callable is invoked.
	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(env, a)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	return callee.Callable.Thunk(args)
}
