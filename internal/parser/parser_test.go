package parser

import (
	"testing"

	"github.com/boltlang/bolt/internal/ast"
	"github.com/boltlang/bolt/internal/scanner"
)

func TestParseVarAndPrint(t *testing.T) {
	toks, err := scanner.Scan(`var x = 1; print x;`)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	stmts, err := Parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*ast.VarStmt); !ok {
		t.Errorf("expected VarStmt, got %T", stmts[0])
	}
	if _, ok := stmts[1].(*ast.PrintStmt); !ok {
		t.Errorf("expected PrintStmt, got %T", stmts[1])
	}
}

func TestForDesugarsToBlockWhile(t *testing.T) {
	toks, _ := scanner.Scan(`for (var i = 0; i < 5; i = i + 1) print i;`)
	stmts, err := Parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement (desugared block), got %d", len(stmts))
	}
	block, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected BlockStmt, got %T", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected init + while, got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("expected first statement to be the initializer VarStmt, got %T", block.Statements[0])
	}
	while, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", block.Statements[1])
	}
	body, ok := while.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected while body wrapped in a block with the increment, got %T", while.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("expected original body + increment, got %d", len(body.Statements))
	}
}

func TestForWithoutConditionDefaultsToTrue(t *testing.T) {
	toks, _ := scanner.Scan(`for (;;) print 1;`)
	stmts, err := Parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	while, ok := stmts[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected bare WhileStmt (no initializer to wrap it), got %T", stmts[0])
	}
	lit, ok := while.Condition.(*ast.LiteralExpr)
	if !ok {
		t.Fatalf("expected literal true condition, got %T", while.Condition)
	}
	if lit.String() != "true" {
		t.Fatalf("got %q", lit.String())
	}
}

func TestInvalidAssignmentTargetErrors(t *testing.T) {
	toks, _ := scanner.Scan(`1 = 2;`)
	_, err := Parse(toks)
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSynchronizeRecoversAndReportsMultipleErrors(t *testing.T) {
	// Two statements are malformed (each lacks an expression before its
	// ';'); the parser must resynchronize after the first and still
	// report the second.
	toks, _ := scanner.Scan(`var x = ; var y = 2; print ; print y;`)
	_, err := Parse(toks)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	el, ok := err.(ErrorList)
	if !ok {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	if len(el) != 2 {
		t.Fatalf("expected 2 collected errors, got %d: %v", len(el), el)
	}
}

func TestTooManyParametersErrors(t *testing.T) {
	params := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			params += ", "
		}
		params += "p" + string(rune('a'+i%26))
	}
	src := "fun f(" + params + ") { return 1; }"
	toks, err := scanner.Scan(src)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	_, err = Parse(toks)
	if err == nil {
		t.Fatal("expected a parse error for > 255 parameters")
	}
}

func TestAnonymousFunctionExpression(t *testing.T) {
	toks, _ := scanner.Scan(`var f = fun(x) { return x; };`)
	stmts, err := Parse(toks)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	vd := stmts[0].(*ast.VarStmt)
	if _, ok := vd.Initializer.(*ast.FunctionExpr); !ok {
		t.Fatalf("expected FunctionExpr initializer, got %T", vd.Initializer)
	}
}
