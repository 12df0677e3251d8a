// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package pilcheck_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	. "github.com/wdamron/pilcheck"
	. "github.com/wdamron/pilcheck/construct"

	"github.com/wdamron/pilcheck/ast"
	"github.com/wdamron/pilcheck/types"
)

// Check a program and compare the bounds and types of the named symbols.
func typeCheck(t *testing.T, p *Program, expected [][3]string) *Analyzed {
	t.Helper()
	analyzed, err := Check(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range expected {
		name, bounds, ty := e[0], e[1], e[2]
		ts, err := analyzed.TypeOfSymbol(name)
		if err != nil {
			t.Fatal(err)
		}
		if ts.VarsString() != bounds || types.TypeString(ts.Type) != ty {
			t.Fatalf("Failure for symbol %s: expected <%s> %s, got %s", name, bounds, ty, ts)
		}
		t.Logf("%s", types.FormatSchemeAroundName(name, ts))
	}
	return analyzed
}

// Check a program which must fail with an error containing msg.
func expectError(t *testing.T, p *Program, msg string) error {
	t.Helper()
	_, err := Check(p)
	if err == nil {
		t.Fatalf("expected error containing %q", msg)
	}
	if !strings.Contains(err.Error(), msg) {
		t.Fatalf("expected error containing %q, got:\n%s", msg, err.Error())
	}
	t.Logf("error: %s", err.Error())
	return err
}

func symbols(syms ...*ast.Symbol) *Program { return &Program{Symbols: syms} }

func sub1(name string) ast.Expr { return Bin(Local(name), ast.Sub, Num(1)) }

func TestUseFunctionInExprContext(t *testing.T) {
	p := symbols(
		Let("N.id", Lambda1("i", Local("i"))),
		Witness("N.w", ""),
	)
	p.Identities = append(p.Identities, Poly(Bin(Ref("N.w"), ast.Sub, Ref("N.id"))))
	err := expectError(t, p, "Error checking sub-expression N.id:\nExpected type: expr\n")
	var idErr *IdentityError
	if !errors.As(err, &idErr) || idErr.Identity != "N.w - N.id" {
		t.Fatalf("expected identity error for N.w - N.id, got %#v", err)
	}
}

func TestSingleLiteral(t *testing.T) {
	p := symbols(LetTyped("x", Scheme("T: FromLiteral", "T[]"), Array(Num(1), Num(2))))
	typeCheck(t, p, [][3]string{{"x", "T: FromLiteral", "T[]"}})
}

func TestGenericCalls(t *testing.T) {
	p := symbols(
		LetTyped("x", Scheme("", "int"), Call(Ref("std::array::len"), Array(Num(1)))),
		LetTyped("swap", Scheme("A, B", "A, B -> (B, A)"),
			Lambda([]string{"a", "b"}, Tuple(Local("b"), Local("a")))),
		Let("z", Call(Ref("swap"), Str("s"), Ref("x"))),
	)
	typeCheck(t, p, [][3]string{
		{"x", "", "int"},
		{"swap", "A, B", "A, B -> (B, A)"},
		{"z", "", "(int, string)"},
	})
}

func TestAssignment(t *testing.T) {
	p := symbols(
		Let("x", Array(Lambda1("i", Local("i")))),
		LetTyped("y", Scheme("", "int[]"), Array(Call(Index(Ref("x"), Num(0)), Num(2)))),
	)
	typeCheck(t, p, [][3]string{{"x", "", "(int -> int)[]"}, {"y", "", "int[]"}})
}

func higherOrder(xBounds string) *Program {
	return symbols(
		LetTyped("x", Scheme(xBounds, "T -> ((T -> T) -> T)"),
			Lambda1("i", Lambda1("f", Bin(Local("i"), ast.Add, Call(Local("f"), Local("i")))))),
		LetTyped("y", Scheme("T: Add + FromLiteral", "T"),
			Call(Call(Ref("x"), Num(2)), Lambda1("k", Bin(Local("k"), ast.Add, Num(8))))),
	)
}

func TestHigherOrderTooSpecific(t *testing.T) {
	err := expectError(t, higherOrder("T: Add + FromLiteral"), "Inferred: let<T: Add> x:")
	var mismatch *SchemeMismatchError
	if !errors.As(err, &mismatch) || mismatch.Name != "x" {
		t.Fatalf("expected scheme mismatch for x, got %#v", err)
	}
	if s := mismatch.Declared.String(); s != "<T: Add + FromLiteral> T -> ((T -> T) -> T)" {
		t.Fatalf("declared: %s", s)
	}
}

func TestHigherOrder(t *testing.T) {
	typeCheck(t, higherOrder("T: Add"), [][3]string{
		{"x", "T: Add", "T -> ((T -> T) -> T)"},
		{"y", "T: Add + FromLiteral", "T"},
	})
}

func TestInvalidRecursive(t *testing.T) {
	p := symbols(Let("x", Lambda1("i", Lambda1("f", Call(Ref("x"), Local("i"))))))
	err := expectError(t, p, "Cannot unify types")
	var symErr *SymbolError
	if !errors.As(err, &symErr) || symErr.Name != "x" {
		t.Fatalf("expected symbol error for x, got %#v", err)
	}
}

func foldSymbol() *ast.Symbol {
	length, f, initial, folder := Local("length"), Local("f"), Local("initial"), Local("folder")
	return LetTyped("fold", Scheme("T1, T2", "int, (int -> T1), T2, (T2, T1 -> T2) -> T2"),
		Lambda([]string{"length", "f", "initial", "folder"},
			If(Bin(length, ast.LessEqual, Num(0)),
				initial,
				Call(folder,
					Call(Ref("fold"), sub1("length"), f, initial, folder),
					Call(f, sub1("length"))))))
}

func TestFold(t *testing.T) {
	typeCheck(t, symbols(foldSymbol()), [][3]string{
		{"fold", "T1, T2", "int, (int -> T1), T2, (T2, T1 -> T2) -> T2"},
	})
}

func TestSum(t *testing.T) {
	p := symbols(Let("sum", Lambda([]string{"a", "b"}, Bin(Local("a"), ast.Add, Local("b")))))
	err := expectError(t, p, "Inferred type scheme: <T: Add> sum: T, T -> T")
	var concrete *ConcreteSymbolError
	if !errors.As(err, &concrete) || concrete.Name != "sum" {
		t.Fatalf("expected concrete symbol error for sum, got %#v", err)
	}
}

func TestSumViaFold(t *testing.T) {
	p := symbols(
		foldSymbol(),
		LetTyped("sum", Scheme("T: Add + FromLiteral", "int, (int -> T) -> T"),
			Lambda([]string{"n", "f"},
				Call(Ref("fold"), Local("n"), Local("f"), Num(0),
					Lambda([]string{"a", "b"}, Bin(Local("a"), ast.Add, Local("b")))))),
	)
	typeCheck(t, p, [][3]string{{"sum", "T: Add + FromLiteral", "int, (int -> T) -> T"}})
}

func TestPow(t *testing.T) {
	p := symbols(
		LetTyped("pow", Scheme("T: Pow", "T, int -> T"),
			Lambda([]string{"a", "b"}, Bin(Local("a"), ast.Pow, Local("b")))),
		LetTyped("x", Scheme("T: FromLiteral + Pow", "T"), Call(Ref("pow"), Num(2), Num(3))),
	)
	typeCheck(t, p, [][3]string{
		{"pow", "T: Pow", "T, int -> T"},
		{"x", "T: FromLiteral + Pow", "T"},
	})
}

func TestGenericFixesConcrete(t *testing.T) {
	p := symbols(
		Let("x", Lambda(nil, Num(8))),
		LetTyped("y", Scheme("T", "T -> int"), Lambda1("k", Call(Ref("x")))),
	)
	expectError(t, p, "Could not derive a concrete")
}

func TestGenericNeedsConcrete(t *testing.T) {
	p := symbols(
		Let("x", Lambda(nil, Num(8))),
		LetTyped("y", Scheme("T", "T -> int"), Lambda1("k", Call(Ref("x")))),
		LetTyped("t", Scheme("", "int"), Call(Ref("x"))),
	)
	typeCheck(t, p, [][3]string{{"x", "", "-> int"}, {"y", "T", "T -> int"}})
}

func TestIfStatement(t *testing.T) {
	p := symbols(
		Let("g", Lambda(nil, Call(Ref("g")))),
		Let("x", Lambda([]string{"a", "b"},
			If(Call(Ref("g")), Local("a"), Bin(Local("b"), ast.Add, Num(2))))),
		LetTyped("c", Scheme("", "int"), Num(2)),
		Let("y", Array(Lambda1("i", Call(Ref("x"), Ref("c"), Local("i"))))),
	)
	typeCheck(t, p, [][3]string{
		{"g", "", "-> bool"},
		{"x", "", "int, int -> int"},
		{"c", "", "int"},
		{"y", "", "(int -> int)[]"},
	})
}

func TestConstraints(t *testing.T) {
	p := symbols(
		Witness("a", ""),
		LetColumn("BYTE", Lambda1("i",
			Call(Ref("std::convert::fe"), Bin(Local("i"), ast.BinaryAnd, NumString("0xff"))))),
		// overridden by the builtin
		Let("std::convert::fe", Num(18)),
	)
	p.Identities = append(p.Identities, Plookup(Exprs(Bin(Ref("a"), ast.Add, Num(1))), Exprs(Ref("BYTE"))))
	typeCheck(t, p, [][3]string{{"a", "", "col"}, {"BYTE", "", "col"}})
}

func TestBottom(t *testing.T) {
	p := symbols(
		LetTyped("std::check::panic", Scheme("", "string -> !"), Call(Ref("std::check::panic"))),
		LetTyped("std::check::div", Scheme("", "int, int -> int"),
			Lambda([]string{"x", "y"},
				If(Bin(Local("y"), ast.Equal, Num(0)),
					Call(Ref("std::check::panic"), Str("Division by zero")),
					Bin(Local("x"), ast.Div, Local("y"))))),
	)
	typeCheck(t, p, [][3]string{{"std::check::div", "", "int, int -> int"}})
}

func TestLambda(t *testing.T) {
	n, a, f := Local("n"), Local("a"), Local("f")
	p := symbols(
		Witness("x", "col[3]"),
		Witness("y", "col"),
		LetTyped("set_equal", Scheme("", "expr, expr -> constr"),
			Lambda([]string{"a", "b"}, Bin(Local("a"), ast.IdentityOp, Local("b")))),
		LetTyped("array_map", Scheme("T1, T2", "int, T1[], (T1 -> T2) -> T2[]"),
			Lambda([]string{"n", "a", "f"},
				If(Bin(n, ast.Equal, Num(0)),
					Array(),
					Bin(Call(Ref("array_map"), sub1("n"), a, f), ast.Add, Array(Call(f, Index(a, sub1("n")))))))),
	)
	p.Statements = append(p.Statements,
		Call(Ref("array_map"), Num(3), Ref("x"), Lambda1("i", Call(Ref("set_equal"), Local("i"), Ref("y")))))
	analyzed := typeCheck(t, p, [][3]string{{"array_map", "T1, T2", "int, T1[], (T1 -> T2) -> T2[]"}})

	ref := analyzed.Program.Statements[0].(*ast.FunctionCall).Function.(*ast.Reference)
	if diff := cmp.Diff([]string{"expr", "constr"}, typeStrings(ref.TypeArgs)); diff != "" {
		t.Fatalf("type arguments of array_map (-want +got):\n%s", diff)
	}
}

func TestNonConcreteInnerType(t *testing.T) {
	p := symbols(LetTyped("x", Scheme("", "int"), Call(Lambda1("i", Num(7)), Num(3))))
	err := expectError(t, p, "Unable to derive concrete type for literal 3")
	var nc *NonConcreteError
	if !errors.As(err, &nc) {
		t.Fatalf("expected NonConcreteError, got %#v", err)
	}
}

func TestNonConcreteInnerTypeArray(t *testing.T) {
	p := symbols(
		LetTyped("x", Scheme("", "int"), Call(Ref("std::array::len"), Array())),
		Let("std::array::len", Num(99)),
	)
	expectError(t, p, "Unable to derive concrete type for reference to generic symbol std::array::len")
}

func TestTypeCheckArrays(t *testing.T) {
	bn := func(a, b int64) ast.Expr { return Call(Ref("X.bn"), Num(a), Num(b)) }
	p := symbols(
		LetTyped("X.bn", Scheme("T: FromLiteral + Mul + Add", "T, T -> T"),
			Lambda([]string{"a", "b"},
				Bin(Bin(Local("a"), ast.Mul, NumString("0x100000000")), ast.Add, Local("b")))),
		FixedArray("X.x", Repeated(bn(1, 2), bn(3, 4))),
		LetTyped("X.t", Scheme("", "int"), bn(5, 6)),
	)
	analyzed := typeCheck(t, p, [][3]string{
		{"X.bn", "T: Add + FromLiteral + Mul", "T, T -> T"},
		{"X.x", "", "col"},
	})

	// literals of the fixed column are field elements
	call := analyzed.Program.Symbols[1].Value.(*ast.Array).Elements[0].Pattern[0].(*ast.FunctionCall)
	if got := typeStrings([]types.Type{call.Args[0].(*ast.Number).Type}); got[0] != "fe" {
		t.Fatalf("expected literal of type fe, got %s", got[0])
	}
	if got := typeStrings(call.Function.(*ast.Reference).TypeArgs); len(got) != 1 || got[0] != "fe" {
		t.Fatalf("expected type arguments [fe], got %v", got)
	}
}

func TestErrorForColumnType(t *testing.T) {
	p := symbols(LetColumn("x", Lambda1("i", Tuple(Local("i"), Str("abc")))))
	_, err := Check(p)
	if err == nil {
		t.Fatalf("expected column type error")
	}
	expected := "Error type checking the symbol x = (|i| (i, \"abc\")):\n" +
		"Expected either int -> int or int -> fe, but got: int -> (int, string).\n" +
		"Cannot unify types (int, string) and fe"
	if err.Error() != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, err.Error())
	}
}

func TestColumnArrayIsArray(t *testing.T) {
	p := symbols(
		Let("std::array::len", Array()),
		Witness("main.x1", "col[16]"),
		Witness("main.x2", "col[16]"),
		LetTyped("main.t", Scheme("", "int"), Call(Ref("std::array::len"), Ref("main.x1"))),
		LetTyped("main.r", Scheme("", "int"), Call(Ref("std::array::len"), Ref("main.x2"))),
	)
	analyzed := typeCheck(t, p, [][3]string{{"main.x1", "", "col[16]"}})
	ref := analyzed.Program.Symbols[3].Value.(*ast.Expression).Expr.(*ast.FunctionCall).Function.(*ast.Reference)
	if got := typeStrings(ref.TypeArgs); len(got) != 1 || got[0] != "expr" {
		t.Fatalf("expected type arguments [expr], got %v", got)
	}
}

var enumX = Enum("X",
	Variant("A"),
	VariantFields("B", T("int")),
	VariantFields("C", T("string[]"), T("int")),
)

func TestEnumSimple(t *testing.T) {
	p := symbols(LetTyped("v", Scheme("", "X -> (X, int)"), Lambda1("x", Tuple(Local("x"), Num(2)))))
	p.Enums = append(p.Enums, enumX)
	typeCheck(t, p, [][3]string{{"v", "", "X -> (X, int)"}})
}

func TestEnumConstructor(t *testing.T) {
	p := symbols(LetTyped("v", Scheme("", "int -> X"), Lambda1("i",
		Match(Local("i"),
			Arm(PNum(0), Ref("X::A")),
			Arm(PNum(1), Call(Ref("X::B"), Num(7))),
			Arm(PNum(2), Call(Ref("X::C"), Array(Str("abc")), Num(9))),
			Arm(PCatchAll(), Ref("X::A")),
		))))
	p.Enums = append(p.Enums, enumX)
	analyzed := typeCheck(t, p, [][3]string{{"v", "", "int -> X"}})

	arm := analyzed.Program.Symbols[0].Value.(*ast.Expression).Expr.(*ast.Lambda).Body.(*ast.Match).Arms[1]
	if got := types.TypeString(arm.Pattern.(*ast.NumberPattern).Type); got != "int" {
		t.Fatalf("expected pattern of type int, got %s", got)
	}
}

func TestEnumConstructorIsFunction(t *testing.T) {
	p := symbols(
		Let("a", Lambda(nil, Ref("X::A"))),
		Let("b", Lambda(nil, Ref("X::B"))),
		Let("c", Lambda(nil, Ref("X::C"))),
	)
	p.Enums = append(p.Enums, enumX)
	typeCheck(t, p, [][3]string{
		{"a", "", "-> X"},
		{"b", "", "-> (int -> X)"},
		{"c", "", "-> (string[], int -> X)"},
	})
}

func TestEnumIsNotConstructor(t *testing.T) {
	p := symbols(LetTyped("v", Scheme("", "int -> X"), Lambda1("i", Ref("X"))))
	p.Enums = append(p.Enums, enumX)
	err := expectError(t, p, "Expected value but got type: X")
	var ve *ValueExpectedError
	if !errors.As(err, &ve) || ve.Name != "X" {
		t.Fatalf("expected ValueExpectedError, got %#v", err)
	}
}

func TestEnumPatterns(t *testing.T) {
	p := symbols(LetTyped("f", Scheme("", "X -> int"), Lambda1("x",
		Match(Local("x"),
			Arm(PEnumFields("X::B", PVar("n")), Local("n")),
			Arm(PEnumFields("X::C", PArray(PStr("a"), PCatchAll()), PVar("m")), Local("m")),
			Arm(PEnum("X::A"), Num(0)),
		))))
	p.Enums = append(p.Enums, enumX)
	typeCheck(t, p, [][3]string{{"f", "", "X -> int"}})

	p = symbols(LetTyped("f", Scheme("", "X -> int"), Lambda1("x",
		Match(Local("x"), Arm(PEnumFields("X::B", PVar("n"), PVar("k")), Local("n"))))))
	p.Enums = append(p.Enums, enumX)
	expectError(t, p, "has 2 fields, but variant X::B has 1")
}

func TestTuplePatternInLambda(t *testing.T) {
	p := symbols(
		LetTyped("swap", Scheme("T1, T2", "(T1, T2) -> (T2, T1)"),
			LambdaP([]ast.Pattern{PTuple(PVar("a"), PVar("b"))}, Tuple(Local("b"), Local("a")))),
		LetTyped("s", Scheme("", "(string, int)"), Call(Ref("swap"), Tuple(Num(1), Str("x")))),
	)
	typeCheck(t, p, [][3]string{
		{"swap", "T1, T2", "(T1, T2) -> (T2, T1)"},
		{"s", "", "(string, int)"},
	})
}

func TestQueryAndIntermediate(t *testing.T) {
	p := symbols(
		Witness("w", ""),
		Query("q", Lambda1("i", Call(Ref("std::prover::Query::Hint"), Num(1)))),
		Intermediate("w2", Bin(Ref("w"), ast.Mul, Ref("w"))),
		Fixed("even", Lambda1("i", Bin(Local("i"), ast.Mul, Num(2)))),
	)
	p.Identities = append(p.Identities, Poly(Bin(Unary(ast.Next, Ref("w")), ast.Sub, Ref("w2"))))
	typeCheck(t, p, [][3]string{{"q", "", "col"}, {"w2", "", "col"}, {"even", "", "col"}})

	p = symbols(Query("q", Lambda1("i", Num(1))))
	expectError(t, p, "Expected type: int -> std::prover::Query")
}

func TestCapabilityError(t *testing.T) {
	p := symbols(LetTyped("s", Scheme("", "string"), Bin(Str("a"), ast.Mul, Str("b"))))
	err := expectError(t, p, "Type string does not satisfy the bounds Mul")
	var capErr *CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CapabilityError, got %#v", err)
	}
}

func TestArityError(t *testing.T) {
	p := symbols(LetTyped("x", Scheme("", "int"), Call(Ref("std::array::len"), Array(), Array())))
	err := expectError(t, p, "expected 2 arguments, got 1")
	var arity *ArityError
	if !errors.As(err, &arity) {
		t.Fatalf("expected ArityError, got %#v", err)
	}
}

func TestMultipleConcreteSymbolErrors(t *testing.T) {
	p := symbols(
		Let("id", Lambda1("i", Local("i"))),
		Let("zero", Lambda(nil, Num(0))),
	)
	_, err := Check(p)
	if err == nil {
		t.Fatalf("expected errors")
	}
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), err)
	}
	if !strings.Contains(errs[0].Error(), "<T> id: T -> T") {
		t.Fatalf("unexpected error: %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "<T: FromLiteral> zero: -> T") {
		t.Fatalf("unexpected error: %v", errs[1])
	}
}

func TestUsageErrors(t *testing.T) {
	expectError(t, symbols(Let("x", Num(1)), Let("x", Num(2))), "Duplicate symbol x")
	expectError(t, symbols(LetTyped("x", Scheme("", "int"), Ref("y"))), "Unknown symbol y")
	expectError(t, symbols(LetTyped("x", Scheme("", "int"), Local("y"))), "Unknown local variable y")
	expectError(t, symbols(LetTyped("x", Scheme("", "Y"), nil)), "Unknown enum Y")

	analyzed, err := Check(symbols(LetTyped("x", Scheme("", "int"), Num(1))))
	if err != nil {
		t.Fatal(err)
	}
	_, err = analyzed.TypeOfSymbol("nope")
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected UsageError, got %#v", err)
	}
	if diff := cmp.Diff([]string{"x"}, analyzed.SymbolNames()); diff != "" {
		t.Fatalf("symbol names (-want +got):\n%s", diff)
	}
	if ts, err := analyzed.TypeOfSymbol("std::array::len"); err != nil || ts.String() != "<T> T[] -> int" {
		t.Fatalf("builtin std::array::len: %v %v", ts, err)
	}
}

func TestDefaultLiteralType(t *testing.T) {
	p := func() *Program { return symbols(Let("x", Num(3)), Let("y", Bin(Num(1), ast.Add, Num(2)))) }
	expectError(t, p(), "Could not derive a concrete type for symbol x")

	c := NewChecker()
	c.SetDefaultLiteralType(types.Int)
	analyzed, err := c.Check(p())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"x", "y"} {
		ts, _ := analyzed.TypeOfSymbol(name)
		if types.TypeString(ts.Type) != "int" {
			t.Fatalf("%s: expected int, got %s", name, ts)
		}
	}
}

func TestCheckerReuseIsDeterministic(t *testing.T) {
	c := NewChecker()
	var first []string
	for i := 0; i < 3; i++ {
		p := symbols(
			foldSymbol(),
			Let("g", Lambda(nil, Call(Ref("g")))),
			Let("x", Lambda([]string{"a", "b"}, If(Call(Ref("g")), Local("a"), Bin(Local("b"), ast.Add, Num(2))))),
			LetTyped("t", Scheme("", "int"), Call(Ref("x"), Num(1), Num(2))),
		)
		analyzed, err := c.Check(p)
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, name := range analyzed.SymbolNames() {
			ts, _ := analyzed.TypeOfSymbol(name)
			got = append(got, types.FormatSchemeAroundName(name, ts))
		}
		if first == nil {
			first = got
			continue
		}
		if diff := cmp.Diff(first, got); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	c := NewChecker()
	c.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if _, err := c.Check(symbols(foldSymbol(), Let("x", Bin(Num(1), ast.Add, Call(Ref("std::field::modulus")))))); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "checked symbol") || !strings.Contains(out, "type=int") {
		t.Fatalf("missing symbol record:\n%s", out)
	}
	if !strings.Contains(out, "checked generic symbol") || !strings.Contains(out, "name=fold") {
		t.Fatalf("missing generic symbol record:\n%s", out)
	}
}

func typeStrings(ts []types.Type) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = types.TypeString(t)
	}
	return out
}
