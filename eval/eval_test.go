package eval

import (
	"bytes"
	"testing"

	"github.com/Saliba-codes/GadySH/lexer"
	"github.com/Saliba-codes/GadySH/parser"
	"github.com/Saliba-codes/GadySH/value"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, and evaluates src against a fresh Evaluator (no
// stdlib loaded — these tests exercise core language semantics only) and
// returns its final value plus whatever print() wrote to stdout.
func run(t *testing.T, src string) (value.Value, string) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	prog, err := parser.Parse(toks)
	require.NoError(t, err)

	var out bytes.Buffer
	e := New(&out)
	result, err := e.Run(prog)
	require.NoError(t, err)
	return result, out.String()
}

func TestArithmeticPrecedence(t *testing.T) {
	v, _ := run(t, "2 + 3 * 4 - 1;")
	require.Equal(t, int64(13), v.(*value.Int).Value)
}

func TestParensOverridePrecedence(t *testing.T) {
	v, _ := run(t, "(2 + 3) * 4;")
	require.Equal(t, int64(20), v.(*value.Int).Value)
}

func TestDivisionAlwaysYieldsFloat(t *testing.T) {
	v, _ := run(t, "10 / 2;")
	f, ok := v.(*value.Float)
	require.True(t, ok, "division must yield Float even on exact division")
	require.Equal(t, 5.0, f.Value)
}

func TestModuloIsIntOnly(t *testing.T) {
	_, _, err := func() (value.Value, string, error) {
		toks, _ := lexer.Tokenize("5.0 % 2;")
		prog, _ := parser.Parse(toks)
		var out bytes.Buffer
		e := New(&out)
		v, err := e.Run(prog)
		return v, out.String(), err
	}()
	require.Error(t, err)
}

func TestDivisionByZeroErrors(t *testing.T) {
	toks, _ := lexer.Tokenize("1 / 0;")
	prog, _ := parser.Parse(toks)
	var out bytes.Buffer
	e := New(&out)
	_, err := e.Run(prog)
	require.Error(t, err)
}

func TestNumericEqualityLaw(t *testing.T) {
	v, _ := run(t, "1 == 1.0;")
	require.Equal(t, value.True, v)
}

func TestShortCircuitAndReturnsDecidingOperandUnchanged(t *testing.T) {
	v, _ := run(t, `null && true;`)
	require.Same(t, value.NullValue, v, "&& must return the falsy left operand itself, not coerce to Bool")
}

func TestShortCircuitOrReturnsDecidingOperandUnchanged(t *testing.T) {
	v, _ := run(t, `"hi" || false;`)
	require.Equal(t, "hi", v.(*value.String).Value)
}

func TestShortCircuitDoesNotEvaluateRight(t *testing.T) {
	// An undefined identifier on the right must never be touched once the
	// left operand already decides the result.
	v, _ := run(t, `true || undefinedThing;`)
	require.Equal(t, value.True, v)
}

func TestTruthinessLaw(t *testing.T) {
	v, _ := run(t, `if (0) { 1; } else { 2; }`)
	require.Equal(t, int64(1), v.(*value.Int).Value, "0 is truthy, only null and false are falsy")

	v, _ = run(t, `if ("") { 1; } else { 2; }`)
	require.Equal(t, int64(1), v.(*value.Int).Value, "empty string is truthy")

	v, _ = run(t, `if ([]) { 1; } else { 2; }`)
	require.Equal(t, int64(1), v.(*value.Int).Value, "empty list is truthy")
}

func TestEnvironmentLawShadowing(t *testing.T) {
	v, _ := run(t, `
		let x = 1;
		{
			let x = 2;
		}
		x;
	`)
	require.Equal(t, int64(1), v.(*value.Int).Value)
}

func TestClosureLawCapturesFrameByReference(t *testing.T) {
	v, _ := run(t, `
		let counter = 0;
		fn bump() { counter = counter + 1; return counter; }
		bump();
		bump();
		bump();
	`)
	require.Equal(t, int64(3), v.(*value.Int).Value)
}

func TestClosureCapturesEnclosingFunctionFrame(t *testing.T) {
	v, _ := run(t, `
		fn makeCounter() {
			let n = 0;
			fn inc() {
				n = n + 1;
				return n;
			}
			return inc;
		}
		let c = makeCounter();
		c();
		c();
	`)
	require.Equal(t, int64(2), v.(*value.Int).Value)
}

func TestGradualTypingAnnotatedMismatchErrors(t *testing.T) {
	toks, _ := lexer.Tokenize(`let x: Int = "oops";`)
	prog, _ := parser.Parse(toks)
	var out bytes.Buffer
	e := New(&out)
	_, err := e.Run(prog)
	require.Error(t, err)
	require.Contains(t, err.Error(), "TypeError")
	require.Contains(t, err.Error(), "Expected Int, got String")
}

func TestGradualTypingUnannotatedAllowsAnything(t *testing.T) {
	v, _ := run(t, `let x = 1; x = "now a string"; x;`)
	require.Equal(t, "now a string", v.(*value.String).Value)
}

func TestGradualTypingAnyDisablesEnforcement(t *testing.T) {
	v, _ := run(t, `let x: Any = 1; x = "fine"; x;`)
	require.Equal(t, "fine", v.(*value.String).Value)
}

func TestGradualTypingOnlyChecksBaseTag(t *testing.T) {
	v, _ := run(t, `let xs: List[Int] = [1, 2, 3]; xs;`)
	require.Equal(t, 3, len(v.(*value.List).Elements))
}

func TestMapCrossTypeKeysUnify(t *testing.T) {
	v, _ := run(t, `
		let m = {};
		m[1] = "int key";
		m[1.0] = "float key";
		m;
	`)
	m := v.(*value.Map)
	require.Equal(t, 1, m.Len())
	got, err := m.Get(value.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, "float key", got.(*value.String).Value)
}

func TestListOutOfRangeReadReturnsNull(t *testing.T) {
	v, _ := run(t, `let xs = [1, 2]; xs[5];`)
	require.Same(t, value.NullValue, v)
}

func TestListWritePastLengthByMoreThanOneErrors(t *testing.T) {
	toks, _ := lexer.Tokenize(`let xs = [1, 2]; xs[5] = 9;`)
	prog, _ := parser.Parse(toks)
	var out bytes.Buffer
	e := New(&out)
	_, err := e.Run(prog)
	require.Error(t, err)
}

func TestListWriteExactlyAtLengthAppends(t *testing.T) {
	v, _ := run(t, `let xs = [10, 20]; xs[2] = 30; xs;`)
	list := v.(*value.List)
	require.Equal(t, 3, len(list.Elements))
	require.Equal(t, int64(30), list.Elements[2].(*value.Int).Value)
	require.Equal(t, "[10, 20, 30]", list.Display())
}

func TestMapMissingKeyReadReturnsNullNotError(t *testing.T) {
	v, _ := run(t, `let m = {}; m["missing"];`)
	require.Same(t, value.NullValue, v)
}

func TestAliasingThroughListReference(t *testing.T) {
	v, _ := run(t, `
		let a = [1, 2, 3];
		let b = a;
		b[0] = 99;
		a[0];
	`)
	require.Equal(t, int64(99), v.(*value.Int).Value, "List must be a reference type shared across aliases")
}

func TestArityMismatchErrors(t *testing.T) {
	toks, _ := lexer.Tokenize(`fn add(a, b) { return a + b; } add(1);`)
	prog, _ := parser.Parse(toks)
	var out bytes.Buffer
	e := New(&out)
	_, err := e.Run(prog)
	require.Error(t, err)
}

func TestIntrinsicPrintWritesDisplayForm(t *testing.T) {
	_, out := run(t, `__intrinsic_print("hello");`)
	require.Equal(t, "\"hello\"\n", out)
}

func TestIntrinsicTypeof(t *testing.T) {
	v, _ := run(t, `__intrinsic_typeof(1);`)
	require.Equal(t, "Int", v.(*value.String).Value)
}

func TestIntrinsicLen(t *testing.T) {
	v, _ := run(t, `__intrinsic_len([1, 2, 3]);`)
	require.Equal(t, int64(3), v.(*value.Int).Value)
}

func TestUndefinedVariableErrors(t *testing.T) {
	toks, _ := lexer.Tokenize(`nope;`)
	prog, _ := parser.Parse(toks)
	var out bytes.Buffer
	e := New(&out)
	_, err := e.Run(prog)
	require.Error(t, err)
}

func TestRedeclarationInSameScopeErrors(t *testing.T) {
	toks, _ := lexer.Tokenize(`let x = 1; let x = 2;`)
	prog, _ := parser.Parse(toks)
	var out bytes.Buffer
	e := New(&out)
	_, err := e.Run(prog)
	require.Error(t, err)
}
