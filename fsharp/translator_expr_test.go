package fsharp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslateExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = a + b * c;", "x <- a + b * c"},
		{"ok = a == b && c != d;", "ok <- a = b && c <> d"},
		{"ok = a < b || a >= c;", "ok <- a < b || a >= c"},
		{"x = (a & b) | (c ^ d) << 2;", "x <- (a &&& b) ||| (c ^^^ d) <<< 2"},
		{"x = y >> 1;", "x <- y >>> 1"},
		{"x = a % b / c;", "x <- a % b / c"},
		{"flag = !done;", "flag <- not done"},
		{"flag = !(a && b);", "flag <- not (a && b)"},
		{"mask = ~bits;", "mask <- ~~~bits"},
		{"n = -n;", "n <- -n"},
		{"n = a - -b;", "n <- a - -b"},
		{"arr[i] = values[j + 1];", "arr.[i] <- values.[j + 1]"},
		{"grid[x][y] = 0;", "grid.[x].[y] <- 0"},
		{"s = obj.Method(a, b).Field;", "s <- obj.Method(a, b).Field"},
		{"Run();", "Run()"},
		{"this.count = this.count + 1;", "this.count <- this.count + 1"},
		{`s = "a\"b";`, `s <- "a\"b"`},
		{"c = 'x';", "c <- 'x'"},
		{"d = 1.5;", "d <- 1.5"},
		{"ok = true;", "ok <- true"},
		{"o = null;", "o <- null"},
		{"list = new List<int>();", "list <- new List<int>()"},
		{"p = new Point(1, 2);", "p <- new Point(1, 2)"},
		{"new Worker(queue).Start();", "new Worker(queue).Start()"},
		{"xs = new int[] { 1, 2, 3 };", "xs <- [| 1; 2; 3 |]"},
		{"xs = new int[] { 1, 2, };", "xs <- [| 1; 2 |]"},
		{"xs = new string[] { };", "xs <- [||]"},
		{"xs = new int[] { f(a, b), -1 };", "xs <- [| f(a, b); -1 |]"},
		{"buf = new byte[n * 2];", "buf <- Array.zeroCreate<byte> (n * 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			require.Equal(t, methodOutput(tt.want), translate(t, inMethod(tt.src)))
		})
	}
}

func TestTranslateDelegate(t *testing.T) {
	out := translate(t, inMethod("items.ForEach(delegate (int x) { Console.WriteLine(x); });"))
	require.Equal(t, methodOutput(
		"items.ForEach((fun (x : int) ->",
		"    Console.WriteLine(x)",
		"))",
	), out)

	out = translate(t, inMethod("Run(delegate () { });"))
	require.Equal(t, methodOutput(
		"Run((fun () ->",
		"    ()",
		"))",
	), out)

	out = translate(t, inMethod("Apply(delegate (string s, double d) { return s; });"))
	require.Equal(t, methodOutput(
		"Apply((fun (s : string) (d : float) ->",
		"    s",
		"))",
	), out)
}

func TestTranslateExpressionErrors(t *testing.T) {
	tests := []struct {
		src     string
		message string
	}{
		{"x++;", "'++' not supported"},
		{"x--;", "'--' not supported"},
		{"x += 1;", "'+=' not supported"},
		{"x <<= 1;", "'<<=' not supported"},
		{"y = x ?? 0;", "'??' not supported"},
		{"y = a ? b : c;", "'?' not supported"},
		{"f = x => x;", "'=>' not supported"},
		{"x = ;", "expected expression"},
		{"f(a, );", "expected expression"},
		{"x = [1];", "unexpected '['"},
		{"f(a;", "unexpected ';'"},
		{"x = if;", "unexpected 'if'"},
		{"p = new Point { X = 1 };", "object initializer not supported"},
		{"p = new Point;", "expected '(' or '[' after 'new Point'"},
		{"xs = new int[] { 1, , 2 };", "empty array element"},
		{"Run(delegate { });", "expected '('"},
		{"x = a b;", "expected operator"},
		{"x = f() 1;", "expected operator"},
		{"x = a !b;", "unexpected '!'"},
		{"x = a[];", "expected index"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			err := translateErr(t, inMethod(tt.src))
			require.Equal(t, tt.message, err.Message)
		})
	}
}
