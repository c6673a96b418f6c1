// Package fsharp translates a restricted subset of C# into F# in one pass.
//
// The translator walks the significant tokens with a recursive descent and
// writes F# text as each construct is recognised; no syntax tree is built and
// no token is read twice. The supported subset is:
//
//	using A.B;                      open A.B
//	namespace N { ... }             namespace N
//	enum E { A, B = 4 }             type E = | A = 0 | B = 4
//	class C { ... }                 type C() = ...
//	int x;                          [<DefaultValue>] val mutable private x : int
//	int P { get; set; }             backing field _P plus member this.P
//	int M(int a) { ... }            member private this.M(a : int) : int = ...
//	C(int a) { ... }                private new(a : int) as this = C() then ...
//	if / else if / else             if ... then / elif ... then / else
//	while, foreach (var x in e)     while ... do, for x in e do
//	switch with case groups         match ... with | 1 | 2 -> ...
//	throw e; var x = e;             raise (e), let mutable x = e
//	new T[] { a, b }                [| a; b |]
//	delegate (int x) { ... }        (fun (x : int) -> ...)
//
// Anything else, including inheritance, field initialisers, increment and
// compound assignment, ?: and ??, and break or continue outside a switch
// section, fails with a *TranslationError. There is no recovery: the first
// error ends the translation.
package fsharp
