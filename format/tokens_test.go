package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/cs2fs/csharp/parser"
)

func tokenize(t *testing.T, src string) []parser.Token {
	t.Helper()
	tokens, err := parser.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", src, err)
	}
	return tokens
}

func TestSignificant(t *testing.T) {
	tokens := Significant(tokenize(t, "a = /* c */ 1; // end\n"))
	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Literal)
	}
	want := []string{"a", "=", "1", ";"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Significant() = %q, want %q", got, want)
	}
}

func TestLineTokenEncoder(t *testing.T) {
	var sb strings.Builder
	enc := NewLineTokenEncoder(&sb)
	if err := enc.Encode(tokenize(t, "x <<= 2;\n")); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "[1, 1] Identifier: x\n" +
		"[1, 2] Whitespace: 1\n" +
		"[1, 3] Operator: <<=\n" +
		"[1, 6] Whitespace: 1\n" +
		"[1, 7] Int: 2\n" +
		"[1, 8] Separator: ;\n" +
		`[1, 9] Newline: \n` + "\n"
	if got := sb.String(); got != want {
		t.Errorf("Encode() wrote\n%s\nwant\n%s", got, want)
	}
}

func TestJSONTokenEncoder(t *testing.T) {
	var sb strings.Builder
	enc := NewJSONTokenEncoder(&sb)
	if err := enc.Encode(Significant(tokenize(t, "namespace N\n{ }"))); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var got []jsonToken
	if err := json.Unmarshal([]byte(sb.String()), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, sb.String())
	}
	want := []jsonToken{
		{Kind: "Identifier", Text: "namespace", Line: 1, Column: 1},
		{Kind: "Identifier", Text: "N", Line: 1, Column: 11},
		{Kind: "BlockOpen", Text: "{", Line: 2, Column: 1},
		{Kind: "BlockClose", Text: "}", Line: 2, Column: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestJSONTokenEncoderEmpty(t *testing.T) {
	text, err := NewJSONTokenEncoder(nil).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(text) != "[]" {
		t.Errorf("MarshalText() = %q, want %q", text, "[]")
	}
}

func TestJSONTokenEncoderColorize(t *testing.T) {
	var sb strings.Builder
	enc := NewJSONTokenEncoder(&sb)
	enc.Colorize = true
	if err := enc.Encode(tokenize(t, "x")); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	for _, want := range []string{"Identifier", "column"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("Encode() = %q, want it to contain %q", sb.String(), want)
		}
	}
}
