package parser

import "sort"

var operators = []string{
	".", "(", ")", "[", "]", "++", "--", "->",
	"+", "-", "!", "~", "&", "*", "/", "%",
	"<<", ">>", "<", ">", "<=", ">=", "==", "!=",
	"^", "|", "&&", "||", "??", "?:", "=", "+=",
	"-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=",
	">>=", "=>", "?", ":",
}

// operatorTable maps a first character to the operators starting with it,
// longest first, ties broken lexicographically. Built once, never mutated.
var operatorTable = buildOperatorTable(operators)

func buildOperatorTable(ops []string) map[rune][]string {
	table := make(map[rune][]string)
	for _, op := range ops {
		first := []rune(op)[0]
		table[first] = append(table[first], op)
	}
	for _, group := range table {
		sort.Slice(group, func(i, j int) bool {
			if len(group[i]) != len(group[j]) {
				return len(group[i]) > len(group[j])
			}
			return group[i] < group[j]
		})
	}
	return table
}

// Operators returns the closed set of operators recognised by the lexer.
func Operators() []string {
	out := make([]string, len(operators))
	copy(out, operators)
	return out
}

// matchOperator returns the longest operator that is a prefix of src.
func matchOperator(src []rune) string {
	if len(src) == 0 {
		return ""
	}
	for _, op := range operatorTable[src[0]] {
		rs := []rune(op)
		if len(rs) > len(src) {
			continue
		}
		if string(src[:len(rs)]) == op {
			return op
		}
	}
	return ""
}
