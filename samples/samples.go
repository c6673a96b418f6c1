// Package samples holds the C# source shipped with the binary for demos and
// the playground.
package samples

import _ "embed"

//go:embed Sample.cs
var sample string

// Sample returns the bundled example program.
func Sample() string {
	return sample
}
