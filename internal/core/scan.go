package core

import (
	"bufio"
	"io"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 1 << 20

// NewLineScanner returns a line scanner over r whose buffer grows up to
// MaxLineBytes.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	return sc
}
