// Package mocks holds test doubles shared across packages.
package mocks

import (
	"io"
	"strings"
)

// MockTerm is a scripted console: it captures everything written and
// hands out pre-loaded input lines one at a time.
type MockTerm struct {
	Input []string // lines returned by successive ReadLine calls

	out   strings.Builder
	reads int
}

// Print captures output without a newline
func (mt *MockTerm) Print(s string) {
	mt.out.WriteString(s)
}

// Println captures one output line
func (mt *MockTerm) Println(s string) {
	mt.out.WriteString(s)
	mt.out.WriteString("\n")
}

// ReadLine returns the next scripted input line, io.EOF when none remain
func (mt *MockTerm) ReadLine() (string, error) {
	if mt.reads >= len(mt.Input) {
		return "", io.EOF
	}

	line := mt.Input[mt.reads]
	mt.reads++
	return line, nil
}

// Output returns everything written so far
func (mt *MockTerm) Output() string {
	return mt.out.String()
}
