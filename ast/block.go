package ast

import "bytes"

// Block is an ordered statement sequence plus a jump table mapping label
// text to a position in the sequence. The whole program is one Block;
// every compound statement owns its own nested Blocks, and each Block's
// label namespace is its own.
type Block struct {
	Statements []Statement
	JumpTable  map[string]int
}

// NewBlock creates an empty block
func NewBlock() *Block {
	return &Block{JumpTable: map[string]int{}}
}

// Add appends a statement and, when the line carried a label, registers
// it at the statement's position. The first definition of a label wins;
// later duplicates are silently ignored.
func (b *Block) Add(stmt Statement, label string) {
	b.Statements = append(b.Statements, stmt)

	if label == "" {
		return
	}
	if _, ok := b.JumpTable[label]; !ok {
		b.JumpTable[label] = len(b.Statements) - 1
	}
}

// Label looks up a label's statement position
func (b *Block) Label(name string) (int, bool) {
	pos, ok := b.JumpTable[name]
	return pos, ok
}

func (b *Block) String() string {
	var out bytes.Buffer

	for _, stmt := range b.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}

	return out.String()
}
