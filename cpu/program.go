package cpu

// Statement is one assembled source line: its line number, program
// address, tokenized words, and encoded instruction word.
type Statement struct {
	LineNo    int
	Addr      int
	Words     []string
	Word      uint8
	LinkLabel string // Unresolved label operand, cleared by linking.
}

// Program is an assembled listing.
type Program struct {
	Statements []Statement
}

// Words returns the encoded instruction words, in address order, ready
// for CPU.LoadProgram.
func (prog *Program) Words() (words []uint8) {
	words = make([]uint8, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		words = append(words, stmt.Word)
	}

	return
}

// Debug finds the statement assembled at a program address, for
// diagnostics. Returns nil when no statement maps there.
func (prog *Program) Debug(addr uint8) (stmt *Statement) {
	for n := range prog.Statements {
		if prog.Statements[n].Addr == int(addr) {
			stmt = &prog.Statements[n]
			break
		}
	}

	return
}
