package cpu

import (
	"errors"

	"github.com/ezrec/nibblenet/translate"
)

var f = translate.From

var (
	// Memory and program errors
	ErrAddressRange = errors.New(f("address out of range"))
	ErrProgramSize  = errors.New(f("program too large"))

	// Execution errors
	ErrHalted     = errors.New(f("cpu halted"))
	ErrCycleLimit = errors.New(f("cycle limit exceeded"))

	// Assembler errors
	ErrUnknownMnemonic = errors.New(f("unknown mnemonic"))
	ErrOperandRange    = errors.New(f("operand out of range"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
)

// ErrIllegalInstruction reports an undecodable instruction word. It
// halts the CPU and surfaces as a terminal run result.
type ErrIllegalInstruction uint8

func (err ErrIllegalInstruction) Error() string {
	return f("illegal instruction 0x%02x", uint8(err))
}

func (err ErrIllegalInstruction) Is(other error) (ok bool) {
	_, ok = other.(ErrIllegalInstruction)
	return
}

// ErrAluOp reports an unknown ALU operation selector.
type ErrAluOp ALUOp

func (err ErrAluOp) Error() string {
	return f("unknown alu op %v", int(err))
}

func (err ErrAluOp) Is(other error) (ok bool) {
	_, ok = other.(ErrAluOp)
	return
}

// ErrLabelMissing reports a jump target label that was never defined.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

func (err ErrLabelMissing) Is(other error) (ok bool) {
	_, ok = other.(ErrLabelMissing)
	return
}

// ErrParseNumber reports an operand that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(other error) (ok bool) {
	_, ok = other.(ErrParseNumber)
	return
}

// ErrParseExpression reports an invalid $(...) expression.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(other error) (ok bool) {
	_, ok = other.(ErrParseExpression)
	return
}

// ErrSyntax tags an assembler error with its source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
