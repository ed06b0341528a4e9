// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":       "0",
	"MEMORY_SIZE":  fmt.Sprintf("%v", MEMORY_SIZE),
	"PROGRAM_SIZE": fmt.Sprintf("%v", PROGRAM_SIZE),
}

// mnemonicMap maps mnemonic text to opcodes. Mnemonics are matched
// case-insensitively.
var mnemonicMap = map[string]Opcode{
	"NOP":   OP_NOP,
	"LOAD":  OP_LOAD,
	"STORE": OP_STORE,
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"AND":   OP_AND,
	"OR":    OP_OR,
	"XOR":   OP_XOR,
	"JUMP":  OP_JUMP,
	"JZ":    OP_JZ,
	"HALT":  OP_HALT,
}

// Assembler translates mnemonic text to encoded instruction words.
// One instruction per line: `MNEMONIC [OPERAND]`, operand in hex (0x0-0xF)
// or decimal (0-15), `;` starts a comment. Labels (`name:`), `.equ`
// equates, and `$(...)` compile-time expressions are also accepted.
// Assembly stops at the first error.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Label   map[string]int    // Map of jump labels to program addresses.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate before
// the next Assemble.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, nerr := strconv.ParseInt(str, 0, 64)
		if nerr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(v64))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// valueOf parses a numeric operand and enforces the 4-bit range.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, nerr := strconv.ParseInt(word, 0, 16)
	if nerr != nil {
		err = ErrParseNumber(word)
		return
	}
	if v64 < 0 || v64 > int64(NIBBLE_MASK) {
		err = ErrOperandRange
		return
	}

	value = uint8(v64)
	return
}

// Assemble parses an input stream into an assembled Program.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	prog, err = asm.parse(input)
	if err == nil {
		err = asm.link(prog)
	}
	if err != nil {
		// No partial assembly.
		prog = nil
	}

	return
}

// parse runs the line scan, producing statements with unresolved label
// operands left for link.
func (asm *Assembler) parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

		// Strip comment, then do $() evaluations.
		line = strings.TrimSpace(strings.Split(text, ";")[0])
		line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
			value, _err := asm.parenEval(str[2 : len(str)-1])
			if _err != nil {
				err = _err
			}
			return fmt.Sprintf("%v", value)
		})
		if err != nil {
			return
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		// .equ CONST VALUE
		if words[0] == ".equ" {
			if len(words) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := asm.Equate[words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			asm.Equate[words[1]] = words[2]
			continue
		}

		// Equate substitution.
		for n, word := range words {
			equate, ok := asm.Equate[word]
			if ok {
				words[n] = equate
			}
		}

		// Label definitions.
		for strings.HasSuffix(words[0], ":") {
			label := words[0][:len(words[0])-1]
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = len(prog.Statements)

			words = words[1:]
			if len(words) == 0 {
				break
			}
		}
		if len(words) == 0 {
			continue
		}

		op, ok := mnemonicMap[strings.ToUpper(words[0])]
		if !ok {
			err = ErrUnknownMnemonic
			return
		}

		var operand uint8
		var link string
		if op.HasOperand() {
			if len(words) < 2 {
				err = ErrOperandMissing
				return
			}
			if len(words) > 2 {
				err = ErrOperandExtra
				return
			}

			operand, err = asm.valueOf(words[1])
			if err != nil {
				// A non-numeric operand may be a label reference,
				// resolved by link.
				if _, numeric := err.(ErrParseNumber); !numeric {
					return
				}
				err = nil
				link = words[1]
			}
		} else {
			if len(words) > 1 {
				err = ErrOperandExtra
				return
			}
		}

		prog.Statements = append(prog.Statements, Statement{
			LineNo:    lineno,
			Addr:      len(prog.Statements),
			Words:     words,
			Word:      Encode(op, operand),
			LinkLabel: link,
		})
	}

	err = scanner.Err()
	return
}

// link resolves label operands collected by parse.
func (asm *Assembler) link(prog *Program) (err error) {
	for n := range prog.Statements {
		stmt := &prog.Statements[n]
		if stmt.LinkLabel == "" {
			continue
		}

		addr, ok := asm.Label[stmt.LinkLabel]
		if !ok {
			err = &ErrSyntax{
				LineNo: stmt.LineNo,
				Line:   strings.Join(stmt.Words, " "),
				Err:    ErrLabelMissing(stmt.LinkLabel),
			}
			return
		}
		if addr > int(NIBBLE_MASK) {
			err = &ErrSyntax{
				LineNo: stmt.LineNo,
				Line:   strings.Join(stmt.Words, " "),
				Err:    ErrOperandRange,
			}
			return
		}

		op := Opcode(stmt.Word >> 4)
		stmt.Word = Encode(op, uint8(addr))
		stmt.LinkLabel = ""
	}

	return
}

// Disassemble maps an encoded instruction word back to its textual form,
// a left inverse of Assemble for every valid instruction.
func Disassemble(word uint8) (text string, err error) {
	op, operand, err := Decode(word)
	if err != nil {
		return
	}

	if op.HasOperand() {
		text = fmt.Sprintf("%v 0x%X", op, operand)
	} else {
		text = op.String()
	}

	return
}
