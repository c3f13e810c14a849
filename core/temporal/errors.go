package temporal

import (
	"errors"
	"fmt"
)

// Sentinel errors for codec failures. Parse failures wrap one of these in
// a *SyntaxError carrying the offending input fragment.
var (
	// ErrEmptyInput indicates a zero-length input string.
	ErrEmptyInput = errors.New("empty input")
	// ErrMisplacedSign indicates a '-' anywhere but the first position.
	ErrMisplacedSign = errors.New("minus sign is only allowed at the start of the input")
	// ErrInvalidCharacter indicates a character that is neither digit, letter nor leading sign.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrMissingNumber indicates a unit token with no preceding digits.
	ErrMissingNumber = errors.New("missing number before unit")
	// ErrUnknownUnit indicates a unit symbol not present in the table.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrInvalidNumber indicates digits that do not fit the supported integer range.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMissingUnit indicates trailing characters left unconsumed at end of input.
	ErrMissingUnit = errors.New("missing unit")
	// ErrUnsupportedUnit indicates a configured unit the formatter has no
	// magnitude or carry entry for. This is a table misconfiguration, not
	// bad input.
	ErrUnsupportedUnit = errors.New("unsupported unit in format")
	// ErrDuplicateSymbol indicates a symbol registered twice in one table.
	ErrDuplicateSymbol = errors.New("symbol is already used")
	// ErrInvalidSymbol indicates a symbol containing non-letter characters.
	ErrInvalidSymbol = errors.New("symbol contains non-letter characters")
)

// SyntaxError reports a parse failure with the offending fragment of the
// input and its position.
type SyntaxError struct {
	Input    string // full input string
	Position int    // byte offset where the failure was detected
	Fragment string // offending substring or character, if any
	Err      error  // one of the sentinel errors above
}

func (e *SyntaxError) Error() string {
	if e.Fragment != "" {
		return fmt.Sprintf("cannot parse %q: %v: %q at position %d", e.Input, e.Err, e.Fragment, e.Position)
	}
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// TableError reports an invalid unit-table construction.
type TableError struct {
	Symbol string // symbol being registered
	Err    error  // ErrDuplicateSymbol or ErrInvalidSymbol
}

func (e *TableError) Error() string {
	return fmt.Sprintf("symbol %q: %v", e.Symbol, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// FormatError reports a formatter failure caused by a table entry that has
// no fixed magnitude or carry capacity.
type FormatError struct {
	Symbol string
	Unit   Unit
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format %s (symbol %q): %v", e.Unit, e.Symbol, ErrUnsupportedUnit)
}

func (e *FormatError) Unwrap() error {
	return ErrUnsupportedUnit
}
