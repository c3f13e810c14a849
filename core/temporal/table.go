package temporal

type tableEntry struct {
	symbol string
	unit   Unit
}

// unitTable is an ordered symbol-to-unit mapping. Insertion order is
// preserved; the formatter walks it in reverse, so callers register
// symbols from smallest to largest unit.
type unitTable struct {
	entries []tableEntry
}

// withUnit returns a copy of the table with the symbol appended. The
// receiver is unchanged.
func (t unitTable) withUnit(symbol string, unit Unit) (unitTable, error) {
	if _, ok := t.lookup(symbol); ok {
		return unitTable{}, &TableError{Symbol: symbol, Err: ErrDuplicateSymbol}
	}
	if symbol == "" || !lettersOnly(symbol) {
		return unitTable{}, &TableError{Symbol: symbol, Err: ErrInvalidSymbol}
	}

	entries := make([]tableEntry, 0, len(t.entries)+1)
	entries = append(entries, t.entries...)
	entries = append(entries, tableEntry{symbol: symbol, unit: unit})
	return unitTable{entries: entries}, nil
}

func (t unitTable) lookup(symbol string) (Unit, bool) {
	for _, e := range t.entries {
		if e.symbol == symbol {
			return e.unit, true
		}
	}
	return 0, false
}

// lettersOnly accepts ASCII letters only, matching the scanner's letter
// class so that every registrable symbol can actually be parsed.
func lettersOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}
