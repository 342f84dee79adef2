// Package builder provides ID schemes for graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// housePrefix labels generated vertices as houses of the community.
const housePrefix = "Casa "

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// HouseIDFn returns the 1-based house label, e.g. 0→"Casa 1", 32→"Casa 33".
// Complexity: O(d) in the number of digits.
func HouseIDFn(idx int) string {
	return housePrefix + strconv.Itoa(idx+1)
}

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns spreadsheet-style column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func SymbolIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
