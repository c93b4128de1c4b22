// Package emoji provides the fixed, ordered emoji sequence shown on screen.
package emoji

import (
	"fmt"
	"slices"
)

// defaultItems is the built-in release list
var defaultItems = []string{
	"😀", "😂", "🥹", "😍", "🤩", "😎",
	"🤔", "😴", "🥳", "😇", "🤖", "👻",
	"🐶", "🐱", "🦊", "🐼", "🐸", "🦄",
	"🍕", "🌮", "🍩", "🍉", "☕", "🧁",
	"⚽", "🎸", "🚀", "🌈", "🔥", "🎉",
	"🫠", "🫡", "🫶", "🪿", "🪼", "🫎",
}

// Source is an immutable, ordered sequence of emoji.
// The zero value is empty. Items are identified by value.
type Source struct {
	items []string
}

// Default returns the built-in emoji sequence
func Default() Source {
	return New(defaultItems)
}

// New returns a Source holding a copy of items
func New(items []string) Source {
	return Source{items: slices.Clone(items)}
}

// Validate reports an error when an item is empty or repeated.
// Items double as render keys, so they must be unique.
func Validate(items []string) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item == "" {
			return fmt.Errorf("emoji %d is empty", i)
		}
		if _, ok := seen[item]; ok {
			return fmt.Errorf("emoji %q appears more than once", item)
		}
		seen[item] = struct{}{}
	}
	return nil
}

// Len returns the number of items
func (s Source) Len() int {
	return len(s.items)
}

// At returns the item at index i, or "" when out of range
func (s Source) At(i int) string {
	if i < 0 || i >= len(s.items) {
		return ""
	}
	return s.items[i]
}

// Items returns a copy of the sequence
func (s Source) Items() []string {
	return slices.Clone(s.items)
}

// Index returns the position of item, or -1
func (s Source) Index(item string) int {
	return slices.Index(s.items, item)
}

// Rows partitions the sequence into rows of at most columns items,
// preserving order. Only the last row may be shorter.
func (s Source) Rows(columns int) [][]string {
	if columns < 1 {
		columns = 1
	}
	rows := make([][]string, 0, (len(s.items)+columns-1)/columns)
	for chunk := range slices.Chunk(s.items, columns) {
		rows = append(rows, slices.Clone(chunk))
	}
	return rows
}
