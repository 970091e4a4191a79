// Package reqlog is an ordered collection of unsigned values with positional
// insert and remove. The panel keeps its request history in one.
package reqlog

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// NotFound is returned by Find when the value is absent.
const NotFound = -1

type List struct {
	values []uint
}

func New() *List {
	return &List{}
}

func (l *List) Size() int {
	return len(l.values)
}

func (l *List) InsertEnd(value uint) {
	l.values = append(l.values, value)
}

func (l *List) InsertFront(value uint) {
	l.values = slices.Insert(l.values, 0, value)
}

// Insert places value at index, shifting later values back. index may equal Size.
func (l *List) Insert(index int, value uint) error {
	if index < 0 || index > len(l.values) {
		return fmt.Errorf("insert at %d in list of %d: %w", index, len(l.values), ErrIndexOutOfRange)
	}
	l.values = slices.Insert(l.values, index, value)
	return nil
}

// Find returns the index of the first occurrence of value, or NotFound.
func (l *List) Find(value uint) int {
	return slices.Index(l.values, value)
}

func (l *List) Get(index int) (uint, error) {
	if index < 0 || index >= len(l.values) {
		return 0, fmt.Errorf("get %d in list of %d: %w", index, len(l.values), ErrIndexOutOfRange)
	}
	return l.values[index], nil
}

func (l *List) Remove(index int) error {
	if index < 0 || index >= len(l.values) {
		return fmt.Errorf("remove %d in list of %d: %w", index, len(l.values), ErrIndexOutOfRange)
	}
	l.values = slices.Delete(l.values, index, index+1)
	return nil
}

// All iterates over index and value pairs from front to back.
func (l *List) All() iter.Seq2[int, uint] {
	return func(yield func(int, uint) bool) {
		for i, v := range l.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the contents.
func (l *List) Values() []uint {
	return slices.Clone(l.values)
}
