//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package moveslice provides the caller-owned move buffer the move
// generator fills in place, avoiding per-call heap allocation on the
// hot generate/make/unmake path.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/fkopp/chessmove/internal/types"
)

// MaxMoves is the largest number of legal moves any chess position is
// known to have; it is used as the starting capacity of move buffers.
const MaxMoves = 218

// MoveSlice is a data structure (go slice) for Move, used as the
// caller-provided output buffer for move generation.
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity and 0
// elements. Equivalent to MoveSlice(make([]Move, 0, cap)).
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the slice.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i without removing it.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// Set replaces the move at index i.
func (ms *MoveSlice) Set(i int, m Move) {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	(*ms)[i] = m
}

// Clone copies the MoveSlice into a newly created MoveSlice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether both slices hold the same moves in the same
// order, ignoring any ordering value each Move carries.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if !SameMove(m, (*other)[i]) {
			return false
		}
	}
	return true
}

// ForEach calls f once per index in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// Clear removes all moves from the slice but retains its capacity, so
// a buffer reused across many generate() calls never reallocates.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort orders moves from highest ordering value to lowest, using a
// stable insertion sort - move lists are mostly pre-sorted and small,
// so insertion sort beats a general purpose sort here. Moves with no
// value set (a zero high 16 bits) sort after every move with a
// positive value and before every move with a negative one.
func (ms *MoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.Value() > (*ms)[j-1].Value() {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String returns a string representation of the move list.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
