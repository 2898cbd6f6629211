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

// Package pieces holds the PieceList, a dense O(1) add/remove/move
// container for the squares occupied by one (color, piece type) set
// of pieces.
package pieces

import (
	. "github.com/fkopp/chessmove/internal/types"
)

// maxPieces bounds the number of pieces of a single kind any legal or
// illegal-but-representable position can have: at most 8 pawns can
// each underpromote, giving up to 10 queens/rooks/bishops/knights.
const maxPieces = 10

// List is a dense, swap-remove backed set of squares for one piece
// kind. occupied holds the squares in no particular order; index maps
// a square back to its slot in occupied so removal never has to scan.
type List struct {
	occupied [maxPieces]Square
	index    [SqLength]int8
	len      int
}

// NewList returns an empty PieceList.
func NewList() *List {
	pl := &List{}
	for i := range pl.index {
		pl.index[i] = -1
	}
	return pl
}

// Len returns the number of squares currently stored.
func (pl *List) Len() int {
	return pl.len
}

// Add places a piece on the given square.
func (pl *List) Add(sq Square) {
	pl.occupied[pl.len] = sq
	pl.index[sq] = int8(pl.len)
	pl.len++
}

// Remove takes the piece off the given square, swapping the list's
// last entry into the freed slot so removal never shifts the rest of
// the list.
func (pl *List) Remove(sq Square) {
	i := pl.index[sq]
	last := pl.occupied[pl.len-1]
	pl.occupied[i] = last
	pl.index[last] = i
	pl.index[sq] = -1
	pl.len--
}

// Move relocates a piece from start to target without touching its
// slot, so iteration order is preserved across the move.
func (pl *List) Move(start, target Square) {
	i := pl.index[start]
	pl.occupied[i] = target
	pl.index[target] = i
	pl.index[start] = -1
}

// Squares returns the occupied squares in storage order. The slice
// aliases the List's backing array and is only valid until the next
// mutation.
func (pl *List) Squares() []Square {
	return pl.occupied[:pl.len]
}

// Has reports whether sq currently holds a piece from this list.
func (pl *List) Has(sq Square) bool {
	return pl.index[sq] >= 0
}
