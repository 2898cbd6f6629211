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

package types

import (
	"fmt"

	"github.com/fkopp/chessmove/internal/assert"
)

// Square represents exactly one square on a chess board, 0..63 in
// little-endian rank-file order (a1=0, h1=7, a2=8, ..., h8=63).
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8   // 63
	SqNone // 64

	SqLength = SqNone
)

// IsValid checks if sq represents a valid square on a chess board.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Bb returns the single-bit Bitboard for this square.
func (sq Square) Bb() Bitboard {
	return squareBb[sq]
}

// NeighbourFilesMask returns a Bitboard of the files immediately left
// and right of the square's file, used for en passant attacker checks.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq.FileOf()]
}

// MakeSquare returns a square based on the given algebraic string
// (e.g. "e4") or SqNone if the string is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// String returns the file letter and rank number (e.g. "e5"). Returns
// "-" if sq is not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// SquareOf returns the square for the given file and rank, or SqNone
// for an invalid file or rank.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// To returns the square one step away from sq in direction d, or
// SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		sq += Square(d)
	case South:
		if int(sq)+int(d) < 0 {
			return SqNone
		}
		sq += Square(d)
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if assert.DEBUG {
		assert.Assert(int(sq) >= 0 && int(sq) < 256, "square shift overflowed byte range")
	}
	if sq.IsValid() {
		return sq
	}
	return SqNone
}
