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
	"math/bits"
	"strings"

	"github.com/fkopp/chessmove/internal/util"
)

// Bitboard is a 64 bit set of squares, one bit per square in the same
// little-endian rank-file order as Square.
type Bitboard uint64

// Bitboard constants.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF

	BbFileA = Bitboard(0x0101010101010101)
	BbFileH = Bitboard(0x8080808080808080)
	BbRank1 = Bitboard(0x00000000000000FF)
	BbRank8 = Bitboard(0xFF00000000000000)
)

// Has tests if the given square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&squareBb[sq] != 0
}

// PushSquare sets the given square's bit.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= squareBb[sq]
}

// PopSquare clears the given square's bit.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= squareBb[sq]
}

// Lsb returns the least significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts all set bits of b one step in direction d,
// clamping bits that would wrap around a board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ BbFileH) << 1
	case West:
		return (b &^ BbFileA) >> 1
	case Northeast:
		return (b &^ BbFileH) << 9
	case Southeast:
		return (b &^ BbFileH) >> 7
	case Southwest:
		return (b &^ BbFileA) >> 9
	case Northwest:
		return (b &^ BbFileA) << 7
	default:
		return BbZero
	}
}

// String renders the Bitboard as a 64 bit binary string.
func (b Bitboard) String() string {
	sb := strings.Builder{}
	for sq := 63; sq >= 0; sq-- {
		if b.Has(Square(sq)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// StringBoard renders the Bitboard as an 8x8 grid, rank 8 on top.
func (b Bitboard) StringBoard() string {
	sb := strings.Builder{}
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank(r))) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// squareBb, fileBb, rankBb and the small geometry caches below are
// filled once by initBb, called from this package's init().
var (
	squareBb           [SqLength]Bitboard
	fileBb             [8]Bitboard
	rankBb             [8]Bitboard
	neighbourFilesMask [8]Bitboard
	squareDistance     [SqLength][SqLength]int

	bbInitialized bool
)

func initBb() {
	if bbInitialized {
		return
	}
	for sq := Square(0); sq < SqLength; sq++ {
		squareBb[sq] = Bitboard(1) << sq
	}
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = BbFileA << f
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = BbRank1 << (8 * r)
	}
	for f := FileA; f <= FileH; f++ {
		m := BbZero
		if f > FileA {
			m |= fileBb[f-1]
		}
		if f < FileH {
			m |= fileBb[f+1]
		}
		neighbourFilesMask[f] = m
	}
	for s1 := Square(0); s1 < SqLength; s1++ {
		for s2 := Square(0); s2 < SqLength; s2++ {
			fd := util.Abs(int(s1.FileOf()) - int(s2.FileOf()))
			rd := util.Abs(int(s1.RankOf()) - int(s2.RankOf()))
			squareDistance[s1][s2] = util.Max(fd, rd)
		}
	}
	bbInitialized = true
}

// Distance returns the chessboard (Chebyshev) distance between two squares.
func Distance(s1, s2 Square) int {
	return squareDistance[s1][s2]
}

func init() {
	initBb()
}
