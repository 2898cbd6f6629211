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

// Package attacks precomputes the lookup tables the move generator and
// check/pin detection rely on: pseudo attacks for kings, knights and
// pawns, ray and between-square masks for all eight directions, and
// the fancy magic bitboard tables for bishops, rooks and queens. All
// tables are built once by init() so nothing here allocates or
// recomputes during move generation.
package attacks

import (
	. "github.com/fkopp/chessmove/internal/types"
)

var (
	pseudoAttacks [PtLength][SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard

	rays [OrientationLength][SqLength]Bitboard

	filesWestMask  [SqLength]Bitboard
	filesEastMask  [SqLength]Bitboard
	ranksNorthMask [SqLength]Bitboard
	ranksSouthMask [SqLength]Bitboard

	between [SqLength][SqLength]Bitboard

	initialized bool
)

func init() {
	if initialized {
		return
	}
	precomputeGeometry()
	precomputePseudoAttacks()
	precomputeRays()
	precomputeBetween()
	initMagics(rookTable[:], &rookMagics, &rookDirections)
	initMagics(bishopTable[:], &bishopMagics, &bishopDirections)
	initialized = true
}

func precomputeGeometry() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[sq] |= BbFileA << j
			}
			if 7-j > f {
				filesEastMask[sq] |= BbFileA << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[sq] |= BbRank1 << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[sq] |= BbRank1 << (8 * j)
			}
		}
	}
}

func precomputePseudoAttacks() {
	kingSteps := []Direction{Northwest, North, Northeast, East, Southeast, South, Southwest, West}
	knightSteps := []Direction{
		West + Northwest, East + Northeast, North + Northwest, North + Northeast,
		East + Southeast, West + Southwest, South + Southwest, South + Southeast,
	}
	pawnSteps := []Direction{Northwest, Northeast}

	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range kingSteps {
			if to := sq.To(d); to != SqNone {
				pseudoAttacks[King][sq].PushSquare(to)
			}
		}
		for _, d := range knightSteps {
			to := knightStep(sq, d)
			if to != SqNone {
				pseudoAttacks[Knight][sq].PushSquare(to)
			}
		}
		for _, d := range pawnSteps {
			if to := sq.To(d); to != SqNone {
				pawnAttacks[White][sq].PushSquare(to)
			}
			if to := sq.To(-d); to != SqNone {
				pawnAttacks[Black][sq].PushSquare(to)
			}
		}
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

// knightStep applies a two-square knight jump and rejects any result
// that would have wrapped around a board edge.
func knightStep(sq Square, d Direction) Square {
	to := Square(int(sq) + int(d))
	if int(to) < 0 || int(to) > int(SqH8) {
		return SqNone
	}
	if Distance(sq, to) > 2 {
		return SqNone
	}
	return to
}

func precomputeRays() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

func precomputeBetween() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBb := to.Bb()
			for o := Orientation(0); o < OrientationLength; o++ {
				if rays[o][from]&toBb != BbZero {
					between[from][to] |= rays[o][from] &^ rays[o][to] &^ toBb
				}
			}
		}
	}
}

// GetAttacksBb returns the squares attacked by a piece of type pt
// (Knight, Bishop, Rook, Queen or King - not Pawn) standing on sq
// given the current board occupancy. Sliding piece types look up the
// magic bitboard tables; non sliders ignore occupied.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].attacks[rookMagics[sq].index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// PawnAttackSpread returns every square attacked by any pawn of color
// c in pawns, computed as a single batched diagonal shift rather than
// a per-square table lookup - the cheaper way to build an opponent
// attack map when every pawn of one color is wanted at once.
func PawnAttackSpread(pawns Bitboard, c Color) Bitboard {
	if c == White {
		return ShiftBitboard(pawns, Northwest) | ShiftBitboard(pawns, Northeast)
	}
	return ShiftBitboard(pawns, Southwest) | ShiftBitboard(pawns, Southeast)
}

// GetPseudoAttacks returns the attacks of a piece type as if the
// board were otherwise empty (ignored for sliders behind blockers).
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// Ray returns the squares reachable from sq in direction o on an
// empty board.
func Ray(sq Square, o Orientation) Bitboard {
	return rays[o][sq]
}

// Between returns the squares strictly between sq1 and sq2 if they
// share a rank, file or diagonal, otherwise BbZero.
func Between(sq1, sq2 Square) Bitboard {
	return between[sq1][sq2]
}

// Aligned tests whether sq1, sq2 and sq3 all lie on a shared rank,
// file or diagonal line - used to confirm a pin candidate actually
// lines up with the king.
func Aligned(sq1, sq2, sq3 Square) bool {
	return Between(sq1, sq2)&sq3.Bb() != BbZero ||
		Between(sq1, sq3)&sq2.Bb() != BbZero ||
		Between(sq2, sq3)&sq1.Bb() != BbZero
}
