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

package position

import (
	. "github.com/fkopp/chessmove/internal/types"
)

// Key is a Zobrist hash of a position.
type Key uint64

// zobristTable holds the random numbers used to build up a position's
// incremental hash. Filled once by initZobrist.
type zobristTable struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingLength]Key
	enPassantFile  [9]Key // index 0 unused (0 means "no ep file" in PositionInfo)
	sideToMove     Key
}

var zobristBase zobristTable

// initZobristSeed is the seed for the deterministic Zobrist key
// generator. A fixed seed means Zobrist keys are stable across runs
// and therefore useful in logs, tests and transposition table dumps.
const initZobristSeed = 1070372

func initZobrist() {
	r := NewRandom(initZobristSeed)
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := Square(0); sq < SqLength; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.Rand64())
		}
	}
	for i := CastlingRights(0); i < CastlingLength; i++ {
		zobristBase.castlingRights[i] = Key(r.Rand64())
	}
	// Fill the en passant file terms first...
	for f := 1; f <= 8; f++ {
		zobristBase.enPassantFile[f] = Key(r.Rand64())
	}
	// ...and only then draw the side-to-move term, once, after every
	// other loop has consumed its random numbers. Mixing this draw
	// into the en-passant loop (so it gets overwritten on every
	// iteration instead of each file getting its own key) is the
	// classic bug this generator must not reproduce.
	zobristBase.sideToMove = Key(r.Rand64())
}

func init() {
	initZobrist()
}

// zobristPiece returns the key term for a piece standing on a square.
func zobristPiece(pc Piece, sq Square) Key {
	return zobristBase.pieces[pc][sq]
}

// zobristCastling returns the key term for a castling rights state.
func zobristCastling(cr CastlingRights) Key {
	return zobristBase.castlingRights[cr]
}

// zobristEnPassant returns the key term for an en passant file, where
// file is 0 for "none" and 1..8 for file a..h (matches PositionInfo's
// ep_file convention).
func zobristEnPassant(file int) Key {
	return zobristBase.enPassantFile[file]
}

// zobristSideToMove returns the key term toggled whenever the side to
// move changes.
func zobristSideToMove() Key {
	return zobristBase.sideToMove
}

// computeZobrist recomputes a position's Zobrist key from scratch by
// XOR-ing every term together - every piece on the board, the en
// passant file (or the "none" term), the side-to-move term if Black is
// to move, and the castling rights term. All four term groups must be
// folded into the same accumulator with ^=; replacing the running
// total with the castling term alone (instead of XOR-ing it in)
// silently discards every other term and is the other classic bug
// this function must not reproduce.
func computeZobrist(squares *[SqLength]Piece, epFile int, blackToMove bool, cr CastlingRights) Key {
	var key Key
	for sq := Square(0); sq < SqLength; sq++ {
		if pc := squares[sq]; pc != PieceNone {
			key ^= zobristPiece(pc, sq)
		}
	}
	key ^= zobristEnPassant(epFile)
	if blackToMove {
		key ^= zobristSideToMove()
	}
	key ^= zobristCastling(cr)
	return key
}
