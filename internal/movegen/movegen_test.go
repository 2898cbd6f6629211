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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/chessmove/internal/attacks"
	"github.com/fkopp/chessmove/internal/fen"
	"github.com/fkopp/chessmove/internal/moveslice"
	"github.com/fkopp/chessmove/internal/position"
	. "github.com/fkopp/chessmove/internal/types"
)

func genFrom(t *testing.T, fenStr string) (*position.Position, *Movegen, *moveslice.MoveSlice) {
	t.Helper()
	pos, err := fen.ParsePosition(fenStr)
	require.NoError(t, err)
	mg := NewMoveGen()
	moves := moveslice.NewMoveSlice(moveslice.MaxMoves)
	mg.Generate(pos, false, moves)
	return pos, mg, moves
}

// Every move the generator hands out must leave the mover's own king
// safe - check that by making each move and testing with kingAttacked
// whether the mover's king now stands on an attacked square.
func TestGeneratedMovesNeverLeaveKingInCheck(t *testing.T) {
	positions := []string{
		fen.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fenStr := range positions {
		pos, _, moves := genFrom(t, fenStr)
		mover := pos.SideToMove()
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			pos.MakeMove(m, true)
			assert.False(t, kingAttacked(pos, mover), "move %s left %s's king in check", m.String(), mover)
			pos.UnmakeMove(m, true)
		}
	}
}

// kingAttacked tests whether c's king stands on an attacked square,
// regardless of whose turn it currently is - unlike Position.IsInCheck,
// which only ever answers for the side to move.
func kingAttacked(pos *position.Position, c Color) bool {
	enemy := c.Flip()
	kingSq := pos.KingSquare(c)
	occ := pos.OccupiedAll()
	if attacks.GetAttacksBb(Rook, kingSq, occ)&pos.OrthogonalSliders(enemy) != BbZero {
		return true
	}
	if attacks.GetAttacksBb(Bishop, kingSq, occ)&pos.DiagonalSliders(enemy) != BbZero {
		return true
	}
	if attacks.GetPseudoAttacks(Knight, kingSq)&pos.PiecesBb(enemy, Knight) != BbZero {
		return true
	}
	if attacks.GetPawnAttacks(c, kingSq)&pos.PiecesBb(enemy, Pawn) != BbZero {
		return true
	}
	return false
}

func TestKingInCheckMustEvade(t *testing.T) {
	// A lone white king on e1, checked down the open e-file by a black
	// rook on e8: with no other white piece to block or capture, the
	// only legal moves are the four king steps off the e-file and off
	// the attacked e2 square.
	_, mg, moves := genFrom(t, "4r1k1/8/8/8/8/8/8/4K3 w - - 0 1")
	require.True(t, mg.InCheck())
	require.Equal(t, 4, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		assert.Equal(t, SqE1, m.From())
		assert.NotEqual(t, FileE, m.To().FileOf(), "move %s stays on the checked file", m.String())
	}
}

func TestCastlingRequiresEmptyUnattackedPath(t *testing.T) {
	// White to move, both castling rights held, but f1 is attacked by a
	// bishop on a6 - kingside castling must not be offered.
	_, _, moves := genFrom(t, "r3k2r/8/b7/8/8/8/8/R3K2R w KQkq - 0 1")
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsCastle() {
			assert.NotEqual(t, SqG1, m.To(), "kingside castle offered through an attacked square")
		}
	}
}

func TestCastlingOfferedWhenPathClearAndSafe(t *testing.T) {
	_, _, moves := genFrom(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var sawKingside, sawQueenside bool
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsCastle() {
			switch m.To() {
			case SqG1:
				sawKingside = true
			case SqC1:
				sawQueenside = true
			}
		}
	}
	assert.True(t, sawKingside)
	assert.True(t, sawQueenside)
}

func TestEnPassantDiscoveredCheckIsSuppressed(t *testing.T) {
	// White king and black rook share the fifth rank, a white pawn sits
	// between them, and a black pawn has just double-pushed alongside
	// it, offering the white pawn an en passant capture. Taking it
	// would remove both pawns from the rank and expose the king to the
	// rook - that capture must not be generated.
	pos, err := fen.ParsePosition("4k3/8/8/KPp4r/8/8/8/8 w - c6 0 1")
	require.NoError(t, err)

	mg := NewMoveGen()
	out := moveslice.NewMoveSlice(moveslice.MaxMoves)
	mg.Generate(pos, false, out)

	for i := 0; i < out.Len(); i++ {
		m := out.At(i)
		assert.False(t, m.IsEnPassant(), "en passant capture exposed the king to the rook on the fifth rank")
	}
}
