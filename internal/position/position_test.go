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
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fkopp/chessmove/internal/types"
)

// snapshot captures the exported-observable state a round trip must
// restore exactly, per the round trip property.
type snapshot struct {
	board             [SqLength]Piece
	piecesBb          [ColorLength][PtLength]Bitboard
	occupiedBb        [ColorLength]Bitboard
	allBb             Bitboard
	orthogonalSliders [ColorLength]Bitboard
	diagonalSliders   [ColorLength]Bitboard
	kingSquare        [ColorLength]Square
	castlingRights    CastlingRights
	epFile            int
	halfMoveClock     int
	zobristKey        Key
	ply               int
}

func takeSnapshot(p *Position) snapshot {
	s := snapshot{
		board:          p.board,
		castlingRights: p.castlingRights,
		epFile:         p.epFile,
		halfMoveClock:  p.halfMoveClock,
		zobristKey:     p.zobristKey,
		ply:            p.ply,
	}
	for c := White; c < ColorLength; c++ {
		s.occupiedBb[c] = p.occupiedBb[c]
		s.orthogonalSliders[c] = p.orthogonalSliders[c]
		s.diagonalSliders[c] = p.diagonalSliders[c]
		s.kingSquare[c] = p.kingSquare[c]
		for pt := PieceType(0); pt < PtLength; pt++ {
			s.piecesBb[c][pt] = p.piecesBb[c][pt]
		}
	}
	s.allBb = p.allBb
	return s
}

func assertSnapshotsEqual(t *testing.T, want, got snapshot) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("snapshots differ\nwant:\n%s\ngot:\n%s", spew.Sdump(want), spew.Sdump(got))
	}
}

func startPosition(t *testing.T) *Position {
	t.Helper()
	var squares [SqLength]Piece
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := FileA; f <= FileH; f++ {
		squares[SquareOf(f, Rank1)] = MakePiece(White, backRank[f])
		squares[SquareOf(f, Rank2)] = WhitePawn
		squares[SquareOf(f, Rank7)] = BlackPawn
		squares[SquareOf(f, Rank8)] = MakePiece(Black, backRank[f])
	}
	info := PositionInfo{
		Squares:     squares,
		WhiteToMove: true,
		WhiteOO:     true,
		WhiteOOO:    true,
		BlackOO:     true,
		BlackOOO:    true,
		MoveCount:   1,
	}
	p, err := FromStartInfo(info)
	require.NoError(t, err)
	return p
}

func TestFromStartInfoRejectsBadKingCount(t *testing.T) {
	var squares [SqLength]Piece
	squares[SqE1] = WhiteKing
	squares[SqE8] = BlackKing
	squares[SqD8] = BlackKing
	_, err := FromStartInfo(PositionInfo{Squares: squares, WhiteToMove: true, MoveCount: 1})
	assert.Error(t, err)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := startPosition(t)
	before := takeSnapshot(p)

	m := CreateMove(SqE2, SqE4, PawnTwoUpFlag)
	p.MakeMove(m, true)
	assert.NotEqual(t, before.zobristKey, p.zobristKey)

	p.UnmakeMove(m, true)
	after := takeSnapshot(p)
	assertSnapshotsEqual(t, before, after)
}

func TestMakeUnmakeRoundTripCaptureAndCastle(t *testing.T) {
	// A position reachable a few plies into a game, with a capture and
	// a kingside castle both available.
	var squares [SqLength]Piece
	squares[SqE1] = WhiteKing
	squares[SqH1] = WhiteRook
	squares[SqA1] = WhiteRook
	squares[SqE8] = BlackKing
	squares[SqD5] = WhiteKnight
	squares[SqE6] = BlackPawn

	info := PositionInfo{
		Squares:     squares,
		WhiteToMove: true,
		WhiteOO:     true,
		WhiteOOO:    true,
		MoveCount:   10,
	}
	p, err := FromStartInfo(info)
	require.NoError(t, err)

	before := takeSnapshot(p)
	capture := CreateMove(SqD5, SqE6, NoFlag)
	p.MakeMove(capture, true)
	p.UnmakeMove(capture, true)
	assertSnapshotsEqual(t, before, takeSnapshot(p))

	castle := CreateMove(SqE1, SqG1, CastleFlag)
	p.MakeMove(castle, true)
	p.UnmakeMove(castle, true)
	assertSnapshotsEqual(t, before, takeSnapshot(p))
}

func TestZobristIncrementalMatchesFullRecompute(t *testing.T) {
	p := startPosition(t)
	moves := []Move{
		CreateMove(SqE2, SqE4, PawnTwoUpFlag),
		CreateMove(SqE7, SqE5, PawnTwoUpFlag),
		CreateMove(SqG1, SqF3, NoFlag),
	}
	for _, m := range moves {
		p.MakeMove(m, true)
		want := computeZobrist(&p.board, p.epFile, p.nextPlayer == Black, p.castlingRights)
		assert.Equal(t, want, p.zobristKey, "incremental key diverged after %s", m.String())
	}
}

func TestBitboardConsistency(t *testing.T) {
	p := startPosition(t)
	p.MakeMove(CreateMove(SqE2, SqE4, PawnTwoUpFlag), true)
	p.MakeMove(CreateMove(SqD7, SqD5, PawnTwoUpFlag), true)
	p.MakeMove(CreateMove(SqE4, SqD5, NoFlag), true)

	var union [ColorLength]Bitboard
	for sq := Square(0); sq < SqLength; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			for c := White; c < ColorLength; c++ {
				for pt := PieceType(0); pt < PtLength; pt++ {
					assert.False(t, p.piecesBb[c][pt].Has(sq))
				}
			}
			continue
		}
		c := pc.ColorOf()
		pt := pc.TypeOf()
		assert.True(t, p.piecesBb[c][pt].Has(sq))
		union[c].PushSquare(sq)
	}
	for c := White; c < ColorLength; c++ {
		assert.Equal(t, union[c], p.occupiedBb[c])
	}
	assert.Equal(t, p.occupiedBb[White]|p.occupiedBb[Black], p.allBb)
	assert.Equal(t, Bitboard(0), p.occupiedBb[White]&p.occupiedBb[Black])
}

func TestPieceListConsistency(t *testing.T) {
	p := startPosition(t)
	p.MakeMove(CreateMove(SqE2, SqE4, PawnTwoUpFlag), true)
	p.MakeMove(CreateMove(SqD7, SqD5, PawnTwoUpFlag), true)
	p.MakeMove(CreateMove(SqE4, SqD5, NoFlag), true)
	p.MakeMove(CreateMove(SqD8, SqD5, NoFlag), true)

	for c := White; c < ColorLength; c++ {
		for pt := PieceType(0); pt < PtLength; pt++ {
			list := p.PieceList(c, pt)
			squares := list.Squares()
			assert.Equal(t, p.piecesBb[c][pt].PopCount(), len(squares))

			seen := map[Square]bool{}
			for _, sq := range squares {
				require.True(t, p.piecesBb[c][pt].Has(sq), "list holds %s not set in piecesBb[%s][%s]", sq, c, pt)
				require.True(t, list.Has(sq), "list.Has disagrees with its own Squares() for %s", sq)
				seen[sq] = true
			}
			assert.Len(t, seen, len(squares), "list.Squares() must not repeat a square")
		}
	}

	for sq := Square(0); sq < SqLength; sq++ {
		pc := p.board[sq]
		if pc == PieceNone {
			continue
		}
		assert.True(t, p.PieceList(pc.ColorOf(), pc.TypeOf()).Has(sq),
			"board has %s on %s but its piece list disagrees", pc, sq)
	}
}

func TestRepetitionCounting(t *testing.T) {
	p := startPosition(t)
	startKey := p.zobristKey

	shuffle := []Move{
		CreateMove(SqG1, SqF3, NoFlag),
		CreateMove(SqG8, SqF6, NoFlag),
		CreateMove(SqF3, SqG1, NoFlag),
		CreateMove(SqF6, SqG8, NoFlag),
	}
	// The starting position already counts as the first occurrence;
	// two full there-and-back cycles bring the total to three.
	for rep := 0; rep < 2; rep++ {
		for _, m := range shuffle {
			p.MakeMove(m, false)
		}
	}

	count := 0
	for _, k := range p.RepetitionKeys() {
		if k == startKey {
			count++
		}
	}
	assert.Equal(t, 3, count)
}
