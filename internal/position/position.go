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

// Package position implements the mutable board representation: piece
// placement, side to move, castling rights, en passant state, move
// counters and the Zobrist key, plus the make/unmake machinery the
// move generator and perft harness drive.
package position

import (
	"fmt"

	"github.com/fkopp/chessmove/internal/logging"
	"github.com/fkopp/chessmove/internal/pieces"
	. "github.com/fkopp/chessmove/internal/types"
)

var out = logging.GetLog()

// gameState captures everything MakeMove cannot derive from the move
// itself and UnmakeMove needs back: the side effect of the move (what
// was captured), and the position-wide state that isn't stored
// per-move (rights, en passant file, the clock, the key). Kept as a
// slice under Position so it grows amortized with search/game depth
// instead of being capped at a fixed array size.
type gameState struct {
	zobristKey        Key
	move              Move
	capturedPieceType PieceType
	castlingRights    CastlingRights
	epFile            int
	halfMoveClock     int
}

// Position is the mutable chess board. The square-centric board array
// is the single source of truth; the bitboards are a redundant index
// over it kept in sync by every mutation so the move generator never
// has to fall back to scanning squares.
type Position struct {
	board [SqLength]Piece

	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	allBb      Bitboard

	// orthogonalSliders/diagonalSliders are the rook+queen and
	// bishop+queen unions per color, refreshed alongside piecesBb -
	// check and pin detection consult these rather than re-OR-ing
	// Rook/Queen or Bishop/Queen on every call.
	orthogonalSliders [ColorLength]Bitboard
	diagonalSliders   [ColorLength]Bitboard

	pieceLists [ColorLength][PtLength]*pieces.List

	kingSquare [ColorLength]Square

	nextPlayer     Color
	castlingRights CastlingRights
	epFile         int // 0 = none, 1..8 = file a..h
	halfMoveClock  int
	ply            int
	zobristKey     Key

	history    []gameState
	keyHistory []Key // one zobrist key per ply since the last capture or pawn move, for repetition counting

	checkCacheValid bool
	checkCache      bool
}

// NewEmpty returns a Position with no pieces on it. Callers normally
// want FromStartInfo or CloneByReplay instead; NewEmpty exists mainly
// for tests that build up a board square by square.
func NewEmpty() *Position {
	p := &Position{}
	for sq := Square(0); sq < SqLength; sq++ {
		p.board[sq] = PieceNone
	}
	for c := White; c < ColorLength; c++ {
		for pt := PieceType(0); pt < PtLength; pt++ {
			p.pieceLists[c][pt] = pieces.NewList()
		}
	}
	p.kingSquare[White] = SqNone
	p.kingSquare[Black] = SqNone
	return p
}

// FromStartInfo builds a Position from a fully parsed external
// description. It is the only entry point that can fail: a board with
// other than exactly one king per side is rejected with an error
// rather than panicking or silently proceeding, since that is bad
// input from outside rather than a violation of an invariant this
// package maintains on its own.
func FromStartInfo(info PositionInfo) (*Position, error) {
	if err := info.validateKings(); err != nil {
		out.Errorf("position from start info rejected: %s", err)
		return nil, err
	}

	p := NewEmpty()
	for sq := Square(0); sq < SqLength; sq++ {
		pc := info.Squares[sq]
		if pc == PieceNone {
			continue
		}
		p.putPiece(pc, sq)
	}

	if info.WhiteToMove {
		p.nextPlayer = White
	} else {
		p.nextPlayer = Black
	}
	p.castlingRights = info.castlingRights()
	p.epFile = info.EpFile
	p.halfMoveClock = info.FiftyMovePly
	p.ply = info.Ply()

	p.zobristKey = computeZobrist(&p.board, p.epFile, p.nextPlayer == Black, p.castlingRights)
	p.keyHistory = append(p.keyHistory, p.zobristKey)

	out.Debugf("position created from start info: key=%d ply=%d nextPlayer=%s", p.zobristKey, p.ply, p.nextPlayer.String())

	return p, nil
}

// CloneByReplay returns a deep, independent copy of other. Nothing in
// the copy aliases other's storage: piece lists are rebuilt from the
// board array and the history/key slices are copied rather than
// shared, so mutating the clone never touches the original.
func CloneByReplay(other *Position) *Position {
	p := NewEmpty()
	for sq := Square(0); sq < SqLength; sq++ {
		pc := other.board[sq]
		if pc != PieceNone {
			p.putPiece(pc, sq)
		}
	}
	p.nextPlayer = other.nextPlayer
	p.castlingRights = other.castlingRights
	p.epFile = other.epFile
	p.halfMoveClock = other.halfMoveClock
	p.ply = other.ply
	p.zobristKey = other.zobristKey

	p.history = append(p.history, other.history...)
	p.keyHistory = append(p.keyHistory, other.keyHistory...)

	return p
}

// putPiece places pc on sq and updates every redundant index. Only
// valid on a square that is currently empty.
func (p *Position) putPiece(pc Piece, sq Square) {
	c := pc.ColorOf()
	pt := pc.TypeOf()

	p.board[sq] = pc
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	p.allBb.PushSquare(sq)
	p.pieceLists[c][pt].Add(sq)

	if pt == Rook || pt == Queen {
		p.orthogonalSliders[c].PushSquare(sq)
	}
	if pt == Bishop || pt == Queen {
		p.diagonalSliders[c].PushSquare(sq)
	}
	if pt == King {
		p.kingSquare[c] = sq
	}
}

// removePiece takes the piece currently on sq off the board.
func (p *Position) removePiece(sq Square) {
	pc := p.board[sq]
	c := pc.ColorOf()
	pt := pc.TypeOf()

	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.allBb.PopSquare(sq)
	p.pieceLists[c][pt].Remove(sq)

	if pt == Rook || pt == Queen {
		p.orthogonalSliders[c].PopSquare(sq)
	}
	if pt == Bishop || pt == Queen {
		p.diagonalSliders[c].PopSquare(sq)
	}
}

// movePiece relocates the piece on start to target, which must be empty.
func (p *Position) movePiece(start, target Square) {
	pc := p.board[start]
	c := pc.ColorOf()
	pt := pc.TypeOf()

	p.board[start] = PieceNone
	p.board[target] = pc

	p.piecesBb[c][pt].PopSquare(start)
	p.piecesBb[c][pt].PushSquare(target)
	p.occupiedBb[c].PopSquare(start)
	p.occupiedBb[c].PushSquare(target)
	p.allBb.PopSquare(start)
	p.allBb.PushSquare(target)
	p.pieceLists[c][pt].Move(start, target)

	if pt == Rook || pt == Queen {
		p.orthogonalSliders[c].PopSquare(start)
		p.orthogonalSliders[c].PushSquare(target)
	}
	if pt == Bishop || pt == Queen {
		p.diagonalSliders[c].PopSquare(start)
		p.diagonalSliders[c].PushSquare(target)
	}
	if pt == King {
		p.kingSquare[c] = target
	}
}

// GetPiece returns the piece standing on sq, or PieceNone.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of pieces of type pt belonging to c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedBb returns every square occupied by c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// OccupiedAll returns every occupied square on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.allBb
}

// OrthogonalSliders returns the union of c's rooks and queens.
func (p *Position) OrthogonalSliders(c Color) Bitboard {
	return p.orthogonalSliders[c]
}

// DiagonalSliders returns the union of c's bishops and queens.
func (p *Position) DiagonalSliders(c Color) Bitboard {
	return p.diagonalSliders[c]
}

// PieceList returns the dense square list for c's pieces of type pt.
func (p *Position) PieceList(c Color, pt PieceType) *pieces.List {
	return p.pieceLists[c][pt]
}

// KingSquare returns the square c's king stands on.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// SideToMove returns the color to move next.
func (p *Position) SideToMove() Color {
	return p.nextPlayer
}

// CastlingRights returns the position's current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// GetEnPassantFile returns 0 if no en passant capture is available, or
// the 1..8 file (a..h) a pawn could currently capture onto en passant.
func (p *Position) GetEnPassantFile() int {
	return p.epFile
}

// FiftyMoveCounter returns the half-move clock since the last capture
// or pawn move.
func (p *Position) FiftyMoveCounter() int {
	return p.halfMoveClock
}

// Ply returns the half-move ply count since the game start.
func (p *Position) Ply() int {
	return p.ply
}

// ZobristKey returns the position's current Zobrist hash.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// RepetitionKeys returns the Zobrist key recorded for every ply played
// outside search since the last capture or pawn move (MakeMove clears
// the slice when the half-move clock resets), including the current
// one - callers count repeated values in this slice to detect
// threefold repetition.
func (p *Position) RepetitionKeys() []Key {
	return p.keyHistory
}

// String renders the board as an 8x8 ASCII diagram, rank 8 first.
func (p *Position) String() string {
	s := ""
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := FileA; f <= FileH; f++ {
			s += p.board[SquareOf(f, Rank(r))].String() + " "
		}
		s += "\n"
	}
	s += fmt.Sprintf("side to move: %s castling: %s ep: %d fifty: %d ply: %d key: %d",
		p.nextPlayer, p.castlingRights, p.epFile, p.halfMoveClock, p.ply, p.zobristKey)
	return s
}
