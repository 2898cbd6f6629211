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
	"github.com/fkopp/chessmove/internal/assert"
	. "github.com/fkopp/chessmove/internal/types"
)

// castleRookSquares returns the rook's home and destination squares
// for a castling move whose king lands on target. Kingside has the
// rook start one file east of target and finish one file west of it;
// queenside has it start two files west of target and finish one file
// east of it. The king's own destination is canonical - g1/g8
// kingside, c1/c8 queenside - and is never shared between the two
// branches.
func castleRookSquares(target Square) (from, to Square) {
	switch target {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic("castleRookSquares: target is not a legal castle destination")
	}
}

// rookHomeRight maps a rook's home square to the single castling right
// that must be cleared when that square stops holding its original
// rook, whether by the rook moving away or by it being captured there.
func rookHomeRight(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

// MakeMove applies m, which the caller guarantees is legal in the
// current position. inSearch suppresses history/repetition mutation,
// the way a search tree walks positions without building a move log it
// will never need again.
func (p *Position) MakeMove(m Move, inSearch bool) {
	start := m.From()
	target := m.To()
	flag := m.Flag()

	movedPiece := p.board[start]
	side := movedPiece.ColorOf()

	if assert.DEBUG {
		assert.Assert(p.piecesBb[side][movedPiece.TypeOf()].Has(start), "moved piece bitboard does not contain start square")
		assert.Assert(flag != EnPassantCaptureFlag || (p.board[target] == PieceNone && int(target.FileOf())+1 == p.epFile), "en passant move %s does not land on the en passant square", m.String())
		assert.Assert(flag != CastleFlag || (movedPiece.TypeOf() == King && p.board[target] == PieceNone), "castle move %s does not move the king to an empty square", m.String())
		assert.Assert(flag != PawnTwoUpFlag || (movedPiece.TypeOf() == Pawn && p.board[target] == PieceNone), "double pawn push %s does not land on an empty square", m.String())
	}

	gs := gameState{
		zobristKey:        p.zobristKey,
		move:              m,
		capturedPieceType: PtNone,
		castlingRights:    p.castlingRights,
		epFile:            p.epFile,
		halfMoveClock:     p.halfMoveClock,
	}

	oldCr := p.castlingRights
	oldEpFile := p.epFile

	captureSquare := target
	if flag == EnPassantCaptureFlag {
		if side == White {
			captureSquare = target.To(South)
		} else {
			captureSquare = target.To(North)
		}
	}

	capturedPiece := PieceNone
	if flag == EnPassantCaptureFlag || p.board[target] != PieceNone {
		capturedPiece = p.board[captureSquare]
		gs.capturedPieceType = capturedPiece.TypeOf()
		p.zobristKey ^= zobristPiece(capturedPiece, captureSquare)
		p.removePiece(captureSquare)
	}

	p.zobristKey ^= zobristPiece(movedPiece, start)
	p.movePiece(start, target)
	p.zobristKey ^= zobristPiece(movedPiece, target)

	isPawn := movedPiece.TypeOf() == Pawn

	if movedPiece.TypeOf() == King {
		if side == White {
			p.castlingRights.Remove(CastlingWhite)
		} else {
			p.castlingRights.Remove(CastlingBlack)
		}
		if flag == CastleFlag {
			rookFrom, rookTo := castleRookSquares(target)
			rook := p.board[rookFrom]
			p.zobristKey ^= zobristPiece(rook, rookFrom)
			p.movePiece(rookFrom, rookTo)
			p.zobristKey ^= zobristPiece(rook, rookTo)
		}
	}

	newEpFile := 0
	if flag == PawnTwoUpFlag {
		newEpFile = int(start.FileOf()) + 1
	}

	if flag >= PromoteToQueenFlag {
		p.zobristKey ^= zobristPiece(movedPiece, target)
		p.removePiece(target)
		promoted := MakePiece(side, m.PromotionType())
		p.putPiece(promoted, target)
		p.zobristKey ^= zobristPiece(promoted, target)
	}

	p.castlingRights.Remove(rookHomeRight(start))
	p.castlingRights.Remove(rookHomeRight(target))

	p.epFile = newEpFile

	if oldEpFile != p.epFile {
		p.zobristKey ^= zobristEnPassant(oldEpFile)
		p.zobristKey ^= zobristEnPassant(p.epFile)
	}
	if oldCr != p.castlingRights {
		p.zobristKey ^= zobristCastling(oldCr)
		p.zobristKey ^= zobristCastling(p.castlingRights)
	}
	p.zobristKey ^= zobristSideToMove()

	p.nextPlayer = p.nextPlayer.Flip()
	p.ply++

	if isPawn || capturedPiece != PieceNone {
		p.halfMoveClock = 0
		if !inSearch {
			p.keyHistory = p.keyHistory[:0]
		}
	} else {
		p.halfMoveClock++
	}

	p.history = append(p.history, gs)
	p.checkCacheValid = false

	if assert.DEBUG {
		assert.Assert(!p.computeInCheck(side), "move %s leaves the moving side in check", m.String())
	}

	if !inSearch {
		p.keyHistory = append(p.keyHistory, p.zobristKey)
	}
}

// UnmakeMove reverses the most recently made move, which must be m -
// callers never unmake anything other than the move they most
// recently made.
func (p *Position) UnmakeMove(m Move, inSearch bool) {
	start := m.From()
	target := m.To()
	flag := m.Flag()

	p.nextPlayer = p.nextPlayer.Flip()
	side := p.nextPlayer

	gs := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	if flag >= PromoteToQueenFlag {
		p.removePiece(target)
		p.putPiece(MakePiece(side, Pawn), target)
	}

	p.movePiece(target, start)

	if flag == CastleFlag {
		rookFrom, rookTo := castleRookSquares(target)
		p.movePiece(rookTo, rookFrom)
	}

	captureSquare := target
	if flag == EnPassantCaptureFlag {
		if side == White {
			captureSquare = target.To(South)
		} else {
			captureSquare = target.To(North)
		}
	}
	if gs.capturedPieceType != PtNone {
		p.putPiece(MakePiece(side.Flip(), gs.capturedPieceType), captureSquare)
	}

	p.castlingRights = gs.castlingRights
	p.epFile = gs.epFile
	p.halfMoveClock = gs.halfMoveClock
	p.zobristKey = gs.zobristKey
	p.ply--

	if !inSearch && len(p.keyHistory) > 0 {
		p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]
	}

	p.checkCacheValid = false
}

// MakeNull plays a null move: side to move flips, the en passant file
// is cleared, nothing else on the board changes. Only legal when the
// side to move is not currently in check.
func (p *Position) MakeNull() {
	if assert.DEBUG {
		assert.Assert(!p.IsInCheck(), "null move made while in check")
	}
	gs := gameState{
		zobristKey:        p.zobristKey,
		move:              NullMove(),
		capturedPieceType: PtNone,
		castlingRights:    p.castlingRights,
		epFile:            p.epFile,
		halfMoveClock:     p.halfMoveClock,
	}
	p.history = append(p.history, gs)

	p.zobristKey ^= zobristEnPassant(p.epFile)
	p.epFile = 0
	p.zobristKey ^= zobristEnPassant(p.epFile)
	p.zobristKey ^= zobristSideToMove()

	p.nextPlayer = p.nextPlayer.Flip()
	p.ply++
	p.halfMoveClock++
	p.checkCacheValid = false
}

// UnmakeNull reverses MakeNull.
func (p *Position) UnmakeNull() {
	gs := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.nextPlayer = p.nextPlayer.Flip()
	p.epFile = gs.epFile
	p.castlingRights = gs.castlingRights
	p.halfMoveClock = gs.halfMoveClock
	p.zobristKey = gs.zobristKey
	p.ply--
	p.checkCacheValid = false
}
