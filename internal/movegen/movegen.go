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

// Package movegen generates legal moves directly - no pseudo legal
// pass followed by a king-safety filter. A single attack analysis
// pass over the board finds checks and pins up front, and every piece
// loop below consults it so the generator never has to try a move
// against IsInCheck after the fact.
package movegen

import (
	"github.com/op/go-logging"

	"github.com/fkopp/chessmove/internal/assert"
	"github.com/fkopp/chessmove/internal/attacks"
	myLogging "github.com/fkopp/chessmove/internal/logging"
	"github.com/fkopp/chessmove/internal/moveslice"
	"github.com/fkopp/chessmove/internal/position"
	. "github.com/fkopp/chessmove/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// Movegen holds nothing but a reusable attack-info scratch buffer;
// create one via NewMoveGen and reuse it across positions to avoid
// reallocating the pin-ray table on every call.
type Movegen struct {
	info attackInfo
}

// NewMoveGen creates a new move generator.
func NewMoveGen() *Movegen {
	return &Movegen{}
}

// attackInfo is the result of the pin/check analysis pass (§4.9): the
// squares that block or capture every checking piece, one ray mask
// per pinned square, and the map of squares the opponent attacks
// (used for king move filtering and castling legality).
type attackInfo struct {
	checkRayBitmask Bitboard
	checkerCount    int
	pinRayOf        [SqLength]Bitboard
	opponentAttacks Bitboard
}

func isPositiveOrientation(o Orientation) bool {
	switch o {
	case N, NE, E, NW:
		return true
	default:
		return false
	}
}

func nearestBlocker(rayAndOcc Bitboard, o Orientation) Square {
	if isPositiveOrientation(o) {
		return rayAndOcc.Lsb()
	}
	return rayAndOcc.Msb()
}

func isOrthogonal(o Orientation) bool {
	switch o {
	case N, E, S, W:
		return true
	default:
		return false
	}
}

func compatibleSlider(pt PieceType, o Orientation) bool {
	if isOrthogonal(o) {
		return pt == Rook || pt == Queen
	}
	return pt == Bishop || pt == Queen
}

// Generate analyzes pos and computes attack info, then generates
// every legal move into out (which is cleared first). capturesOnly
// restricts quiet (non capturing) generation - king moves, castling,
// pawn pushes and non capturing slider/knight destinations are
// skipped, but the attack analysis always runs in full so check
// evasions are never missed.
func (mg *Movegen) Generate(pos *position.Position, capturesOnly bool, out *moveslice.MoveSlice) {
	out.Clear()

	us := pos.SideToMove()
	enemy := us.Flip()
	kingSq := pos.KingSquare(us)

	mg.analyze(pos, us, enemy, kingSq)

	friendly := pos.OccupiedBb(us)
	enemyOcc := pos.OccupiedBb(enemy)
	empty := ^pos.OccupiedAll()
	emptyOrEnemy := empty | enemyOcc

	moveTypeMask := Bitboard(BbAll)
	if capturesOnly {
		moveTypeMask = enemyOcc
	}

	mg.generateKingMoves(pos, us, kingSq, friendly, capturesOnly, out)
	if !capturesOnly && mg.info.checkerCount == 0 {
		mg.generateCastling(pos, us, out)
	}

	if mg.info.checkerCount >= 2 {
		return
	}

	mg.generateSliders(pos.OrthogonalSliders(us), Rook, pos, emptyOrEnemy, moveTypeMask, out)
	mg.generateSliders(pos.DiagonalSliders(us), Bishop, pos, emptyOrEnemy, moveTypeMask, out)
	mg.generateKnights(pos, us, emptyOrEnemy, moveTypeMask, out)
	mg.generatePawns(pos, us, enemy, capturesOnly, out)
}

// InCheck reports whether the side to move was found in check by the
// most recent Generate call.
func (mg *Movegen) InCheck() bool {
	return mg.info.checkerCount > 0
}

// analyze runs the pin/check ray walk described for the attack
// analysis pass and fills mg.info.
func (mg *Movegen) analyze(pos *position.Position, us, enemy Color, kingSq Square) {
	mg.info = attackInfo{}
	occNoKing := pos.OccupiedAll() &^ kingSq.Bb()

	var oppAttacks Bitboard
	for b := pos.OrthogonalSliders(enemy); b != BbZero; {
		sq := b.PopLsb()
		oppAttacks |= attacks.GetAttacksBb(Rook, sq, occNoKing)
	}
	for b := pos.DiagonalSliders(enemy); b != BbZero; {
		sq := b.PopLsb()
		oppAttacks |= attacks.GetAttacksBb(Bishop, sq, occNoKing)
	}
	for b := pos.PiecesBb(enemy, Knight); b != BbZero; {
		sq := b.PopLsb()
		oppAttacks |= attacks.GetPseudoAttacks(Knight, sq)
	}
	oppAttacks |= attacks.GetPseudoAttacks(King, pos.KingSquare(enemy))
	oppAttacks |= attacks.PawnAttackSpread(pos.PiecesBb(enemy, Pawn), enemy)
	mg.info.opponentAttacks = oppAttacks

	var checkRay Bitboard
	checkerCount := 0
	occ := pos.OccupiedAll()

	for o := Orientation(0); o < OrientationLength && checkerCount < 2; o++ {
		ray := attacks.Ray(kingSq, o)
		blockers := ray & occ
		if blockers == BbZero {
			continue
		}
		first := nearestBlocker(blockers, o)
		firstPiece := pos.GetPiece(first)

		if firstPiece.ColorOf() == us {
			kingToFirst := attacks.Between(kingSq, first) | first.Bb()
			farRay := ray &^ kingToFirst
			farBlockers := farRay & occ
			if farBlockers == BbZero {
				continue
			}
			second := nearestBlocker(farBlockers, o)
			secondPiece := pos.GetPiece(second)
			if secondPiece.ColorOf() == us {
				continue
			}
			if !compatibleSlider(secondPiece.TypeOf(), o) {
				continue
			}
			mg.info.pinRayOf[first] = attacks.Between(kingSq, second) | second.Bb()
		} else {
			if !compatibleSlider(firstPiece.TypeOf(), o) {
				continue
			}
			checkRay |= attacks.Between(kingSq, first) | first.Bb()
			checkerCount++
		}
	}

	knightCheckers := attacks.GetPseudoAttacks(Knight, kingSq) & pos.PiecesBb(enemy, Knight)
	if knightCheckers != BbZero {
		checkRay |= knightCheckers
		checkerCount += knightCheckers.PopCount()
	}

	pawnCheckers := attacks.GetPawnAttacks(us, kingSq) & pos.PiecesBb(enemy, Pawn)
	if pawnCheckers != BbZero {
		checkRay |= pawnCheckers
		checkerCount += pawnCheckers.PopCount()
	}

	if assert.DEBUG {
		assert.Assert(checkerCount <= 2, "more than two simultaneous checkers on %s is impossible under legal chess rules", kingSq.String())
	}
	if checkerCount > 2 {
		log.Criticalf("king on %s found in check from %d pieces at once, only the first two are honoured", kingSq.String(), checkerCount)
	}

	mg.info.checkerCount = checkerCount
	if checkerCount == 0 {
		mg.info.checkRayBitmask = BbAll
	} else {
		mg.info.checkRayBitmask = checkRay
	}
}

func (mg *Movegen) generateKingMoves(pos *position.Position, us Color, kingSq Square, friendly Bitboard, capturesOnly bool, out *moveslice.MoveSlice) {
	destinations := attacks.GetPseudoAttacks(King, kingSq) &^ friendly &^ mg.info.opponentAttacks
	if capturesOnly {
		destinations &= pos.OccupiedBb(us.Flip())
	}
	for b := destinations; b != BbZero; {
		to := b.PopLsb()
		out.PushBack(CreateNormalMove(kingSq, to))
	}
}

func (mg *Movegen) generateCastling(pos *position.Position, us Color, out *moveslice.MoveSlice) {
	occ := pos.OccupiedAll()
	att := mg.info.opponentAttacks

	if us == White {
		if pos.CastlingRights().Has(CastlingWhiteOO) &&
			occ&(SqF1.Bb()|SqG1.Bb()) == BbZero &&
			att&(SqE1.Bb()|SqF1.Bb()|SqG1.Bb()) == BbZero {
			out.PushBack(CreateMove(SqE1, SqG1, CastleFlag))
		}
		if pos.CastlingRights().Has(CastlingWhiteOOO) &&
			occ&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == BbZero &&
			att&(SqE1.Bb()|SqD1.Bb()|SqC1.Bb()) == BbZero {
			out.PushBack(CreateMove(SqE1, SqC1, CastleFlag))
		}
	} else {
		if pos.CastlingRights().Has(CastlingBlackOO) &&
			occ&(SqF8.Bb()|SqG8.Bb()) == BbZero &&
			att&(SqE8.Bb()|SqF8.Bb()|SqG8.Bb()) == BbZero {
			out.PushBack(CreateMove(SqE8, SqG8, CastleFlag))
		}
		if pos.CastlingRights().Has(CastlingBlackOOO) &&
			occ&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == BbZero &&
			att&(SqE8.Bb()|SqD8.Bb()|SqC8.Bb()) == BbZero {
			out.PushBack(CreateMove(SqE8, SqC8, CastleFlag))
		}
	}
}

func (mg *Movegen) generateSliders(sliders Bitboard, pt PieceType, pos *position.Position, emptyOrEnemy, moveTypeMask Bitboard, out *moveslice.MoveSlice) {
	for b := sliders; b != BbZero; {
		sq := b.PopLsb()
		dest := attacks.GetAttacksBb(pt, sq, pos.OccupiedAll()) & emptyOrEnemy & mg.info.checkRayBitmask & moveTypeMask
		if pin := mg.info.pinRayOf[sq]; pin != BbZero {
			dest &= pin
		}
		for d := dest; d != BbZero; {
			to := d.PopLsb()
			out.PushBack(CreateNormalMove(sq, to))
		}
	}
}

func (mg *Movegen) generateKnights(pos *position.Position, us Color, emptyOrEnemy, moveTypeMask Bitboard, out *moveslice.MoveSlice) {
	for b := pos.PiecesBb(us, Knight); b != BbZero; {
		sq := b.PopLsb()
		if mg.info.pinRayOf[sq] != BbZero {
			continue
		}
		dest := attacks.GetPseudoAttacks(Knight, sq) & emptyOrEnemy & mg.info.checkRayBitmask & moveTypeMask
		for d := dest; d != BbZero; {
			to := d.PopLsb()
			out.PushBack(CreateNormalMove(sq, to))
		}
	}
}

func (mg *Movegen) emitPawnMove(start, target Square, promote, capturesOnly bool, out *moveslice.MoveSlice) {
	if !promote {
		out.PushBack(CreateNormalMove(start, target))
		return
	}
	out.PushBack(CreatePromotionMove(start, target, Queen))
	out.PushBack(CreatePromotionMove(start, target, Knight))
	if capturesOnly {
		return
	}
	out.PushBack(CreatePromotionMove(start, target, Rook))
	out.PushBack(CreatePromotionMove(start, target, Bishop))
}

// generatePawns walks each friendly pawn individually rather than
// batching pushes/captures across the whole pawn bitboard at once;
// this costs a little compared to a fully batched implementation but
// keeps the per-move pin/check-ray test (which needs the pawn's own
// start square) straightforward.
func (mg *Movegen) generatePawns(pos *position.Position, us, enemy Color, capturesOnly bool, out *moveslice.MoveSlice) {
	empty := ^pos.OccupiedAll()
	enemyOcc := pos.OccupiedBb(enemy)
	pawns := pos.PiecesBb(us, Pawn)

	var push, captureLeft, captureRight Direction
	var promotionRank, doublePushRank Rank
	if us == White {
		push, captureLeft, captureRight = North, Northwest, Northeast
		promotionRank, doublePushRank = Rank8, Rank4
	} else {
		push, captureLeft, captureRight = South, Southeast, Southwest
		promotionRank, doublePushRank = Rank1, Rank5
	}

	for b := pawns; b != BbZero; {
		sq := b.PopLsb()
		pin := mg.info.pinRayOf[sq]

		allowed := func(target Square) bool {
			if pin != BbZero && pin&target.Bb() == BbZero {
				return false
			}
			return mg.info.checkRayBitmask&target.Bb() != BbZero
		}

		if !capturesOnly {
			if to := sq.To(push); to != SqNone && empty.Has(to) {
				if allowed(to) {
					mg.emitPawnMove(sq, to, to.RankOf() == promotionRank, capturesOnly, out)
				}
				if to.RankOf() != promotionRank {
					if to2 := to.To(push); to2 != SqNone && empty.Has(to2) && to2.RankOf() == doublePushRank && allowed(to2) {
						out.PushBack(CreateMove(sq, to2, PawnTwoUpFlag))
					}
				}
			}
		}

		if to := sq.To(captureLeft); to != SqNone && enemyOcc.Has(to) && allowed(to) {
			mg.emitPawnMove(sq, to, to.RankOf() == promotionRank, capturesOnly, out)
		}
		if to := sq.To(captureRight); to != SqNone && enemyOcc.Has(to) && allowed(to) {
			mg.emitPawnMove(sq, to, to.RankOf() == promotionRank, capturesOnly, out)
		}
	}

	mg.generateEnPassant(pos, us, enemy, out)
}

func (mg *Movegen) generateEnPassant(pos *position.Position, us, enemy Color, out *moveslice.MoveSlice) {
	epFile := pos.GetEnPassantFile()
	if epFile == 0 {
		return
	}
	var epTarget, capturedSquare Square
	if us == White {
		epTarget = SquareOf(File(epFile-1), Rank6)
		capturedSquare = epTarget.To(South)
	} else {
		epTarget = SquareOf(File(epFile-1), Rank3)
		capturedSquare = epTarget.To(North)
	}

	attackers := capturedSquare.NeighbourFilesMask() & capturedSquare.RankOf().Bb() & pos.PiecesBb(us, Pawn)
	kingSq := pos.KingSquare(us)

	for b := attackers; b != BbZero; {
		attacker := b.PopLsb()

		if pin := mg.info.pinRayOf[attacker]; pin != BbZero && pin&epTarget.Bb() == BbZero {
			continue
		}
		if mg.info.checkRayBitmask&(capturedSquare.Bb()|epTarget.Bb()) == BbZero {
			continue
		}

		occAfter := (pos.OccupiedAll() &^ attacker.Bb() &^ capturedSquare.Bb()) | epTarget.Bb()
		if attacks.GetAttacksBb(Rook, kingSq, occAfter)&pos.OrthogonalSliders(enemy) != BbZero {
			continue
		}

		out.PushBack(CreateMove(attacker, epTarget, EnPassantCaptureFlag))
	}
}
