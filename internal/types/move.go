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

// Move packs a move into the low 16 bits of a wider 32 bit integer:
// bits 0-5 start square, bits 6-11 target square, bits 12-15 a four
// bit flag. The high 16 bits are reserved for an optional move
// ordering value, set and read through SetValue/Value and ignored by
// every equality/decode operation that only cares about the move
// itself. Move(0) is the null move (a1a1, NoFlag) and is never a legal
// move in any position.
type Move uint32

const (
	moveStartMask  Move = 0x003F
	moveTargetMask Move = 0x0FC0
	moveFlagMask   Move = 0xF000
	moveMask       Move = 0x0000FFFF
	moveValueMask  Move = 0xFFFF0000

	moveTargetShift = 6
	moveFlagShift   = 12
	moveValueShift  = 16
)

// Move flag constants.
const (
	NoFlag Move = iota
	EnPassantCaptureFlag
	CastleFlag
	PawnTwoUpFlag
	PromoteToQueenFlag
	PromoteToKnightFlag
	PromoteToRookFlag
	PromoteToBishopFlag
)

// CreateMove packs a start square, target square and flag into a Move.
func CreateMove(start, target Square, flag Move) Move {
	return Move(start) | Move(target)<<moveTargetShift | flag<<moveFlagShift
}

// CreateNormalMove is a convenience wrapper for CreateMove with NoFlag.
func CreateNormalMove(start, target Square) Move {
	return CreateMove(start, target, NoFlag)
}

// CreatePromotionMove packs a pawn promotion move to the given piece type.
func CreatePromotionMove(start, target Square, promotionType PieceType) Move {
	return CreateMove(start, target, promotionFlagOf(promotionType))
}

func promotionFlagOf(pt PieceType) Move {
	switch pt {
	case Knight:
		return PromoteToKnightFlag
	case Bishop:
		return PromoteToBishopFlag
	case Rook:
		return PromoteToRookFlag
	case Queen:
		return PromoteToQueenFlag
	default:
		return PromoteToQueenFlag
	}
}

// From returns the start square of the move.
func (m Move) From() Square {
	return Square(m & moveStartMask)
}

// To returns the target square of the move.
func (m Move) To() Square {
	return Square((m & moveTargetMask) >> moveTargetShift)
}

// Flag returns the move's four bit flag.
func (m Move) Flag() Move {
	return (m & moveFlagMask) >> moveFlagShift
}

// IsCastle tests if the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag() == CastleFlag
}

// IsEnPassant tests if the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == EnPassantCaptureFlag
}

// IsPawnDoublePush tests if the move is a two square pawn advance.
func (m Move) IsPawnDoublePush() bool {
	return m.Flag() == PawnTwoUpFlag
}

// IsPromotion tests if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= PromoteToQueenFlag
}

// PromotionType returns the piece type a promotion move promotes to.
// Only meaningful when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	switch m.Flag() {
	case PromoteToKnightFlag:
		return Knight
	case PromoteToBishopFlag:
		return Bishop
	case PromoteToRookFlag:
		return Rook
	case PromoteToQueenFlag:
		return Queen
	default:
		return PtNone
	}
}

// IsValid does a structural sanity check - both squares must be on
// the board and distinct. It says nothing about legality in any
// given position.
func (m Move) IsValid() bool {
	return m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// NullMove returns the move used as a sentinel for "no move".
func NullMove() Move {
	return Move(0)
}

// MoveOf strips any move ordering value, leaving only the packed
// start/target/flag bits.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// Value returns the move ordering value stored in the high 16 bits.
func (m Move) Value() int16 {
	return int16(uint16(m >> moveValueShift))
}

// SetValue returns a copy of m with its ordering value replaced by v.
// Setting a value on the null move is a no-op, since NullMove() must
// stay exactly zero.
func (m Move) SetValue(v int16) Move {
	if m.MoveOf() == NullMove() {
		return m
	}
	return m.MoveOf() | Move(uint16(v))<<moveValueShift
}

// SameMove compares the move portion of two moves, ignoring any
// ordering value either one carries.
func SameMove(a, b Move) bool {
	return a.MoveOf() == b.MoveOf()
}

// String renders the move in plain coordinate notation (e.g. "e2e4",
// "e7e8q" for promotions), ignoring any ordering value.
func (m Move) String() string {
	if m.MoveOf() == NullMove() {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.PromotionType().Char() | 0x20) // lower case
	}
	return s
}
