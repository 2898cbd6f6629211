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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMoveRoundTrip(t *testing.T) {
	m := CreateMove(SqE2, SqE4, PawnTwoUpFlag)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, PawnTwoUpFlag, m.Flag())
	assert.True(t, m.IsPawnDoublePush())
	assert.False(t, m.IsCastle())
	assert.False(t, m.IsEnPassant())
	assert.False(t, m.IsPromotion())
}

func TestCreatePromotionMove(t *testing.T) {
	cases := []struct {
		pt   PieceType
		flag Move
		want PieceType
	}{
		{Queen, PromoteToQueenFlag, Queen},
		{Knight, PromoteToKnightFlag, Knight},
		{Rook, PromoteToRookFlag, Rook},
		{Bishop, PromoteToBishopFlag, Bishop},
	}
	for _, tc := range cases {
		m := CreatePromotionMove(SqE7, SqE8, tc.pt)
		assert.True(t, m.IsPromotion())
		assert.Equal(t, tc.flag, m.Flag())
		assert.Equal(t, tc.want, m.PromotionType())
	}
}

func TestPromotionTypeOfNonPromotionIsNone(t *testing.T) {
	m := CreateNormalMove(SqE2, SqE3)
	assert.False(t, m.IsPromotion())
	assert.Equal(t, PtNone, m.PromotionType())
}

func TestIsValid(t *testing.T) {
	assert.True(t, CreateNormalMove(SqA1, SqA2).IsValid())
	assert.False(t, CreateNormalMove(SqA1, SqA1).IsValid())
	assert.False(t, NullMove().IsValid())
}

func TestNullMoveIsZero(t *testing.T) {
	assert.Equal(t, Move(0), NullMove())
	assert.Equal(t, "-", NullMove().String())
}

func TestValueIgnoredByMoveIdentity(t *testing.T) {
	a := CreateMove(SqD2, SqD4, PawnTwoUpFlag)
	b := a.SetValue(500)
	assert.NotEqual(t, a, b, "SetValue must change the packed representation")
	assert.True(t, SameMove(a, b))
	assert.Equal(t, a, b.MoveOf())
	assert.Equal(t, int16(500), b.Value())
	assert.Equal(t, int16(0), a.Value())
}

func TestSetValueOnNullMoveIsNoOp(t *testing.T) {
	assert.Equal(t, NullMove(), NullMove().SetValue(1234))
}

func TestSetValueNegative(t *testing.T) {
	m := CreateNormalMove(SqB1, SqC3).SetValue(-77)
	assert.Equal(t, int16(-77), m.Value())
}

func TestStringRendersCoordinateNotation(t *testing.T) {
	assert.Equal(t, "e2e4", CreateMove(SqE2, SqE4, PawnTwoUpFlag).String())
	assert.Equal(t, "e7e8q", CreatePromotionMove(SqE7, SqE8, Queen).String())
	assert.Equal(t, "a7a8n", CreatePromotionMove(SqA7, SqA8, Knight).String())
}

func TestStringIgnoresOrderingValue(t *testing.T) {
	m := CreateMove(SqE2, SqE4, PawnTwoUpFlag).SetValue(999)
	assert.Equal(t, "e2e4", m.String())
}
