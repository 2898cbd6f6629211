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

package attacks

import (
	"os"
	"testing"

	opLogging "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/chessmove/internal/config"
	"github.com/fkopp/chessmove/internal/fen"
	"github.com/fkopp/chessmove/internal/logging"
	. "github.com/fkopp/chessmove/internal/types"
)

var logTest *opLogging.Logger

// TestMain loads the configuration once for the whole package and
// sets up the test logger the tests below write their boards to.
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func TestBetweenExcludesEndpointsOnLongDiagonal(t *testing.T) {
	between := Between(SqA1, SqH8)
	logTest.Debug("between a1-h8:\n", between.StringBoard())
	assert.True(t, between.Has(SqD4))
	assert.True(t, between.Has(SqE5))
	assert.False(t, between.Has(SqA1))
	assert.False(t, between.Has(SqH8))
}

func TestAlignedRecognisesSharedRankFileAndDiagonal(t *testing.T) {
	assert.True(t, Aligned(SqA1, SqD1, SqH1), "a1, d1, h1 share rank 1")
	assert.True(t, Aligned(SqA1, SqA4, SqA8), "a1, a4, a8 share file a")
	assert.True(t, Aligned(SqA1, SqD4, SqH8), "a1, d4, h8 share the long diagonal")
	assert.False(t, Aligned(SqA1, SqB3, SqH8), "b3 is not on the a1-h8 diagonal")
}

// TestAlignedConfirmsPinCandidate exercises Aligned the way pin
// detection uses it: a pinned piece's own square must stay aligned
// with the king and the pinning slider for the pin to be real.
func TestAlignedConfirmsPinCandidate(t *testing.T) {
	pos, err := fen.ParsePosition("4k3/8/8/8/6b1/8/4N3/3K4 w - - 0 1")
	require.NoError(t, err)
	logTest.Debug("pin position:\n", pos.OccupiedAll().StringBoard())

	kingSq := pos.KingSquare(White)
	knightSq := SqE2
	bishopSq := SqG4
	require.True(t, pos.PiecesBb(Black, Bishop).Has(bishopSq))

	assert.True(t, Aligned(kingSq, knightSq, bishopSq),
		"knight on e2 sits between the white king and the pinning bishop on the d1-h5 diagonal")
}

func TestPawnAttackSpreadMatchesPerSquareLookup(t *testing.T) {
	pawns := SqB2.Bb() | SqC2.Bb() | SqG7.Bb()

	var wantWhite, wantBlack Bitboard
	for b := pawns; b != BbZero; {
		sq := b.PopLsb()
		wantWhite |= GetPawnAttacks(White, sq)
		wantBlack |= GetPawnAttacks(Black, sq)
	}

	assert.Equal(t, wantWhite, PawnAttackSpread(pawns, White))
	assert.Equal(t, wantBlack, PawnAttackSpread(pawns, Black))
}
