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
	"fmt"

	. "github.com/fkopp/chessmove/internal/types"
)

// PositionInfo is the fully-parsed description a Position is loaded
// from. Producing one from FEN or any other text notation is the job
// of a layer above this package; Position itself never parses text.
type PositionInfo struct {
	Squares         [SqLength]Piece
	WhiteToMove     bool
	WhiteOO         bool
	WhiteOOO        bool
	BlackOO         bool
	BlackOOO        bool
	EpFile          int // 0 = none, 1..8 = file a..h
	FiftyMovePly    int
	MoveCount       int // 1-based full-move number
}

// Ply derives the half-move ply count from the 1-based full-move
// number and side to move, per the external interface's fixed formula.
func (pi PositionInfo) Ply() int {
	if pi.WhiteToMove {
		return (pi.MoveCount - 1) * 2
	}
	return (pi.MoveCount-1)*2 + 1
}

func (pi PositionInfo) castlingRights() CastlingRights {
	var cr CastlingRights
	if pi.WhiteOO {
		cr.Add(CastlingWhiteOO)
	}
	if pi.WhiteOOO {
		cr.Add(CastlingWhiteOOO)
	}
	if pi.BlackOO {
		cr.Add(CastlingBlackOO)
	}
	if pi.BlackOOO {
		cr.Add(CastlingBlackOOO)
	}
	return cr
}

// validateKings rejects a PositionInfo that does not have exactly one
// king per side - the one malformed-input case this layer reports as
// an ordinary Go error rather than an assertion or panic.
func (pi PositionInfo) validateKings() error {
	var whiteKings, blackKings int
	for _, pc := range pi.Squares {
		if pc.TypeOf() == King {
			if pc.ColorOf() == White {
				whiteKings++
			} else {
				blackKings++
			}
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("position must have exactly one king per side, got white=%d black=%d", whiteKings, blackKings)
	}
	return nil
}
