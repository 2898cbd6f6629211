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

// Package fen is the thin external-notation layer that feeds the
// position core: it turns a FEN string into a position.PositionInfo
// and nothing else. The board representation itself never parses
// text - this package is the one place that does, kept small and
// separate on purpose (no PGN, no SAN/UCI move spelling, no FEN
// writer).
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fkopp/chessmove/internal/position"
	. "github.com/fkopp/chessmove/internal/types"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse reads a FEN string into a position.PositionInfo. Only the
// board layout field is mandatory; side to move, castling rights, en
// passant file, half-move clock and full-move number all default the
// way FEN readers conventionally do when trailing fields are omitted.
func Parse(fenStr string) (position.PositionInfo, error) {
	var info position.PositionInfo
	fenStr = strings.TrimSpace(fenStr)
	fields := strings.Fields(fenStr)
	if len(fields) == 0 {
		return info, fmt.Errorf("fen: empty string")
	}

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			sq = Square(int(sq) + int(c-'0'))
		case c == '/':
			sq = sq.To(South).To(South)
		default:
			pc := PieceFromChar(byte(c))
			if pc == PieceNone {
				return info, fmt.Errorf("fen: invalid piece character %q", c)
			}
			if !sq.IsValid() {
				return info, fmt.Errorf("fen: board layout overruns the board")
			}
			info.Squares[sq] = pc
			sq++
		}
	}
	if sq != SqA2 {
		return info, fmt.Errorf("fen: board layout does not cover exactly 64 squares")
	}

	info.WhiteToMove = true
	info.MoveCount = 1

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			info.WhiteToMove = true
		case "b":
			info.WhiteToMove = false
		default:
			return info, fmt.Errorf("fen: invalid side to move %q", fields[1])
		}
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				info.WhiteOO = true
			case 'Q':
				info.WhiteOOO = true
			case 'k':
				info.BlackOO = true
			case 'q':
				info.BlackOOO = true
			default:
				return info, fmt.Errorf("fen: invalid castling availability character %q", c)
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		epSq := MakeSquare(fields[3])
		if epSq == SqNone {
			return info, fmt.Errorf("fen: invalid en passant square %q", fields[3])
		}
		info.EpFile = int(epSq.FileOf()) + 1
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return info, fmt.Errorf("fen: invalid half-move clock %q", fields[4])
		}
		info.FiftyMovePly = n
	}

	info.MoveCount = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return info, fmt.Errorf("fen: invalid full-move number %q", fields[5])
		}
		info.MoveCount = n
	}

	return info, nil
}

// ParsePosition is a convenience wrapper combining Parse and
// position.FromStartInfo for callers - the perft harness and cmd/perft
// - that only ever want a ready Position from a FEN string.
func ParsePosition(fenStr string) (*position.Position, error) {
	info, err := Parse(fenStr)
	if err != nil {
		return nil, err
	}
	return position.FromStartInfo(info)
}
