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

// PieceType represents the six piece kinds plus the empty marker.
// The numbering (Pawn=1 .. King=6) is packed directly into Piece and
// Move encodings, so it must not be reordered.
type PieceType uint8

// PieceType constants.
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	PtLength
)

// IsValid tests if pt is a valid, non-empty piece type.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

const pieceTypeToChar = "-PNBRQK"

// Char returns the upper case FEN character for the piece type.
func (pt PieceType) Char() byte {
	return pieceTypeToChar[pt]
}

var pieceTypeToString = [PtLength]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the English name of the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}
