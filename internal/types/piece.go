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

// Piece packs a Color and a PieceType into a single byte: bit 3 is
// the color, bits 0-2 are the piece type. PieceNone is zero so a
// freshly zeroed square array reads as empty.
type Piece uint8

// Piece constants, color_bit<<3 | piece_type.
const (
	PieceNone Piece = iota

	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing

	_ // bit 3 unused for white, padding up to the next multiple of 8

	BlackPawn = WhitePawn + 8
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	PieceLength = 16
)

// MakePiece packs a color and piece type into a Piece value.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type, discarding color.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid tests if p represents an occupied square with a valid piece type.
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

var pieceToChar = [PieceLength]byte{
	'-',
	'P', 'N', 'B', 'R', 'Q', 'K', '-',
	'-',
	'p', 'n', 'b', 'r', 'q', 'k', '-',
}

// Char returns the FEN character for the piece (upper case for White,
// lower case for Black).
func (p Piece) Char() byte {
	return pieceToChar[p]
}

// String returns the FEN character for the piece as a string.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar returns the Piece for a FEN character, or PieceNone if
// c is not one of PNBRQKpnbrqk.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return PieceNone
	}
}
