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

import "fmt"

// Direction is a square index delta used to step across the board.
type Direction int8

// Direction constants. North is toward higher ranks (+8 squares).
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -North
	West      Direction = -East
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// String returns a short label for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case Northeast:
		return "NE"
	case Southeast:
		return "SE"
	case Southwest:
		return "SW"
	case Northwest:
		return "NW"
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Orientation enumerates the eight ray directions from a square, used
// to index precomputed ray and pin/check-line tables.
type Orientation uint8

// Orientation constants.
const (
	N Orientation = iota
	NE
	E
	SE
	S
	SW
	W
	NW

	OrientationLength
)

// IsValid tests if o is a valid Orientation value.
func (o Orientation) IsValid() bool {
	return o < OrientationLength
}

// String returns a string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		panic(fmt.Sprintf("invalid orientation %d", o))
	}
}

// ToDirection maps an Orientation to its Direction delta.
func (o Orientation) ToDirection() Direction {
	switch o {
	case N:
		return North
	case NE:
		return Northeast
	case E:
		return East
	case SE:
		return Southeast
	case S:
		return South
	case SW:
		return Southwest
	case W:
		return West
	case NW:
		return Northwest
	default:
		panic(fmt.Sprintf("invalid orientation %d", o))
	}
}
