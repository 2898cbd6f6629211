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
	"github.com/fkopp/chessmove/internal/config"
	. "github.com/fkopp/chessmove/internal/types"
)

// magic holds the fancy magic bitboard entry for a single square: the
// relevant occupancy mask, the magic multiplier, the attack table
// slice for this square, and the shift used to compute table indices.
type magic struct {
	mask    Bitboard
	number  Bitboard
	attacks []Bitboard
	shift   uint
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	occ >>= m.shift
	return uint(occ)
}

var (
	rookDirections   = [4]Direction{North, East, South, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable   [0x19000]Bitboard
	bishopTable [0x1480]Bitboard

	rookMagics   [SqLength]magic
	bishopMagics [SqLength]magic
)

// initMagicsSeed controls which deterministic seed the sparse-random
// search for magic multipliers uses per rank. It can be overridden by
// config before initMagics runs, to reproduce alternate magic sets.
var initMagicsSeed = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// ReseedMagics rebuilds both magic tables from a new base seed, one
// derived seed per rank (base+rank), when config.Settings.Magic.Seed
// is non-zero. Called once at startup, before any Position exists -
// rebuilding tables while attack lookups are in flight would hand out
// inconsistent indices. A zero seed leaves the package-init tables
// (built from the default seed) untouched.
func ReseedMagics() {
	seed := config.Settings.Magic.Seed
	if seed == 0 {
		return
	}
	for r := range initMagicsSeed {
		initMagicsSeed[r] = seed + uint64(r)
	}
	initMagics(rookTable[:], &rookMagics, &rookDirections)
	initMagics(bishopTable[:], &bishopMagics, &bishopDirections)
}

// initMagics runs the fancy-magic-bitboard generation described at
// chessprogramming.org/Magic_Bitboards, adapted from the well known
// Stockfish approach: for every square it derives the relevant
// occupancy mask from an empty-board ray walk, enumerates every
// occupancy subset with the Carry-Rippler trick, and then searches
// for a magic multiplier whose index mapping is collision free for
// that square's subset/attack pairs.
func initMagics(table []Bitboard, magics *[SqLength]magic, directions *[4]Direction) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges = ((BbRank1 | BbRank8) &^ sq.RankOf().Bb()) | ((BbFileA | BbFileH) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())

		if sq == SqA1 {
			m.attacks = table
		} else {
			m.attacks = magics[sq-1].attacks[size:]
		}

		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(initMagicsSeed[sq.RankOf()])

		for i := 0; i < size; {
			for m.number = 0; ; {
				m.number = Bitboard(rng.sparseRand())
				if ((m.number * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four given ray directions from sq
// until it falls off the board or hits an occupied square, accumulating
// every square stepped onto. Used only during table generation.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next := s.To(directions[i])
			if next == SqNone || Distance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is a xorshift64star pseudo random number generator, originally
// due to Sebastiano Vigna, used here purely to pick magic multiplier
// candidates deterministically.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a value whose bits are, on average, only 1/8th
// set - magic multipliers with low popcount converge far faster.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
