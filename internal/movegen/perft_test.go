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

package movegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkopp/chessmove/internal/fen"
)

// perftCase is one gold-standard (fen, depth, expected nodes) tuple.
// These are the standard perft results quoted across chess engine
// test suites (the "Kiwipete" position included) and are the ultimate
// cross-check on legality, check detection and make/unmake symmetry.
type perftCase struct {
	name  string
	fen   string
	depth int
	nodes uint64
}

var perftCases = []perftCase{
	{"startpos d1", fen.StartFen, 1, 20},
	{"startpos d2", fen.StartFen, 2, 400},
	{"startpos d3", fen.StartFen, 3, 8902},
	{"startpos d4", fen.StartFen, 4, 197281},
	{"kiwipete d3", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3, 97862},
	{"kiwipete d4", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
	{"endgame rook d4", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4, 43238},
	{"promotion heavy d4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RK1 w kq - 0 1", 4, 422333},
	{"discovered check d3", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379},
}

func TestPerftGoldStandard(t *testing.T) {
	for _, tc := range perftCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := NewPerft()
			p.StartPerft(tc.fen, tc.depth)
			assert.Equal(t, tc.nodes, p.Nodes, "node count mismatch for %s at depth %d", tc.fen, tc.depth)
		})
	}
}

func TestPerftGoldStandardLongRunning(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deeper perft scans in short mode")
	}
	long := []perftCase{
		{"startpos d5", fen.StartFen, 5, 4865609},
		{"endgame rook d5", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 5, 674624},
		{"discovered check d4", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2103487},
	}
	for _, tc := range long {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := NewPerft()
			p.StartPerft(tc.fen, tc.depth)
			assert.Equal(t, tc.nodes, p.Nodes)
		})
	}
}

func TestRunPerftMultiParallel(t *testing.T) {
	results, err := RunPerftMultiParallel(context.Background(), fen.StartFen, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, results, 4)
	want := map[int]uint64{1: 20, 2: 400, 3: 8902, 4: 197281}
	for _, r := range results {
		assert.Equal(t, want[r.Depth], r.Nodes, "depth %d", r.Depth)
	}
}
