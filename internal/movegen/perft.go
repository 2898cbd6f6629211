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
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/chessmove/internal/fen"
	"github.com/fkopp/chessmove/internal/logging"
	"github.com/fkopp/chessmove/internal/moveslice"
	"github.com/fkopp/chessmove/internal/position"
	. "github.com/fkopp/chessmove/internal/types"
	"github.com/fkopp/chessmove/internal/util"
)

var (
	printer  = message.NewPrinter(language.English)
	perftLog = logging.GetPerftLog()
)

// Perft counts the exact number of legal move sequences below a given
// position to a fixed depth, along with a breakdown of move kinds
// encountered at the leaves. It is the gold-standard correctness check
// for the move generator: any bug in legality, check detection or
// make/unmake symmetry eventually shows up as a wrong node count.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnPassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64

	stopFlag bool
}

// NewPerft creates a new, zeroed Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running StartPerft/StartPerftMulti call (driven
// from another goroutine) abandon the scan at the next root move.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft once per depth from startDepth to
// endDepth inclusive, stopping early if Stop is called.
func (perft *Perft) StartPerftMulti(fenStr string, startDepth, endDepth int) {
	perft.stopFlag = false
	for d := startDepth; d <= endDepth; d++ {
		if perft.stopFlag {
			printer.Print("perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fenStr, d)
	}
}

// StartPerft runs a single fixed-depth perft scan from fenStr and
// leaves the totals in perft's fields. If Stop is called from another
// goroutine mid-scan, Nodes is left at 0 and a message is printed.
func (perft *Perft) StartPerft(fenStr string, depth int) {
	perft.stopFlag = false
	depth = util.Max(depth, 1)
	perft.resetCounters()

	pos, err := fen.ParsePosition(fenStr)
	if err != nil {
		printer.Printf("perft: invalid fen %q: %v\n", fenStr, err)
		return
	}

	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	printer.Printf("performing perft test for depth %d\n", depth)
	printer.Printf("fen: %s\n", fenStr)

	start := time.Now()
	result := perft.miniMax(depth, pos, mgList)
	elapsed := time.Since(start)

	if perft.stopFlag {
		perft.Nodes = 0
		printer.Print("perft stopped\n")
		return
	}
	perft.Nodes = result

	nps := util.Nps(perft.Nodes, elapsed)
	perftLog.Debugf("perft depth=%d fen=%q nodes=%d nps=%d elapsed=%s", depth, fenStr, perft.Nodes, nps, elapsed)
	printer.Printf("time         : %s\n", elapsed)
	printer.Printf("nps          : %d nps\n", nps)
	printer.Printf("nodes        : %d\n", perft.Nodes)
	printer.Printf("captures     : %d\n", perft.CaptureCounter)
	printer.Printf("en passant   : %d\n", perft.EnPassantCounter)
	printer.Printf("checks       : %d\n", perft.CheckCounter)
	printer.Printf("checkmates   : %d\n", perft.CheckMateCounter)
	printer.Printf("castles      : %d\n", perft.CastleCounter)
	printer.Printf("promotions   : %d\n", perft.PromotionCounter)
}

// PerftMultiDepthResult is one depth's outcome from RunPerftMultiParallel.
type PerftMultiDepthResult struct {
	Depth int
	Nodes uint64
}

// RunPerftMultiParallel runs perft at every depth in depths concurrently,
// each over its own position cloned from fenStr, and returns the node
// count per depth (in the order depths was given) or the first error
// encountered. Concurrency respects the single-threaded-per-Position
// rule: every goroutine builds and owns its own Position via
// fen.ParsePosition/position.CloneByReplay and never touches another
// goroutine's board.
func RunPerftMultiParallel(ctx context.Context, fenStr string, depths []int) ([]PerftMultiDepthResult, error) {
	results := make([]PerftMultiDepthResult, len(depths))

	basePos, err := fen.ParsePosition(fenStr)
	if err != nil {
		return nil, err
	}

	g, _ := errgroup.WithContext(ctx)
	for i, d := range depths {
		i, d := i, d
		g.Go(func() error {
			pos := position.CloneByReplay(basePos)
			d = util.Max(d, 1)
			mgList := make([]*Movegen, d+1)
			for j := 0; j <= d; j++ {
				mgList[j] = NewMoveGen()
			}
			p := NewPerft()
			nodes := p.miniMax(d, pos, mgList)
			results[i] = PerftMultiDepthResult{Depth: d, Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (perft *Perft) miniMax(depth int, pos *position.Position, mgList []*Movegen) uint64 {
	if perft.stopFlag {
		return 0
	}

	mg := mgList[depth]
	moves := moveslice.NewMoveSlice(moveslice.MaxMoves)
	mg.Generate(pos, false, moves)

	if depth == 1 {
		var leaves uint64
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			perft.countLeaf(pos, mg, m, mgList[0])
			leaves++
		}
		return leaves
	}

	var total uint64
	for i := 0; i < moves.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		m := moves.At(i)
		pos.MakeMove(m, true)
		total += perft.miniMax(depth-1, pos, mgList)
		pos.UnmakeMove(m, true)
	}
	return total
}

// countLeaf applies m at depth 1, classifies it, and unmakes it. mg0 is
// a scratch generator reserved for checkmate detection (it never
// shares attack-info state with the generator walking the move list).
func (perft *Perft) countLeaf(pos *position.Position, mg *Movegen, m Move, mg0 *Movegen) {
	isCapture := pos.GetPiece(m.To()) != PieceNone
	isEnPassant := m.IsEnPassant()
	isCastle := m.IsCastle()
	isPromotion := m.IsPromotion()

	pos.MakeMove(m, true)

	perft.Nodes++
	if isEnPassant {
		perft.EnPassantCounter++
		perft.CaptureCounter++
	} else if isCapture {
		perft.CaptureCounter++
	}
	if isCastle {
		perft.CastleCounter++
	}
	if isPromotion {
		perft.PromotionCounter++
	}
	if pos.IsInCheck() {
		perft.CheckCounter++
		replies := moveslice.NewMoveSlice(moveslice.MaxMoves)
		mg0.Generate(pos, false, replies)
		if replies.Len() == 0 {
			perft.CheckMateCounter++
		}
	}

	pos.UnmakeMove(m, true)
}

func (perft *Perft) resetCounters() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnPassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
