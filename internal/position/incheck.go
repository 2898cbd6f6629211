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
	"github.com/fkopp/chessmove/internal/attacks"
	. "github.com/fkopp/chessmove/internal/types"
)

// IsInCheck reports whether the side to move's king currently stands
// on an attacked square. The result is cached: MakeMove/UnmakeMove and
// the null-move pair invalidate the cache rather than recomputing it,
// so repeated queries between mutations are free.
func (p *Position) IsInCheck() bool {
	if p.checkCacheValid {
		return p.checkCache
	}
	p.checkCache = p.computeInCheck(p.nextPlayer)
	p.checkCacheValid = true
	return p.checkCache
}

// computeInCheck tests whether c's king is attacked, by querying the
// magic rook/bishop tables from the king square against the enemy
// slider unions and intersecting knight/pawn attack patterns with the
// enemy knights/pawns.
func (p *Position) computeInCheck(c Color) bool {
	enemy := c.Flip()
	kingSq := p.kingSquare[c]
	occupied := p.allBb

	if attacks.GetAttacksBb(Rook, kingSq, occupied)&p.orthogonalSliders[enemy] != BbZero {
		return true
	}
	if attacks.GetAttacksBb(Bishop, kingSq, occupied)&p.diagonalSliders[enemy] != BbZero {
		return true
	}
	if attacks.GetPseudoAttacks(Knight, kingSq)&p.piecesBb[enemy][Knight] != BbZero {
		return true
	}
	if attacks.GetPawnAttacks(c, kingSq)&p.piecesBb[enemy][Pawn] != BbZero {
		return true
	}
	return false
}
