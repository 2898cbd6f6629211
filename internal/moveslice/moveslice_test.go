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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fkopp/chessmove/internal/types"
)

func TestNewMoveSliceStartsEmpty(t *testing.T) {
	ms := NewMoveSlice(MaxMoves)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, MaxMoves, ms.Cap())
}

func TestPushBackAndAt(t *testing.T) {
	ms := NewMoveSlice(4)
	a := CreateNormalMove(SqE2, SqE4)
	b := CreateNormalMove(SqG1, SqF3)
	ms.PushBack(a)
	ms.PushBack(b)
	require.Equal(t, 2, ms.Len())
	assert.Equal(t, a, ms.At(0))
	assert.Equal(t, b, ms.At(1))
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateNormalMove(SqA2, SqA3))
	assert.Panics(t, func() { ms.At(1) })
	assert.Panics(t, func() { ms.At(-1) })
}

func TestSetReplacesEntry(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateNormalMove(SqA2, SqA3))
	replacement := CreateNormalMove(SqA2, SqA4)
	ms.Set(0, replacement)
	assert.Equal(t, replacement, ms.At(0))
}

func TestClearKeepsCapacity(t *testing.T) {
	ms := NewMoveSlice(10)
	ms.PushBack(CreateNormalMove(SqA2, SqA3))
	ms.PushBack(CreateNormalMove(SqB2, SqB3))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 10, ms.Cap())
}

func TestCloneIsIndependent(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateNormalMove(SqA2, SqA3))
	clone := ms.Clone()
	clone.PushBack(CreateNormalMove(SqB2, SqB3))
	assert.Equal(t, 1, ms.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestEqualsIgnoresOrderingValue(t *testing.T) {
	a := NewMoveSlice(4)
	b := NewMoveSlice(4)
	a.PushBack(CreateNormalMove(SqE2, SqE4).SetValue(100))
	b.PushBack(CreateNormalMove(SqE2, SqE4).SetValue(-50))
	assert.True(t, a.Equals(b))

	b.PushBack(CreateNormalMove(SqG1, SqF3))
	assert.False(t, a.Equals(b), "different lengths must not compare equal")
}

func TestEqualsOrderSensitive(t *testing.T) {
	a := NewMoveSlice(4)
	a.PushBack(CreateNormalMove(SqE2, SqE4))
	a.PushBack(CreateNormalMove(SqG1, SqF3))

	b := NewMoveSlice(4)
	b.PushBack(CreateNormalMove(SqG1, SqF3))
	b.PushBack(CreateNormalMove(SqE2, SqE4))

	assert.False(t, a.Equals(b))
}

func TestForEachVisitsEveryIndexInOrder(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateNormalMove(SqA2, SqA3))
	ms.PushBack(CreateNormalMove(SqB2, SqB3))
	ms.PushBack(CreateNormalMove(SqC2, SqC3))

	var visited []int
	ms.ForEach(func(index int) { visited = append(visited, index) })
	assert.Equal(t, []int{0, 1, 2}, visited)
}

func TestSortOrdersByDescendingValue(t *testing.T) {
	ms := NewMoveSlice(4)
	low := CreateNormalMove(SqA2, SqA3).SetValue(10)
	high := CreateNormalMove(SqB2, SqB3).SetValue(900)
	mid := CreateNormalMove(SqC2, SqC3).SetValue(200)
	unscored := CreateNormalMove(SqD2, SqD3)

	ms.PushBack(low)
	ms.PushBack(high)
	ms.PushBack(unscored)
	ms.PushBack(mid)

	ms.Sort()

	require.Equal(t, 4, ms.Len())
	assert.Equal(t, high, ms.At(0))
	assert.Equal(t, mid, ms.At(1))
	assert.Equal(t, low, ms.At(2))
	assert.Equal(t, unscored, ms.At(3))
}

func TestStringListsEachMove(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateNormalMove(SqE2, SqE4))
	ms.PushBack(CreateNormalMove(SqG1, SqF3))
	s := ms.String()
	assert.Contains(t, s, "[2]")
	assert.Contains(t, s, "e2e4")
	assert.Contains(t, s, "g1f3")
}
