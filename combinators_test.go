// Copyright 2025 The Filtro Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filtro

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnd_ProducesFlatPair(t *testing.T) {
	req := mustRequest(t, "GET", "/42", Header{Name: "X-Trace", Value: "abc"})
	c := NewMatchContext(req)

	f := And(Param(strconv.Atoi), Header("X-Trace"))
	v, ok := f.Match(c)
	require.True(t, ok)
	assert.Equal(t, 42, v.First)
	assert.Equal(t, "abc", v.Second)
	assert.True(t, c.IsExhausted())
}

func TestAndL_FailedRightOperandRestoresCursor(t *testing.T) {
	req := mustRequest(t, "GET", "/a/c")
	c := NewMatchContext(req)

	f := AndL(PathLit("a"), PathLit("b"))
	_, ok := f.Match(c)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Cursor(), "AndL must restore the cursor when the right operand fails after the left already consumed segments")
}

func TestAndR_FailedRightOperandRestoresCursor(t *testing.T) {
	req := mustRequest(t, "GET", "/a/c")
	c := NewMatchContext(req)

	f := AndR(PathLit("a"), PathLit("b"))
	_, ok := f.Match(c)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Cursor(), "AndR must restore the cursor when the right operand fails after the left already consumed segments")
}

func TestAnd_FailedRightOperandRestoresCursor(t *testing.T) {
	req := mustRequest(t, "GET", "/42/c")
	c := NewMatchContext(req)

	f := And(Param(strconv.Atoi), PathLit("b"))
	_, ok := f.Match(c)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Cursor(), "And must restore the cursor when the right operand fails after the left already consumed segments")
}

func TestAnd3_FailedRightOperandRestoresCursor(t *testing.T) {
	req := mustRequest(t, "GET", "/users/42/posts/notanumber")
	c := NewMatchContext(req)

	_, ok := PathLit("users").Match(c)
	require.True(t, ok)
	mark := c.Cursor()

	pair := And(Param(strconv.Atoi), PathLit("posts"))
	triple := And3(pair, Param(strconv.Atoi))
	_, ok = triple.Match(c)
	assert.False(t, ok)
	assert.Equal(t, mark, c.Cursor(), "And3 must restore the cursor when the right operand fails after the left already consumed segments")
}

func TestAnd3_FlattensRatherThanNests(t *testing.T) {
	req := mustRequest(t, "GET", "/users/42/posts/7")
	c := NewMatchContext(req)

	_, ok := PathLit("users").Match(c)
	require.True(t, ok)

	pair := And(Param(strconv.Atoi), PathLit("posts"))
	triple := And3(pair, Param(strconv.Atoi))

	v, ok := triple.Match(c)
	require.True(t, ok)
	assert.Equal(t, 42, v.First)
	assert.Equal(t, 7, v.Third)
	assert.True(t, c.IsExhausted())
}

func TestOr_LeftBranchHasPriority(t *testing.T) {
	req := mustRequest(t, "GET", "/a")
	c := NewMatchContext(req)

	combined := Or(PathLit("a"), PathLit("a"))
	v, ok := combined.Match(c)
	require.True(t, ok)
	assert.True(t, v.IsLeft(), "when both branches would match, Or must prefer the left one")
}

func TestOr_FallsBackToRightBranch(t *testing.T) {
	req := mustRequest(t, "GET", "/b")
	c := NewMatchContext(req)

	combined := Or(PathLit("a"), PathLit("b"))
	v, ok := combined.Match(c)
	require.True(t, ok)
	assert.False(t, v.IsLeft())
	_, ok = v.Right()
	assert.True(t, ok)
}

func TestOr_LeftFailureDoesNotLeakCursorProgressIntoRight(t *testing.T) {
	// "a/b" should not be partially consumed by a failing left branch
	// before the right branch is tried against the same starting point.
	req := mustRequest(t, "GET", "/a/c")
	c := NewMatchContext(req)

	combined := Or(PathLit("a/b"), PathLit("a/c"))
	v, ok := combined.Match(c)
	require.True(t, ok)
	assert.False(t, v.IsLeft())
	assert.True(t, c.IsExhausted())
}

func TestOr_NoMatchLeavesCursorAtStart(t *testing.T) {
	req := mustRequest(t, "GET", "/z")
	c := NewMatchContext(req)

	combined := Or(PathLit("a"), PathLit("b"))
	_, ok := combined.Match(c)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Cursor())
}

func TestMap_TransformsExtractedValueOnly(t *testing.T) {
	req := mustRequest(t, "GET", "/7")
	c := NewMatchContext(req)

	doubled := Map(Param(strconv.Atoi), func(n int) int { return n * 2 })
	v, ok := doubled.Match(c)
	assert.True(t, ok)
	assert.Equal(t, 14, v)
}

func TestMaybe_PresentYieldsSome(t *testing.T) {
	req := mustRequest(t, "GET", "/7")
	c := NewMatchContext(req)

	opt := Maybe(Param(strconv.Atoi))
	v, ok := opt.Match(c)
	require.True(t, ok)
	val, present := v.Get()
	assert.True(t, present)
	assert.Equal(t, 7, val)
}

func TestMaybe_AbsentYieldsNoneAndStillMatches(t *testing.T) {
	req := mustRequest(t, "GET", "/not-a-number")
	c := NewMatchContext(req)

	opt := Maybe(Param(strconv.Atoi))
	v, ok := opt.Match(c)
	require.True(t, ok, "Maybe must match even when its inner filter does not")
	_, present := v.Get()
	assert.False(t, present)
	assert.Equal(t, 0, c.Cursor(), "a non-matching Maybe must not consume the segment it peeked at")
}
