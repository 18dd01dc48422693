// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package enumerable

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMap(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Empty(t, Filter([]int{}, func(int) bool { return true }))

	assert.Equal(t, []string{"2", "4"}, Map(even, strconv.Itoa))
}

func TestAny(t *testing.T) {
	assert.True(t, Any([]int{1, 2, 3}, func(i int) bool { return i > 2 }))
	assert.False(t, Any([]int{1, 2, 3}, func(i int) bool { return i > 3 }))
	assert.False(t, Any(nil, func(int) bool { return true }))
}

func TestReduce(t *testing.T) {
	sum, err := Reduce([]int{1, 2, 3}, 0, func(acc, i int) (int, error) { return acc + i, nil })
	assert.NoError(t, err)
	assert.Equal(t, 6, sum)

	boom := errors.New("boom")
	partial, err := Reduce([]int{1, 2, 3}, 0, func(acc, i int) (int, error) {
		if i == 3 {
			return acc, boom
		}
		return acc + i, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, partial)
}
