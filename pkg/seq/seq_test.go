package seq

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMapSquares(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := Map(in, Square)
	want := []int{1, 4, 9, 16, 25, 36, 49, 64, 81}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map(squares) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, in, "input must stay untouched")
}

func TestMapChangesType(t *testing.T) {
	got := Map([]int{1, 20}, strconv.Itoa)
	assert.Equal(t, []string{"1", "20"}, got)
}

func TestMapEmpty(t *testing.T) {
	got := Map(nil, Square)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		in        []int
		threshold int
		want      []int
	}{
		{name: "keeps order above threshold", in: []int{2, 4, 6, 8, 20, 10}, threshold: 8, want: []int{20, 10}},
		{name: "threshold itself is excluded", in: []int{8, 8, 9}, threshold: 8, want: []int{9}},
		{name: "nothing matches", in: []int{1, 2}, threshold: 8, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.in, GreaterThan(tt.threshold))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForEachVisitsInOrder(t *testing.T) {
	var seen []string
	ForEach([]string{"apple", "banana", "cherry"}, func(s string) {
		seen = append(seen, s)
	})
	assert.Equal(t, []string{"apple", "banana", "cherry"}, seen)
}

func TestMaxSquareOperandFits(t *testing.T) {
	sq := Square(MaxSquareOperand)
	assert.Positive(t, sq)
	assert.Equal(t, MaxSquareOperand, sq/MaxSquareOperand, "square must not wrap")
}
