package utils

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	want := []int{2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter returned %v, want %v", got, want)
	}
}

func TestGroupBy(t *testing.T) {
	got := GroupBy([]string{"W1", "W2", "W1"}, func(s string) string { return s })
	if len(got["W1"]) != 2 || len(got["W2"]) != 1 {
		t.Errorf("GroupBy returned %v", got)
	}
}
