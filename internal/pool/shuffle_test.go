package pool

import (
	"slices"
	"testing"
)

func TestShuffle_IsPermutation(t *testing.T) {
	s := NewShuffler()
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	Shuffle(s, items)

	sorted := slices.Clone(items)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("shuffle lost or duplicated elements: %v", sorted)
		}
	}
}

func TestShuffle_SeededIsRepeatable(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	b := slices.Clone(a)

	Shuffle(NewSeededShuffler(42), a)
	Shuffle(NewSeededShuffler(42), b)

	if !slices.Equal(a, b) {
		t.Errorf("same seed produced different orders: %v vs %v", a, b)
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	s := NewSeededShuffler(1)

	var empty []int
	Shuffle(s, empty)

	one := []int{7}
	Shuffle(s, one)
	if one[0] != 7 {
		t.Errorf("single element changed: %v", one)
	}
}

func TestShuffle_Uniform(t *testing.T) {
	const (
		n      = 4
		trials = 40000
	)
	s := NewSeededShuffler(2024)

	var counts [n][n]int // counts[value][position]
	for range trials {
		items := []int{0, 1, 2, 3}
		Shuffle(s, items)
		for pos, v := range items {
			counts[v][pos]++
		}
	}

	want := trials / n
	tolerance := want / 20
	for v := range n {
		for pos := range n {
			got := counts[v][pos]
			if got < want-tolerance || got > want+tolerance {
				t.Errorf("value %d at position %d: %d times, want %d±%d", v, pos, got, want, tolerance)
			}
		}
	}
}
