package author

import (
	"slices"
	"testing"
)

func TestRandomPool_ResolvesFromPool(t *testing.T) {
	p := NewRandomPool()
	for i := 0; i < 200; i++ {
		name := p.Resolve()
		if !slices.Contains(DefaultNames, name) {
			t.Fatalf("name %q not in pool", name)
		}
	}
}

func TestRandomPool_UsesEveryIndex(t *testing.T) {
	i := 0
	p := NewRandomPool("A", "B", "C")
	p.intN = func(n int) int {
		defer func() { i++ }()
		return i % n
	}

	got := []string{p.Resolve(), p.Resolve(), p.Resolve(), p.Resolve()}
	want := []string{"A", "B", "C", "A"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaultNames(t *testing.T) {
	if len(DefaultNames) != 10 {
		t.Errorf("expected 10 names, got %d", len(DefaultNames))
	}
	if Fixed("Tom B.").Resolve() != "Tom B." {
		t.Error("Fixed should return its name")
	}
}
