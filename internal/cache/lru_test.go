package cache

import "testing"

func TestLRUEvictsLeastRecent(t *testing.T) {
	c := New(2)
	c.Add("a", 1)
	c.Add("b", 2)
	if _, ok := c.Get("a"); !ok { // a becomes MRU
		t.Fatal("a missing")
	}
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if v, ok := c.Get("a"); !ok || v.(int) != 1 {
		t.Fatalf("a = %v, %v", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRUUpdateAndRemove(t *testing.T) {
	c := New(4)
	c.Add("k", 1)
	c.Add("k", 2)
	if v, _ := c.Get("k"); v.(int) != 2 {
		t.Fatalf("k = %v, want 2", v)
	}
	c.Remove("k")
	c.Remove("absent")
	if c.Len() != 0 {
		t.Fatalf("Len = %d after remove", c.Len())
	}
}

func TestNewPanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(0)
}
