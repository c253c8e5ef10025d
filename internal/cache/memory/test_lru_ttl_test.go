package memory

import (
	"testing"
	"time"
)

func TestLRUTTLSetGet(t *testing.T) {
	c := NewLRUTTL[string, string](4, 0, time.Minute)
	c.Set("a", "1", 1)
	v, ok := c.Get("a")
	if !ok || v != "1" {
		t.Fatalf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
}

func TestLRUTTLEvictsByEntryCount(t *testing.T) {
	c := NewLRUTTL[int, int](2, 0, time.Minute)
	c.Set(1, 1, 0)
	c.Set(2, 2, 0)
	c.Get(1) // make 2 the LRU victim
	c.Set(3, 3, 0)

	if _, ok := c.Get(2); ok {
		t.Fatal("least recently used entry survived eviction")
	}
	if _, ok := c.Get(1); !ok {
		t.Fatal("recently used entry was evicted")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRUTTLEvictsByByteBudget(t *testing.T) {
	c := NewLRUTTL[string, []byte](16, 10, time.Minute)
	c.Set("a", make([]byte, 6), 6)
	c.Set("b", make([]byte, 6), 6)

	if _, ok := c.Get("a"); ok {
		t.Fatal("byte budget exceeded but oldest entry kept")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("newest entry evicted")
	}
}

func TestLRUTTLExpires(t *testing.T) {
	c := NewLRUTTL[string, string](4, 0, 10*time.Millisecond)
	c.Set("a", "1", 1)
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expired entry returned")
	}
}

func TestLRUTTLDelete(t *testing.T) {
	c := NewLRUTTL[string, int](4, 0, time.Minute)
	c.Set("a", 1, 0)
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("deleted entry returned")
	}
	c.Delete("a") // deleting twice is fine
}

func TestLRUTTLNilReceiver(t *testing.T) {
	var c *LRUTTL[string, string]
	c.Set("a", "1", 1)
	if _, ok := c.Get("a"); ok {
		t.Fatal("nil cache returned a value")
	}
	if c.Len() != 0 {
		t.Fatal("nil cache has nonzero length")
	}
}
