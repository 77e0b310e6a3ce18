package ids

import "testing"

func TestNextIDFreshPerCall(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NextID()
		if id == "" {
			t.Fatalf("NextID returned empty id on call %d", i)
		}
		if seen[id] {
			t.Fatalf("NextID repeated id %q on call %d", id, i)
		}
		seen[id] = true
	}
}
