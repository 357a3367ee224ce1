package console

import "testing"

func TestGoidStableAndDistinct(t *testing.T) {
	a := goid()
	if a == 0 {
		t.Fatal("goid returned 0")
	}
	if b := goid(); b != a {
		t.Fatalf("goid unstable within one goroutine: %d then %d", a, b)
	}

	other := make(chan uint64, 1)
	go func() { other <- goid() }()
	if o := <-other; o == a {
		t.Fatalf("two goroutines share goid %d", o)
	}
}
