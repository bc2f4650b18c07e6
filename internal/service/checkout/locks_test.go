package checkout

import (
	"sync"
	"testing"
)

func TestKeyedLocksSerializePerKey(t *testing.T) {
	locks := newKeyedLocks()

	const workers = 16
	var inCritical, maxSeen int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire("same-key")
			defer release()
			mu.Lock()
			inCritical++
			if inCritical > maxSeen {
				maxSeen = inCritical
			}
			mu.Unlock()
			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("critical section overlap: max %d holders", maxSeen)
	}
	if len(locks.entries) != 0 {
		t.Fatalf("lock entries leaked: %d remain", len(locks.entries))
	}
}

func TestKeyedLocksIndependentKeys(t *testing.T) {
	locks := newKeyedLocks()

	release1 := locks.acquire("a")
	done := make(chan struct{})
	go func() {
		release2 := locks.acquire("b")
		release2()
		close(done)
	}()
	<-done
	release1()

	if len(locks.entries) != 0 {
		t.Fatalf("lock entries leaked: %d remain", len(locks.entries))
	}
}
