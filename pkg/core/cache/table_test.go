package cache

import (
	"errors"
	"sync"
	"testing"
)

type countingObserver struct {
	mu                   sync.Mutex
	hits, misses, filled int
	lastSize             int
}

func (o *countingObserver) Hit(string) {
	o.mu.Lock()
	o.hits++
	o.mu.Unlock()
}

func (o *countingObserver) Miss(string) {
	o.mu.Lock()
	o.misses++
	o.mu.Unlock()
}

func (o *countingObserver) Filled(_ string, size int) {
	o.mu.Lock()
	o.filled++
	o.lastSize = size
	o.mu.Unlock()
}

func TestTable_GetOrCompute(t *testing.T) {
	obs := &countingObserver{}
	table := NewTable[int, string]("years", obs)

	calls := 0
	compute := func() (string, error) {
		calls++
		return "5785", nil
	}

	for i := 0; i < 3; i++ {
		v, err := table.GetOrCompute(5785, compute)
		if err != nil {
			t.Fatalf("GetOrCompute() error = %v", err)
		}
		if v != "5785" {
			t.Errorf("GetOrCompute() = %q", v)
		}
	}

	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
	hits, misses, rate := table.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses", hits, misses)
	}
	if rate < 66 || rate > 67 {
		t.Errorf("hit rate = %v", rate)
	}
	if obs.hits != 2 || obs.misses != 1 || obs.filled != 1 || obs.lastSize != 1 {
		t.Errorf("observer = %+v", obs)
	}
}

func TestTable_ErrorsAreNotStored(t *testing.T) {
	table := NewTable[string, int]("zones", nil)
	boom := errors.New("boom")

	if _, err := table.GetOrCompute("x", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("GetOrCompute() error = %v, want boom", err)
	}
	if table.Size() != 0 {
		t.Errorf("Size() = %d, want 0", table.Size())
	}
	if _, ok := table.Get("x"); ok {
		t.Error("failed computation must not be stored")
	}
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable[int, int]("squares", nil)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				k := k
				v, err := table.GetOrCompute(k, func() (int, error) { return k * k, nil })
				if err != nil || v != k*k {
					t.Errorf("GetOrCompute(%d) = %d, %v", k, v, err)
				}
			}
		}()
	}
	wg.Wait()

	if table.Size() != 100 {
		t.Errorf("Size() = %d, want 100", table.Size())
	}
}

func TestTable_ConcurrentGetCountsEveryLookup(t *testing.T) {
	table := NewTable[int, int]("offsets", nil)
	for k := 0; k < 50; k++ {
		if _, err := table.GetOrCompute(k, func() (int, error) { return k, nil }); err != nil {
			t.Fatalf("GetOrCompute(%d) error = %v", k, err)
		}
	}
	baseHits, baseMisses, _ := table.Stats()

	const goroutines, lookups = 16, 200
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < lookups; i++ {
				// keys 0..99, half of them absent
				table.Get(i % 100)
			}
		}()
	}
	wg.Wait()

	hits, misses, _ := table.Stats()
	if got := (hits - baseHits) + (misses - baseMisses); got != goroutines*lookups {
		t.Errorf("counted %d lookups, want %d", got, goroutines*lookups)
	}
	if hits-baseHits != goroutines*lookups/2 {
		t.Errorf("hits = %d, want %d", hits-baseHits, goroutines*lookups/2)
	}
}
