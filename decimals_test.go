package rebalance

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDecimals_LoadsOnce(t *testing.T) {
	loads := 0
	d := NewDecimalsWithLoader(func() (*Factory, error) {
		loads++
		return &Factory{}, nil
	})

	f1, err := d.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	f2, err := d.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
	if f1 != f2 {
		t.Errorf("Get() returned different factories across calls")
	}
}

func TestDecimals_FailureIsNotCached(t *testing.T) {
	loads := 0
	d := NewDecimalsWithLoader(func() (*Factory, error) {
		loads++
		if loads == 1 {
			return nil, errors.New("boom")
		}
		return &Factory{}, nil
	})

	if _, err := d.Get(); !errors.Is(err, ErrLibraryUnavailable) {
		t.Fatalf("Get() error = %v, want ErrLibraryUnavailable", err)
	}
	// the failure must not poison the cache: this call retries and succeeds.
	if _, err := d.Get(); err != nil {
		t.Fatalf("Get() after failed load error = %v", err)
	}
	if loads != 2 {
		t.Errorf("loader ran %d times, want 2", loads)
	}
}

func TestDecimals_ConcurrentFirstCallersShareOneLoad(t *testing.T) {
	loads := 0
	d := NewDecimalsWithLoader(func() (*Factory, error) {
		loads++
		time.Sleep(10 * time.Millisecond)
		return &Factory{}, nil
	})

	const callers = 16
	var wg sync.WaitGroup
	factories := make([]*Factory, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := d.Get()
			if err != nil {
				t.Errorf("Get() error = %v", err)
			}
			factories[i] = f
		}(i)
	}
	wg.Wait()

	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
	for i := 1; i < callers; i++ {
		if factories[i] != factories[0] {
			t.Fatalf("caller %d observed a different factory", i)
		}
	}
}

func TestFactory_MaxMin(t *testing.T) {
	f, err := NewDecimals().Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got := f.MaxMoney(USD(10), USD(20)); !got.Equal(USD(20)) {
		t.Errorf("MaxMoney(10, 20) = %s, want $20.00", got)
	}
	if got := f.MinMoney(USD(10), USD(20)); !got.Equal(USD(10)) {
		t.Errorf("MinMoney(10, 20) = %s, want $10.00", got)
	}
	if got := f.MinQuantity(Q(3), Q(7)); !got.Equal(Q(3)) {
		t.Errorf("MinQuantity(3, 7) = %s, want 3", got)
	}
	if got := f.Max(f.New(1.5), f.New(2.5)); !got.Equal(f.New(2.5)) {
		t.Errorf("Max(1.5, 2.5) = %s, want 2.5", got)
	}
	if got := f.Min(f.New(1.5), f.New(2.5)); !got.Equal(f.New(1.5)) {
		t.Errorf("Min(1.5, 2.5) = %s, want 1.5", got)
	}
}
