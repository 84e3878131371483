package money

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// TestMoney_ConcurrentArithmetic runs arithmetic on shared Money values from
// many goroutines at once. Money is an immutable value type, so every
// operation must return a new value and leave the shared originals untouched.
// Debt aggregation during graph exploration relies on this.
func TestMoney_ConcurrentArithmetic(t *testing.T) {
	base := New(decimal.NewFromInt(120_000), MXN)
	addend := New(decimal.NewFromInt(5_000), MXN)
	subtrahend := New(decimal.NewFromInt(20_000), MXN)
	factor := decimal.NewFromFloat(0.5)

	originalAmount := base.Amount()

	const goroutines = 100

	type result struct {
		sum     Money
		sumErr  error
		diff    Money
		diffErr error
		scaled  Money
	}

	results := make([]result, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()

			r := &results[idx]
			r.sum, r.sumErr = base.Add(addend)
			r.diff, r.diffErr = base.Subtract(subtrahend)
			r.scaled = base.Multiply(factor)
		}(i)
	}

	wg.Wait()

	if !base.Amount().Equal(originalAmount) {
		t.Errorf("shared base amount mutated: got %s, want %s", base.Amount(), originalAmount)
	}
	if base.Currency() != MXN {
		t.Errorf("shared base currency mutated: got %s, want MXN", base.Currency())
	}

	wantSum := decimal.NewFromInt(125_000)
	wantDiff := decimal.NewFromInt(100_000)
	wantScaled := decimal.NewFromInt(60_000)

	for i, r := range results {
		if r.sumErr != nil {
			t.Errorf("goroutine %d: Add returned error: %v", i, r.sumErr)
		} else if !r.sum.Amount().Equal(wantSum) {
			t.Errorf("goroutine %d: Add = %s, want %s", i, r.sum.Amount(), wantSum)
		}

		if r.diffErr != nil {
			t.Errorf("goroutine %d: Subtract returned error: %v", i, r.diffErr)
		} else if !r.diff.Amount().Equal(wantDiff) {
			t.Errorf("goroutine %d: Subtract = %s, want %s", i, r.diff.Amount(), wantDiff)
		}

		if !r.scaled.Amount().Equal(wantScaled) {
			t.Errorf("goroutine %d: Multiply = %s, want %s", i, r.scaled.Amount(), wantScaled)
		}

		for _, m := range []Money{r.sum, r.diff, r.scaled} {
			if m.Currency() != MXN {
				t.Errorf("goroutine %d: result currency is %s, want MXN", i, m.Currency())
			}
		}
	}
}

// TestMoney_ConcurrentCurrencyMismatch verifies that the mismatch check holds
// when the same pair is combined from many goroutines.
func TestMoney_ConcurrentCurrencyMismatch(t *testing.T) {
	pesos := New(decimal.NewFromInt(100), MXN)
	dollars := New(decimal.NewFromInt(100), USD)

	const goroutines = 100

	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = pesos.Add(dollars)
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err == nil {
			t.Errorf("goroutine %d: expected currency mismatch error, got nil", i)
		}
	}
}
