package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Currency
// ---------------------------------------------------------------------------

func TestNewCurrency_Valid(t *testing.T) {
	tests := []string{"MXN", "USD", "EUR", "JPY"}
	for _, code := range tests {
		c, err := NewCurrency(code)
		if err != nil {
			t.Errorf("NewCurrency(%q) unexpected error: %v", code, err)
		}
		if c.Code() != code {
			t.Errorf("NewCurrency(%q).Code() = %q, want %q", code, c.Code(), code)
		}
		if c.String() != code {
			t.Errorf("NewCurrency(%q).String() = %q, want %q", code, c.String(), code)
		}
	}
}

func TestNewCurrency_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"lowercase", "mxn"},
		{"mixed case", "Mxn"},
		{"too short", "MX"},
		{"too long", "MXNN"},
		{"digits", "MX1"},
		{"special chars", "M$N"},
		{"spaces", "M X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurrency(tt.code)
			if err == nil {
				t.Errorf("NewCurrency(%q) expected error, got nil", tt.code)
			}
		})
	}
}

func TestMustCurrency_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCurrency(\"bad\") did not panic")
		}
	}()
	MustCurrency("bad")
}

// ---------------------------------------------------------------------------
// NewFromString
// ---------------------------------------------------------------------------

func TestNewFromString_Valid(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"120000", "MXN", "120000.0000 MXN"},
		{"0", "MXN", "0.0000 MXN"},
		{"-50.5", "MXN", "-50.5000 MXN"},
		{"99.9999", "USD", "99.9999 USD"},
		{"0.001", "EUR", "0.0010 EUR"},
	}
	for _, tt := range tests {
		m, err := NewFromString(tt.amount, tt.currency)
		if err != nil {
			t.Errorf("NewFromString(%q, %q) unexpected error: %v", tt.amount, tt.currency, err)
			continue
		}
		if got := m.String(); got != tt.want {
			t.Errorf("NewFromString(%q, %q).String() = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestNewFromString_InvalidAmount(t *testing.T) {
	_, err := NewFromString("not-a-number", "MXN")
	if err == nil {
		t.Error("NewFromString with invalid amount expected error, got nil")
	}
}

func TestNewFromString_InvalidCurrency(t *testing.T) {
	_, err := NewFromString("100", "bad")
	if err == nil {
		t.Error("NewFromString with invalid currency expected error, got nil")
	}
}

// ---------------------------------------------------------------------------
// Zero / New
// ---------------------------------------------------------------------------

func TestZero(t *testing.T) {
	z := Zero(MXN)
	if !z.IsZero() {
		t.Error("Zero(MXN).IsZero() = false, want true")
	}
	if z.Currency().Code() != "MXN" {
		t.Errorf("Zero(MXN).Currency().Code() = %q, want %q", z.Currency().Code(), "MXN")
	}
}

func TestNew(t *testing.T) {
	amt := decimal.NewFromInt(42)
	m := New(amt, MXN)
	if !m.Amount().Equal(amt) {
		t.Errorf("New amount = %s, want %s", m.Amount(), amt)
	}
	if m.Currency().Code() != "MXN" {
		t.Errorf("New currency = %q, want %q", m.Currency().Code(), "MXN")
	}
}

// ---------------------------------------------------------------------------
// Predicates: IsZero, IsPositive, IsNegative
// ---------------------------------------------------------------------------

func TestIsZero(t *testing.T) {
	z := Zero(MXN)
	if !z.IsZero() {
		t.Error("expected IsZero true")
	}
	p := New(decimal.NewFromInt(1), MXN)
	if p.IsZero() {
		t.Error("expected IsZero false for 1")
	}
}

func TestIsPositive(t *testing.T) {
	p := New(decimal.NewFromInt(10), MXN)
	if !p.IsPositive() {
		t.Error("expected IsPositive true for 10")
	}
	z := Zero(MXN)
	if z.IsPositive() {
		t.Error("expected IsPositive false for 0")
	}
	n := New(decimal.NewFromInt(-1), MXN)
	if n.IsPositive() {
		t.Error("expected IsPositive false for -1")
	}
}

func TestIsNegative(t *testing.T) {
	n := New(decimal.NewFromInt(-5), MXN)
	if !n.IsNegative() {
		t.Error("expected IsNegative true for -5")
	}
	z := Zero(MXN)
	if z.IsNegative() {
		t.Error("expected IsNegative false for 0")
	}
	p := New(decimal.NewFromInt(3), MXN)
	if p.IsNegative() {
		t.Error("expected IsNegative false for 3")
	}
}

// ---------------------------------------------------------------------------
// Arithmetic: Add, Subtract, Multiply, Negate, Abs
// ---------------------------------------------------------------------------

func TestAdd_SameCurrency(t *testing.T) {
	// Summing outstanding balances across a node's debt records.
	a := New(decimal.NewFromInt(80_000), MXN)
	b := New(decimal.NewFromInt(40_000), MXN)
	got, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add unexpected error: %v", err)
	}
	want := decimal.NewFromInt(120_000)
	if !got.Amount().Equal(want) {
		t.Errorf("Add amount = %s, want %s", got.Amount(), want)
	}
	if got.Currency().Code() != "MXN" {
		t.Errorf("Add currency = %q, want MXN", got.Currency().Code())
	}
}

func TestAdd_CurrencyMismatch(t *testing.T) {
	a := New(decimal.NewFromInt(10), MXN)
	b := New(decimal.NewFromInt(20), USD)
	_, err := a.Add(b)
	if err == nil {
		t.Error("Add with mismatched currencies expected error, got nil")
	}
}

func TestSubtract_SameCurrency(t *testing.T) {
	a := New(decimal.NewFromInt(30), MXN)
	b := New(decimal.NewFromInt(10), MXN)
	got, err := a.Subtract(b)
	if err != nil {
		t.Fatalf("Subtract unexpected error: %v", err)
	}
	want := decimal.NewFromInt(20)
	if !got.Amount().Equal(want) {
		t.Errorf("Subtract amount = %s, want %s", got.Amount(), want)
	}
}

func TestSubtract_CurrencyMismatch(t *testing.T) {
	a := New(decimal.NewFromInt(30), EUR)
	b := New(decimal.NewFromInt(10), MXN)
	_, err := a.Subtract(b)
	if err == nil {
		t.Error("Subtract with mismatched currencies expected error, got nil")
	}
}

func TestMultiply(t *testing.T) {
	m := New(decimal.NewFromInt(50), MXN)
	factor := decimal.NewFromFloat(1.5)
	got := m.Multiply(factor)
	want := decimal.NewFromFloat(75)
	if !got.Amount().Equal(want) {
		t.Errorf("Multiply amount = %s, want %s", got.Amount(), want)
	}
	if got.Currency().Code() != "MXN" {
		t.Errorf("Multiply currency = %q, want MXN", got.Currency().Code())
	}
}

func TestMultiply_ByZero(t *testing.T) {
	m := New(decimal.NewFromInt(100), MXN)
	got := m.Multiply(decimal.Zero)
	if !got.IsZero() {
		t.Errorf("Multiply by zero = %s, want 0", got.Amount())
	}
}

func TestNegate(t *testing.T) {
	m := New(decimal.NewFromInt(42), MXN)
	neg := m.Negate()
	if !neg.Amount().Equal(decimal.NewFromInt(-42)) {
		t.Errorf("Negate amount = %s, want -42", neg.Amount())
	}

	// Double negate returns original value.
	doubleNeg := neg.Negate()
	if !doubleNeg.Amount().Equal(decimal.NewFromInt(42)) {
		t.Errorf("double Negate amount = %s, want 42", doubleNeg.Amount())
	}
}

func TestNegate_Zero(t *testing.T) {
	z := Zero(MXN)
	neg := z.Negate()
	if !neg.IsZero() {
		t.Errorf("Negate zero = %s, want 0", neg.Amount())
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   int64
	}{
		{"positive", 10, 10},
		{"negative", -10, 10},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(decimal.NewFromInt(tt.amount), MXN)
			got := m.Abs()
			if !got.Amount().Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("Abs(%d) = %s, want %d", tt.amount, got.Amount(), tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Debt aggregation
// ---------------------------------------------------------------------------

func TestAdd_FoldsDebtBalances(t *testing.T) {
	// Mirrors how a node's outstanding balances are folded during graph
	// exploration: MXN records accumulate, records in another currency are
	// skipped rather than failing the whole sum.
	balances := []Money{
		New(decimal.NewFromInt(80_000), MXN),
		New(decimal.NewFromInt(35_000), MXN),
		New(decimal.NewFromInt(5_000), USD),
		New(decimal.NewFromFloat(12_500.50), MXN),
	}

	total := Zero(MXN)
	skipped := 0
	for _, b := range balances {
		sum, err := total.Add(b)
		if err != nil {
			skipped++
			continue
		}
		total = sum
	}

	want := decimal.NewFromFloat(127_500.50)
	if !total.Amount().Equal(want) {
		t.Errorf("folded total = %s, want %s", total.Amount(), want)
	}
	if skipped != 1 {
		t.Errorf("skipped %d records, want 1 (the USD balance)", skipped)
	}
	if total.Currency() != MXN {
		t.Errorf("folded currency = %s, want MXN", total.Currency())
	}
}

// ---------------------------------------------------------------------------
// Equal
// ---------------------------------------------------------------------------

func TestEqual_SameAmountAndCurrency(t *testing.T) {
	a := New(decimal.NewFromInt(100), MXN)
	b := New(decimal.NewFromInt(100), MXN)
	if !a.Equal(b) {
		t.Error("expected Equal true for same amount and currency")
	}
}

func TestEqual_DifferentAmount(t *testing.T) {
	a := New(decimal.NewFromInt(100), MXN)
	b := New(decimal.NewFromInt(200), MXN)
	if a.Equal(b) {
		t.Error("expected Equal false for different amounts")
	}
}

func TestEqual_DifferentCurrency(t *testing.T) {
	a := New(decimal.NewFromInt(100), MXN)
	b := New(decimal.NewFromInt(100), USD)
	if a.Equal(b) {
		t.Error("expected Equal false for different currencies")
	}
}

func TestEqual_DecimalEquivalence(t *testing.T) {
	// 10 and 10.00 should be equal via decimal.Equal.
	a := New(decimal.NewFromInt(10), MXN)
	b, err := NewFromString("10.00", "MXN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Equal(b) {
		t.Error("expected Equal true for decimal-equivalent amounts (10 vs 10.00)")
	}
}

// ---------------------------------------------------------------------------
// String
// ---------------------------------------------------------------------------

func TestString(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		currency Currency
		want     string
	}{
		{decimal.NewFromInt(100), MXN, "100.0000 MXN"},
		{decimal.NewFromFloat(0.5), MXN, "0.5000 MXN"},
		{decimal.NewFromInt(-25), USD, "-25.0000 USD"},
		{decimal.Zero, MXN, "0.0000 MXN"},
		{decimal.NewFromFloat(99.9999), EUR, "99.9999 EUR"},
	}
	for _, tt := range tests {
		m := New(tt.amount, tt.currency)
		if got := m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Immutability: operations must not mutate the original
// ---------------------------------------------------------------------------

func TestImmutability(t *testing.T) {
	original := New(decimal.NewFromInt(10), MXN)
	other := New(decimal.NewFromInt(5), MXN)

	_, _ = original.Add(other)
	_, _ = original.Subtract(other)
	_ = original.Multiply(decimal.NewFromInt(3))
	_ = original.Negate()
	_ = original.Abs()

	if !original.Amount().Equal(decimal.NewFromInt(10)) {
		t.Error("an operation mutated the original Money value")
	}
}

// ---------------------------------------------------------------------------
// Package-level currency vars
// ---------------------------------------------------------------------------

func TestPackageCurrencies(t *testing.T) {
	if MXN.Code() != "MXN" {
		t.Errorf("MXN.Code() = %q, want MXN", MXN.Code())
	}
	if USD.Code() != "USD" {
		t.Errorf("USD.Code() = %q, want USD", USD.Code())
	}
	if EUR.Code() != "EUR" {
		t.Errorf("EUR.Code() = %q, want EUR", EUR.Code())
	}
}
