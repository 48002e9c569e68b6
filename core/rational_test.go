package core

import "testing"

func TestNewRationalReducesToLowestTerms(t *testing.T) {
	r := NewRational(NewInteger(4), NewInteger(6))
	rat, ok := r.(Rational)
	if !ok {
		t.Fatalf("4/6 should remain a Rational, got %T", r)
	}
	if !rat.Num.Equal(NewInteger(2)) || !rat.Den.Equal(NewInteger(3)) {
		t.Fatalf("4/6 reduced to %s/%s, want 2/3", rat.Num, rat.Den)
	}
}

func TestNewRationalCollapsesToIntegerWhenDenominatorOne(t *testing.T) {
	r := NewRational(NewInteger(6), NewInteger(3))
	if _, ok := r.(Integer); !ok {
		t.Fatalf("6/3 should collapse to a bare Integer, got %T", r)
	}
	if !r.Equal(NewInteger(2)) {
		t.Fatalf("6/3 = %s, want 2", r.String())
	}
}

func TestNewRationalNormalizesSignToNumerator(t *testing.T) {
	r := NewRational(NewInteger(3), NewInteger(-4))
	rat, ok := r.(Rational)
	if !ok {
		t.Fatalf("3/-4 should remain a Rational, got %T", r)
	}
	if rat.Den.Sign() <= 0 {
		t.Fatalf("denominator must be positive, got %s", rat.Den)
	}
	if rat.Num.Sign() >= 0 {
		t.Fatalf("sign should carry on the numerator, got %s/%s", rat.Num, rat.Den)
	}
}

func TestNewRationalDivisionByZeroPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected a panic for a zero denominator")
		}
	}()
	NewRational(NewInteger(1), NewInteger(0))
}
