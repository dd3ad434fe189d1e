package fourq

import (
	"errors"
	"strings"
	"testing"
)

func TestPointIdentity(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var p Point
		if !p.IsIdentity() {
			t.Error("zero value should be the identity")
		}
		if !p.Equal(IdentityPoint()) {
			t.Error("zero value should equal IdentityPoint")
		}
	})

	t.Run("encoding", func(t *testing.T) {
		raw := IdentityPoint().Bytes()
		if raw[0] != 0x01 {
			t.Errorf("identity byte 0 = %#x, want 0x01", raw[0])
		}
		for i := 1; i < RawSize; i++ {
			if raw[i] != 0 {
				t.Errorf("identity byte %d = %#x, want 0", i, raw[i])
			}
		}
	})

	t.Run("hex form is reversed", func(t *testing.T) {
		want := strings.Repeat("00", RawSize-1) + "01"
		if got := IdentityPoint().String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("neutral element", func(t *testing.T) {
		g := GeneratorPoint()
		if !g.Add(IdentityPoint()).Equal(g) {
			t.Error("G + 0 should equal G")
		}
		if !IdentityPoint().Add(g).Equal(g) {
			t.Error("0 + G should equal G")
		}
	})
}

func TestPointRoundTrip(t *testing.T) {
	g := GeneratorPoint()

	t.Run("raw", func(t *testing.T) {
		got, err := NewPointFromBytes(g.Bytes())
		if err != nil {
			t.Fatalf("NewPointFromBytes: %v", err)
		}
		if !got.Equal(g) {
			t.Error("raw round trip changed the point")
		}
	})

	t.Run("hex", func(t *testing.T) {
		got, err := ParsePoint(g.String())
		if err != nil {
			t.Fatalf("ParsePoint(%q): %v", g.String(), err)
		}
		if !got.Equal(g) {
			t.Error("hex round trip changed the point")
		}
	})

	t.Run("identity", func(t *testing.T) {
		got, err := NewPointFromBytes(IdentityPoint().Bytes())
		if err != nil {
			t.Fatalf("NewPointFromBytes: %v", err)
		}
		if !got.IsIdentity() {
			t.Error("decoded identity should be the identity")
		}
	})
}

// TestPointLadder walks i·G for i = 1..64 by repeated addition and checks each
// step against the fixed-base multiplication and its own hex round trip.
func TestPointLadder(t *testing.T) {
	g := GeneratorPoint()
	acc := IdentityPoint()
	for i := uint64(1); i <= 64; i++ {
		acc = acc.Add(g)

		mul, err := MulBase(NewScalar(i))
		if err != nil {
			t.Fatalf("MulBase(%d): %v", i, err)
		}
		if !mul.Equal(acc) {
			t.Fatalf("step %d: repeated addition and MulBase disagree", i)
		}

		back, err := ParsePoint(acc.String())
		if err != nil {
			t.Fatalf("step %d: ParsePoint: %v", i, err)
		}
		if !back.Equal(acc) {
			t.Fatalf("step %d: hex round trip changed the point", i)
		}
	}
}

func TestPointGroupLaws(t *testing.T) {
	g := GeneratorPoint()

	t.Run("doubling", func(t *testing.T) {
		twoG, err := g.Mul(NewScalar(2))
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if !twoG.Equal(g.Add(g)) {
			t.Error("2·G should equal G + G")
		}
	})

	t.Run("commutativity", func(t *testing.T) {
		p, err := MulBase(NewScalar(3))
		if err != nil {
			t.Fatalf("MulBase: %v", err)
		}
		q, err := MulBase(NewScalar(5))
		if err != nil {
			t.Fatalf("MulBase: %v", err)
		}
		if !p.Add(q).Equal(q.Add(p)) {
			t.Error("P + Q should equal Q + P")
		}
	})

	t.Run("subtraction", func(t *testing.T) {
		if !g.Sub(g).IsIdentity() {
			t.Error("G - G should be the identity")
		}
		p, _ := MulBase(NewScalar(9))
		q, _ := MulBase(NewScalar(4))
		want, _ := MulBase(NewScalar(5))
		if !p.Sub(q).Equal(want) {
			t.Error("9·G - 4·G should equal 5·G")
		}
	})

	t.Run("negation", func(t *testing.T) {
		if !g.Add(g.Negate()).IsIdentity() {
			t.Error("G + (-G) should be the identity")
		}
		if !g.Negate().Negate().Equal(g) {
			t.Error("-(-G) should equal G")
		}
		if !IdentityPoint().Negate().IsIdentity() {
			t.Error("-0 should be the identity")
		}
	})
}

func TestPointScalarMul(t *testing.T) {
	g := GeneratorPoint()

	t.Run("fixed base matches variable base", func(t *testing.T) {
		for _, k := range []Scalar{ZeroScalar(), NewScalar(1), NewScalar(2), NewScalar(1000003), Order().Sub(NewScalar(1))} {
			fixed, err := MulBase(k)
			if err != nil {
				t.Fatalf("MulBase: %v", err)
			}
			variable, err := g.Mul(k)
			if err != nil {
				t.Fatalf("Mul: %v", err)
			}
			if !fixed.Equal(variable) {
				t.Errorf("k=%s: MulBase and G.Mul disagree", k)
			}
		}
	})

	t.Run("distributes over scalar addition", func(t *testing.T) {
		a, b := NewScalar(111), NewScalar(222)
		left, err := MulBase(a.Add(b))
		if err != nil {
			t.Fatalf("MulBase: %v", err)
		}
		pa, _ := MulBase(a)
		pb, _ := MulBase(b)
		if !left.Equal(pa.Add(pb)) {
			t.Error("(a+b)·G should equal a·G + b·G")
		}
	})

	t.Run("zero scalar", func(t *testing.T) {
		p, err := g.Mul(ZeroScalar())
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if !p.IsIdentity() {
			t.Error("0·G should be the identity")
		}
	})

	t.Run("order scalar", func(t *testing.T) {
		p, err := g.Mul(Order())
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if !p.IsIdentity() {
			t.Error("N·G should be the identity")
		}
		p, err = MulBase(Order())
		if err != nil {
			t.Fatalf("MulBase: %v", err)
		}
		if !p.IsIdentity() {
			t.Error("fixed-base N·G should be the identity")
		}
	})
}

func TestPointMulAdd(t *testing.T) {
	p, err := MulBase(NewScalar(13))
	if err != nil {
		t.Fatalf("MulBase: %v", err)
	}

	cases := []struct {
		name   string
		mG, mP Scalar
	}{
		{"both zero", ZeroScalar(), ZeroScalar()},
		{"base only", NewScalar(21), ZeroScalar()},
		{"point only", ZeroScalar(), NewScalar(34)},
		{"both", NewScalar(55), NewScalar(89)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.MulAdd(tc.mG, tc.mP)
			if err != nil {
				t.Fatalf("MulAdd: %v", err)
			}
			base, err := MulBase(tc.mG)
			if err != nil {
				t.Fatalf("MulBase: %v", err)
			}
			vari, err := p.Mul(tc.mP)
			if err != nil {
				t.Fatalf("Mul: %v", err)
			}
			if !got.Equal(base.Add(vari)) {
				t.Error("MulAdd should equal MulBase + Mul")
			}
		})
	}
}

func TestPointDecodeErrors(t *testing.T) {
	t.Run("low-order point raw", func(t *testing.T) {
		// The all-zero encoding decodes to a point of order 4, on the curve
		// but outside the prime-order subgroup.
		var raw [RawSize]byte
		_, err := NewPointFromBytes(raw)
		if !errors.Is(err, ErrPointValidation) {
			t.Errorf("got %v, want ErrPointValidation", err)
		}
	})

	t.Run("low-order point hex", func(t *testing.T) {
		_, err := ParsePoint(strings.Repeat("00", RawSize))
		if !errors.Is(err, ErrPointValidation) {
			t.Errorf("got %v, want ErrPointValidation", err)
		}
	})

	t.Run("short hex", func(t *testing.T) {
		_, err := ParsePoint("abcd")
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("got %v, want ErrInvalidLength", err)
		}
	})

	t.Run("bad hex digit", func(t *testing.T) {
		_, err := ParsePoint("0g" + strings.Repeat("00", RawSize-1))
		if !errors.Is(err, ErrInvalidHexDigit) {
			t.Errorf("got %v, want ErrInvalidHexDigit", err)
		}
	})
}

func TestPointOrdering(t *testing.T) {
	g := GeneratorPoint()
	twoG := g.Add(g)

	if g.Less(g) {
		t.Error("p < p should be false")
	}
	if g.Less(twoG) == twoG.Less(g) {
		t.Error("exactly one of p<q, q<p should hold for distinct points")
	}
}
