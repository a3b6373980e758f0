package spectrum

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func fullSet(n int) Set {
	return Set{
		DarkRef:   testutil.DC(1, n),
		DarkSig:   testutil.DC(2, n),
		Ref:       testutil.DC(10, n),
		Sig:       testutil.DC(5, n),
		RefPumped: testutil.DC(9, n),
		SigPumped: testutil.DC(6, n),
	}
}

func TestSetLen(t *testing.T) {
	s := fullSet(100)
	n, err := s.Len()
	if err != nil || n != 100 {
		t.Fatalf("Len() = %d, %v, want 100, nil", n, err)
	}
}

func TestSetLenMismatch(t *testing.T) {
	for _, l := range Labels() {
		t.Run(l.String(), func(t *testing.T) {
			s := fullSet(100)
			if err := s.Put(l, testutil.DC(1, 99)); err != nil {
				t.Fatal(err)
			}
			_, err := s.Len()
			if !errors.Is(err, ErrLengthMismatch) {
				t.Fatalf("err = %v, want ErrLengthMismatch", err)
			}
			var le *LengthError
			if !errors.As(err, &le) {
				t.Fatalf("err = %T, want *LengthError", err)
			}
		})
	}
}

func TestSetGetPut(t *testing.T) {
	var s Set
	spec := Spectrum{1, 2, 3}
	if err := s.Put(SigPumped, spec); err != nil {
		t.Fatal(err)
	}
	if got := s.Get(SigPumped); len(got) != 3 || got[2] != 3 {
		t.Fatalf("Get(SigPumped) = %v", got)
	}
	if err := s.Put(Label(42), spec); !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("Put(42) err = %v, want ErrUnknownLabel", err)
	}
	if s.Get(Label(-1)) != nil {
		t.Fatal("Get(-1) should be nil")
	}
}

func TestSetCloneIsDeep(t *testing.T) {
	s := fullSet(3)
	c := s.Clone()
	c.Ref[0] = -1
	if s.Ref[0] != 10 {
		t.Fatalf("clone shares storage: s.Ref[0] = %v", s.Ref[0])
	}
}

func TestParseLabel(t *testing.T) {
	for _, l := range Labels() {
		got, err := ParseLabel(l.String())
		if err != nil || got != l {
			t.Fatalf("ParseLabel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLabel("ref_x"); !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("err = %v, want ErrUnknownLabel", err)
	}
	if Label(9).Valid() {
		t.Fatal("Label(9) should be invalid")
	}
}

func TestDarkCorrect(t *testing.T) {
	got, err := DarkCorrect(Spectrum{10, 20, 30, 40, 50}, Spectrum{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{9, 18, 27, 36, 45}, 0)

	if _, err := DarkCorrect(Spectrum{1, 2}, Spectrum{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestChannels(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Channels(3), []float64{0, 1, 2}, 0)
	if Channels(0) != nil {
		t.Fatal("Channels(0) should be nil")
	}
}
