package notes

import "testing"

var (
	c4        = FromPitchOctave(C, OneLine)
	a4        = FromPitchOctave(A, OneLine)
	anotherA4 = FromPitchOctave(A, OneLine)
)

func TestEquality(t *testing.T) {
	if !a4.Equal(a4) || a4 != anotherA4 || !anotherA4.Equal(a4) {
		t.Errorf("A4 built twice should be equal")
	}
	if a4.Equal(c4) || c4.Equal(a4) {
		t.Errorf("A4 and C4 should differ")
	}
	if EqualPtr(&a4, nil) || EqualPtr(nil, &a4) || EqualPtr(nil, nil) {
		t.Errorf("a nil note is never equal to anything")
	}
	if !EqualPtr(&a4, &anotherA4) {
		t.Errorf("EqualPtr(A4, A4) = false")
	}
}

func TestProperties(t *testing.T) {
	tests := []struct {
		note   Note
		pc     PitchClass
		octave Octave
	}{
		{a4, A, OneLine},
		{c4, C, OneLine},
		{FromPitchOctave(D, DoubleContra), D, DoubleContra},
		{FromPitchOctave(B, DoubleContra), B, DoubleContra},
		{FromSemitones(-1), B, DoubleContra},
		{FromSemitones(-12), C, DoubleContra},
		{FromSemitones(-13), B, -2},
		{FromSemitones(0), C, SubContra},
		{FromSemitones(11), B, SubContra},
	}
	for _, tt := range tests {
		if got := tt.note.PitchClass(); got != tt.pc {
			t.Errorf("%d: PitchClass() = %v, want %v", tt.note.Semitones(), got, tt.pc)
		}
		if got := tt.note.Octave(); got != tt.octave {
			t.Errorf("%d: Octave() = %d, want %d", tt.note.Semitones(), got, tt.octave)
		}
	}
	if FromPitchOctave(D, DoubleContra).PitchClass() != 2 {
		t.Errorf("D in Double Contra should have pitch class value 2")
	}
}

func TestRoundTrip(t *testing.T) {
	for s := -1200; s <= 1200; s++ {
		n := FromSemitones(s)
		back := FromPitchOctave(n.PitchClass(), n.Octave())
		if back != n || back.Semitones() != s {
			t.Fatalf("round trip of %d gave %d", s, back.Semitones())
		}
	}
}

func TestCompare(t *testing.T) {
	for x := -30; x <= 30; x++ {
		for y := -30; y <= 30; y++ {
			nx, ny := FromSemitones(x), FromSemitones(y)
			want := 0
			if x < y {
				want = -1
			} else if x > y {
				want = 1
			}
			if got := nx.Compare(ny); got != want {
				t.Fatalf("Compare(%d, %d) = %d, want %d", x, y, got, want)
			}
			if nx.Compare(ny) != -ny.Compare(nx) {
				t.Fatalf("Compare(%d, %d) is not antisymmetric", x, y)
			}
			if nx.Less(ny) != (x < y) {
				t.Fatalf("Less(%d, %d) = %v", x, y, nx.Less(ny))
			}
		}
	}
}

func TestComparePtr(t *testing.T) {
	if got := ComparePtr(&c4, nil); got != 1 {
		t.Errorf("ComparePtr(C4, nil) = %d, want 1", got)
	}
	if got := ComparePtr(nil, &c4); got != -1 {
		t.Errorf("ComparePtr(nil, C4) = %d, want -1", got)
	}
	if got := ComparePtr(nil, nil); got != 0 {
		t.Errorf("ComparePtr(nil, nil) = %d, want 0", got)
	}
	if got := ComparePtr(&c4, &a4); got != -1 {
		t.Errorf("ComparePtr(C4, A4) = %d, want -1", got)
	}
}

func TestTranspose(t *testing.T) {
	if got := c4.Transpose(9); got != a4 {
		t.Errorf("C4 + 9 = %v, want A4", got)
	}
	if got := c4.Transpose(-1); got != FromPitchOctave(B, Small) {
		t.Errorf("C4 - 1 = %v, want B3", got)
	}
}

func TestNoteAsMapKey(t *testing.T) {
	seen := map[Note]int{}
	seen[a4]++
	seen[anotherA4]++
	seen[MustParse("A4")]++
	if len(seen) != 1 || seen[a4] != 3 {
		t.Errorf("map keyed by note = %v", seen)
	}
}

func TestFromPitchOctaveWrapsInvalidPitchClass(t *testing.T) {
	n := FromPitchOctave(PitchClass(13), OneLine)
	if n != FromPitchOctave(CSharp, TwoLine) {
		t.Errorf("PitchClass(13) in OneLine = %v, want C#5", n)
	}
	if n.PitchClass() != CSharp || n.Octave() != TwoLine {
		t.Errorf("derived %v %d, want C# 5", n.PitchClass(), n.Octave())
	}
	if got := FromPitchOctave(PitchClass(-1), OneLine); got != FromPitchOctave(B, Small) {
		t.Errorf("PitchClass(-1) in OneLine = %v, want B3", got)
	}
}
