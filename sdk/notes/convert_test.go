package notes

import (
	"errors"
	"math"
	"testing"
)

func TestToMidi(t *testing.T) {
	tests := []struct {
		note Note
		opts []ConversionOption
		want int
	}{
		{c4, nil, 60},
		{a4, nil, 69},
		{FromPitchOctave(C, DoubleContra), nil, 0},
		{FromPitchOctave(G, SixLine), nil, 127},
		{c4, []ConversionOption{WithMiddleCOctave(Small)}, 72},
		{FromPitchOctave(C, Small), []ConversionOption{WithMiddleCOctave(Small)}, 60},
		{FromPitchOctave(C, TwoLine), []ConversionOption{WithMiddleCOctave(TwoLine)}, 60},
	}
	for _, tt := range tests {
		got, err := tt.note.ToMidi(tt.opts...)
		if err != nil {
			t.Errorf("%v.ToMidi() error: %v", tt.note, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.ToMidi() = %d, want %d", tt.note, got, tt.want)
		}
	}
}

func TestToMidiRange(t *testing.T) {
	for _, n := range []Note{
		FromPitchOctave(C, DoubleContra).Transpose(-1),
		FromPitchOctave(G, SixLine).Transpose(1),
	} {
		_, err := n.ToMidi()
		if !errors.Is(err, ErrRange) {
			t.Errorf("%d: ToMidi() error = %v, want ErrRange", n.Semitones(), err)
		}
		var re *RangeError
		if !errors.As(err, &re) || (re.Value != -1 && re.Value != 128) {
			t.Errorf("%d: ToMidi() error = %#v", n.Semitones(), err)
		}
	}
	if _, err := FromPitchOctave(G, SixLine).ToMidi(WithMiddleCOctave(Small)); !errors.Is(err, ErrRange) {
		t.Errorf("G9 relative to C3 should overflow, got %v", err)
	}
}

func TestFromMIDI(t *testing.T) {
	for m := MinMIDI; m <= MaxMIDI; m++ {
		n, err := FromMIDI(m)
		if err != nil {
			t.Fatalf("FromMIDI(%d) error: %v", m, err)
		}
		if got, _ := n.ToMidi(); got != m {
			t.Fatalf("FromMIDI(%d).ToMidi() = %d", m, got)
		}
	}
	if n, _ := FromMIDI(60, WithMiddleCOctave(Small)); n != FromPitchOctave(C, Small) {
		t.Errorf("FromMIDI(60) relative to C3 = %v", n)
	}
	for _, m := range []int{-1, 128} {
		if _, err := FromMIDI(m); !errors.Is(err, ErrRange) {
			t.Errorf("FromMIDI(%d) error = %v", m, err)
		}
	}
}

func TestToFrequency(t *testing.T) {
	tests := []struct {
		note Note
		opts []ConversionOption
		want float64
	}{
		{a4, nil, 440},
		{FromPitchOctave(A, TwoLine), nil, 880},
		{FromPitchOctave(A, Small), nil, 220},
		{c4, nil, 261.6255653005986},
		{a4, []ConversionOption{WithReferenceA4(432)}, 432},
		{FromPitchOctave(A, DoubleContra), nil, 13.75},
	}
	for _, tt := range tests {
		if got := tt.note.ToFrequency(tt.opts...); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v.ToFrequency() = %v, want %v", tt.note, got, tt.want)
		}
	}
}

func TestToName(t *testing.T) {
	tests := []struct {
		note Note
		opts []ConversionOption
		want string
	}{
		{c4, nil, "C4"},
		{FromPitchOctave(CSharp, OneLine), nil, "C#4"},
		{FromPitchOctave(CSharp, OneLine), []ConversionOption{WithFlats()}, "Db4"},
		{FromPitchOctave(CSharp, OneLine), []ConversionOption{WithFlats(), WithSharps()}, "C#4"},
		{FromPitchOctave(E, OneLine), []ConversionOption{WithFlats()}, "E4"},
		{FromPitchOctave(BFlat, DoubleContra), []ConversionOption{WithFlats()}, "Bb-1"},
		{FromPitchOctave(ASharp, DoubleContra), nil, "A#-1"},
		{FromSemitones(-13), nil, "B-2"},
	}
	for _, tt := range tests {
		if got := tt.note.ToName(tt.opts...); got != tt.want {
			t.Errorf("ToName() = %q, want %q", got, tt.want)
		}
	}
	if got := FromPitchOctave(GSharp, Great).String(); got != "G#2" {
		t.Errorf("String() = %q", got)
	}
}
