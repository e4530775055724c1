package notes

import (
	"math"
	"strconv"
)

// MIDI numbers span [MinMIDI, MaxMIDI]; MIDI 60 is middle C.
const (
	MinMIDI = 0
	MaxMIDI = 127

	middleCMIDI = 60
)

// DefaultReferenceA4 is the concert pitch of A4 in hertz.
const DefaultReferenceA4 = 440.0

var a4Semitones = toSemitones(A, OneLine)

// conversionOptions holds the parameters shared by the conversions.
type conversionOptions struct {
	middleCOctave Octave
	referenceA4   float64
	useSharps     bool
}

// ConversionOption changes a default used by ToMidi, FromMIDI, ToFrequency
// or ToName.
type ConversionOption func(*conversionOptions)

// WithMiddleCOctave sets the octave in which C is MIDI 60. Defaults to OneLine.
func WithMiddleCOctave(o Octave) ConversionOption {
	return func(opts *conversionOptions) {
		opts.middleCOctave = o
	}
}

// WithReferenceA4 sets the frequency of A4 in hertz. Defaults to 440.
func WithReferenceA4(hz float64) ConversionOption {
	return func(opts *conversionOptions) {
		opts.referenceA4 = hz
	}
}

// WithFlats spells accidentals with flats.
func WithFlats() ConversionOption {
	return func(opts *conversionOptions) {
		opts.useSharps = false
	}
}

// WithSharps spells accidentals with sharps. This is the default.
func WithSharps() ConversionOption {
	return func(opts *conversionOptions) {
		opts.useSharps = true
	}
}

func applyConversionOptions(opts ...ConversionOption) conversionOptions {
	o := conversionOptions{
		middleCOctave: OneLine,
		referenceA4:   DefaultReferenceA4,
		useSharps:     true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToMidi returns the MIDI number of n. It fails with a *RangeError if the
// result is outside [0, 127].
func (n Note) ToMidi(opts ...ConversionOption) (int, error) {
	o := applyConversionOptions(opts...)
	midi := middleCMIDI + n.semitones - toSemitones(C, o.middleCOctave)
	if midi < MinMIDI || midi > MaxMIDI {
		return 0, &RangeError{Value: midi, Min: MinMIDI, Max: MaxMIDI}
	}
	return midi, nil
}

// FromMIDI returns the note with the given MIDI number.
func FromMIDI(midi int, opts ...ConversionOption) (Note, error) {
	if midi < MinMIDI || midi > MaxMIDI {
		return Note{}, &RangeError{Value: midi, Min: MinMIDI, Max: MaxMIDI}
	}
	o := applyConversionOptions(opts...)
	return FromSemitones(midi - middleCMIDI + toSemitones(C, o.middleCOctave)), nil
}

// ToFrequency returns the equal tempered frequency of n in hertz.
func (n Note) ToFrequency(opts ...ConversionOption) float64 {
	o := applyConversionOptions(opts...)
	return o.referenceA4 * math.Pow(2, float64(n.semitones-a4Semitones)/SemitonesPerOctave)
}

// ToName spells n as a pitch class followed by its octave number, e.g. "C#4",
// "Db4" with WithFlats, or "B-1".
func (n Note) ToName(opts ...ConversionOption) string {
	o := applyConversionOptions(opts...)
	return n.pitchClass.Name(o.useSharps) + strconv.Itoa(int(n.octave))
}
