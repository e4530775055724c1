// Package notes models pitches as immutable values in 12-tone equal
// temperament.
//
// A Note is stored as its distance in semitones from C in octave 0 (Sub
// Contra). Pitch class and octave are derived from that number once, at
// construction, so Note values are comparable with == and usable as map keys.
package notes

// Note is a specific pitch.
type Note struct {
	semitones  int
	pitchClass PitchClass
	octave     Octave
}

// toSemitones combines a pitch class and octave into semitones from C0.
func toSemitones(pc PitchClass, octave Octave) int {
	return int(pc) + int(octave)*SemitonesPerOctave
}

// FromSemitones returns the note the given number of semitones away from C0.
// Every other constructor goes through it.
func FromSemitones(semitones int) Note {
	oct := semitones / SemitonesPerOctave
	pc := semitones % SemitonesPerOctave
	if pc < 0 {
		pc += SemitonesPerOctave
		oct--
	}
	return Note{
		semitones:  semitones,
		pitchClass: PitchClass(pc),
		octave:     Octave(oct),
	}
}

// FromPitchOctave returns the note with the given pitch class in octave.
// Reading PitchClass and Octave back yields the inputs when pc.Valid();
// any other pc is counted in semitones from C and wraps into a neighbouring
// octave, so PitchClass(13) in OneLine is C# in TwoLine.
func FromPitchOctave(pc PitchClass, octave Octave) Note {
	return FromSemitones(toSemitones(pc, octave))
}

// Semitones returns the distance from C0 in semitones.
func (n Note) Semitones() int { return n.semitones }

// PitchClass returns the pitch class of n.
func (n Note) PitchClass() PitchClass { return n.pitchClass }

// Octave returns the octave of n. Notes far from the audible range may have
// an octave outside [MinOctave, MaxOctave].
func (n Note) Octave() Octave { return n.octave }

// Transpose returns the note the given number of semitones above n.
// Negative values transpose down.
func (n Note) Transpose(semitones int) Note {
	return FromSemitones(n.semitones + semitones)
}

// Equal reports whether n and other are the same pitch.
func (n Note) Equal(other Note) bool {
	return n.semitones == other.semitones
}

// Compare returns -1 if n is lower than other, 0 if they are the same pitch
// and +1 if n is higher.
func (n Note) Compare(other Note) int {
	switch {
	case n.semitones < other.semitones:
		return -1
	case n.semitones > other.semitones:
		return 1
	}
	return 0
}

// Less reports whether n is lower than other.
func (n Note) Less(other Note) bool {
	return n.semitones < other.semitones
}

// ComparePtr compares two possibly nil notes. A nil note is lower than any
// note; two nil notes compare equal.
func ComparePtr(a, b *Note) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// EqualPtr reports whether a and b are both non-nil and the same pitch.
func EqualPtr(a, b *Note) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}

// String returns the sharp spelled name of n, e.g. "C#4".
func (n Note) String() string {
	return n.ToName()
}
