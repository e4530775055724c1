// Package intervals describes the distance between two notes.
package intervals

import (
	"errors"

	"github.com/leandrodaf/musictheory/sdk/notes"
	"gopkg.in/yaml.v3"
)

// ErrUnknownQuality is returned for quality names or values outside the set.
var ErrUnknownQuality = errors.New("unknown interval quality")

// Interval is a signed distance in semitones together with a quality and a
// diatonic size (1 for a unison, 2 for a second, ...). The three fields are
// independent; nothing checks that they agree.
type Interval struct {
	semitones int
	quality   Quality
	size      uint
}

// New returns an interval with the given fields.
func New(semitones int, quality Quality, size uint) Interval {
	return Interval{semitones: semitones, quality: quality, size: size}
}

// Semitones returns the signed distance in semitones.
func (i Interval) Semitones() int { return i.semitones }

// Quality returns the quality of i.
func (i Interval) Quality() Quality { return i.quality }

// Size returns the diatonic size of i.
func (i Interval) Size() uint { return i.size }

// simple spells the twelve intervals within an octave the usual way,
// with the tritone as an augmented fourth.
var simple = [notes.SemitonesPerOctave]struct {
	quality Quality
	size    uint
}{
	{Perfect, 1}, {Minor, 2}, {Major, 2}, {Minor, 3}, {Major, 3}, {Perfect, 4},
	{Augmented, 4}, {Perfect, 5}, {Minor, 6}, {Major, 6}, {Minor, 7}, {Major, 7},
}

// FromSemitones spells a distance with its most common quality and size.
// Compound intervals get sizes past 8 (a major tenth is 16 semitones, size
// 10). The sign of semitones is kept; quality and size describe its magnitude.
func FromSemitones(semitones int) Interval {
	abs := semitones
	if abs < 0 {
		abs = -abs
	}
	octaves, rem := abs/notes.SemitonesPerOctave, abs%notes.SemitonesPerOctave
	s := simple[rem]
	return Interval{semitones: semitones, quality: s.quality, size: s.size + uint(octaves)*7}
}

// Between returns the interval from a to b. It is negative when b is lower.
func Between(a, b notes.Note) Interval {
	return FromSemitones(b.Semitones() - a.Semitones())
}

// Apply transposes n by i.
func (i Interval) Apply(n notes.Note) notes.Note {
	return n.Transpose(i.semitones)
}

// Neg returns i in the opposite direction.
func (i Interval) Neg() Interval {
	return FromSemitones(-i.semitones)
}

// Add returns the interval spanning i followed by other.
func (i Interval) Add(other Interval) Interval {
	return FromSemitones(i.semitones + other.semitones)
}

// Sub returns i minus other.
func (i Interval) Sub(other Interval) Interval {
	return FromSemitones(i.semitones - other.semitones)
}

// Mul returns i repeated k times.
func (i Interval) Mul(k int) Interval {
	return FromSemitones(i.semitones * k)
}

// Compare orders intervals by semitone distance.
func (i Interval) Compare(other Interval) int {
	switch {
	case i.semitones < other.semitones:
		return -1
	case i.semitones > other.semitones:
		return 1
	}
	return 0
}

// Equal reports whether i and other span the same number of semitones.
// Quality and size are ignored, so an augmented fourth equals a diminished fifth.
func (i Interval) Equal(other Interval) bool {
	return i.semitones == other.semitones
}

type intervalYAML struct {
	Semitones int     `yaml:"semitones"`
	Quality   Quality `yaml:"quality"`
	Size      uint    `yaml:"size"`
}

// MarshalYAML encodes i as a mapping of its three fields.
func (i Interval) MarshalYAML() (interface{}, error) {
	return intervalYAML{Semitones: i.semitones, Quality: i.quality, Size: i.size}, nil
}

// UnmarshalYAML decodes the mapping written by MarshalYAML.
func (i *Interval) UnmarshalYAML(value *yaml.Node) error {
	var v intervalYAML
	if err := value.Decode(&v); err != nil {
		return err
	}
	*i = New(v.Semitones, v.Quality, v.Size)
	return nil
}
