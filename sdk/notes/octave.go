package notes

import "fmt"

// Octave is an octave number in scientific pitch notation, where middle C
// lies in OneLine (4).
type Octave int

const (
	DoubleContra Octave = iota - 1
	SubContra
	Contra
	Great
	Small
	OneLine
	TwoLine
	ThreeLine
	FourLine
	FiveLine
	SixLine
)

// MinOctave and MaxOctave bound the named octaves.
const (
	MinOctave = DoubleContra
	MaxOctave = SixLine
)

var octaveNames = [...]string{
	"Double Contra", "Sub Contra", "Contra", "Great", "Small",
	"One Line", "Two Line", "Three Line", "Four Line", "Five Line", "Six Line",
}

// ParseOctave validates an octave number.
func ParseOctave(n int) (Octave, error) {
	o := Octave(n)
	if !o.Valid() {
		return 0, &FormatError{Input: fmt.Sprint(n), Reason: fmt.Sprintf("octave outside [%d, %d]", MinOctave, MaxOctave)}
	}
	return o, nil
}

// Valid reports whether o is one of the named octaves.
func (o Octave) Valid() bool {
	return o >= MinOctave && o <= MaxOctave
}

// String returns the octave's traditional name, or its number when unnamed.
func (o Octave) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Octave(%d)", int(o))
	}
	return octaveNames[o-MinOctave]
}
