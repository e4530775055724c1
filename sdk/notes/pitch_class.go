package notes

import (
	"fmt"
	"strings"
)

// PitchClass is one of the twelve pitch classes in integer notation,
// from C=0 to B=11. Enharmonic spellings are aliases of the same value.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Flat spellings of the five accidental pitch classes.
const (
	DFlat = CSharp
	EFlat = DSharp
	GFlat = FSharp
	AFlat = GSharp
	BFlat = ASharp
)

// SemitonesPerOctave is the size of the 12-tone equal tempered octave.
const SemitonesPerOctave = 12

var (
	sharpNames = [SemitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [SemitonesPerOctave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// pitchClassesByName resolves every accepted spelling to its pitch class.
// Keys are lower case.
var pitchClassesByName = map[string]PitchClass{
	"c": C, "c#": CSharp, "csharp": CSharp, "db": DFlat, "dflat": DFlat,
	"d": D, "d#": DSharp, "dsharp": DSharp, "eb": EFlat, "eflat": EFlat,
	"e": E,
	"f": F, "f#": FSharp, "fsharp": FSharp, "gb": GFlat, "gflat": GFlat,
	"g": G, "g#": GSharp, "gsharp": GSharp, "ab": AFlat, "aflat": AFlat,
	"a": A, "a#": ASharp, "asharp": ASharp, "bb": BFlat, "bflat": BFlat,
	"b": B,
}

// ParsePitchClass resolves a pitch class name such as "C", "F#", "Bb",
// "CSharp" or "DFlat". Matching is case-insensitive.
func ParsePitchClass(name string) (PitchClass, error) {
	pc, ok := pitchClassesByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &FormatError{Input: name, Reason: "unknown pitch class"}
	}
	return pc, nil
}

// Valid reports whether pc is one of the twelve pitch classes.
func (pc PitchClass) Valid() bool {
	return pc >= C && pc <= B
}

// HasAccidental reports whether pc has no natural spelling.
func (pc PitchClass) HasAccidental() bool {
	switch pc {
	case CSharp, DSharp, FSharp, GSharp, ASharp:
		return true
	}
	return false
}

// Name spells pc with a sharp or a flat. Natural pitch classes ignore useSharps.
func (pc PitchClass) Name(useSharps bool) string {
	if !pc.Valid() {
		return fmt.Sprintf("PitchClass(%d)", int(pc))
	}
	if useSharps {
		return sharpNames[pc]
	}
	return flatNames[pc]
}

func (pc PitchClass) String() string {
	return pc.Name(true)
}
