package notes

import (
	"regexp"
	"strconv"
	"strings"
)

// noteNameFormat matches a letter, any number of accidentals and a signed
// octave number. Only the letter is case-insensitive.
var noteNameFormat = regexp.MustCompile(`^([A-Ga-g])([#bx]*)(-?\d+)$`)

var accidentalOffsets = map[rune]int{
	'#': 1,
	'b': -1,
	'x': 2,
}

// Parse reads a note name such as "C4", "F#-1", "Bb3" or "Cx4".
//
// Accidentals shift the semitone total and not the written octave, so "Cb4"
// is the same pitch as "B3". The written octave must be a named octave.
func Parse(text string) (Note, error) {
	m := noteNameFormat.FindStringSubmatch(text)
	if m == nil {
		return Note{}, &FormatError{Input: text, Reason: "does not match note name format"}
	}
	letter, accidentals, octaveStr := m[1], m[2], m[3]

	pc, ok := pitchClassesByName[strings.ToLower(letter)]
	if !ok {
		return Note{}, &FormatError{Input: text, Reason: "unknown pitch letter " + letter}
	}

	num, err := strconv.Atoi(octaveStr)
	if err != nil {
		return Note{}, &FormatError{Input: text, Reason: "octave is not an integer"}
	}
	octave := Octave(num)
	if !octave.Valid() {
		return Note{}, &FormatError{Input: text, Reason: "octave " + octaveStr + " is not a named octave"}
	}

	semitones := toSemitones(pc, octave)
	for _, r := range accidentals {
		semitones += accidentalOffsets[r]
	}
	return FromSemitones(semitones), nil
}

// TryParse is like Parse but reports failure with a boolean.
func TryParse(text string) (Note, bool) {
	n, err := Parse(text)
	return n, err == nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(text string) Note {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}
