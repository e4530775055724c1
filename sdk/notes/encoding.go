package notes

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalText encodes n as its sharp spelled name.
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.ToName()), nil
}

// UnmarshalText decodes a note name accepted by Parse.
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML encodes n as its sharp spelled name.
func (n Note) MarshalYAML() (interface{}, error) {
	return n.ToName(), nil
}

// UnmarshalYAML accepts either a note name ("Eb3") or an integer MIDI number
// (63) relative to middle C in OneLine.
func (n *Note) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: note must be a scalar", ErrFormat, value.Line)
	}

	if value.ShortTag() == "!!int" {
		midi, err := strconv.Atoi(value.Value)
		if err != nil {
			return &FormatError{Input: value.Value, Reason: "invalid MIDI number"}
		}
		parsed, err := FromMIDI(midi)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*n = parsed
		return nil
	}

	parsed, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*n = parsed
	return nil
}
