package intervals

import (
	"fmt"
	"strings"
)

// Quality classifies an interval of a given diatonic size.
type Quality int

const (
	Perfect Quality = iota
	Major
	Minor
	Augmented
	Diminished
)

var qualityNames = [...]string{"perfect", "major", "minor", "augmented", "diminished"}

// ParseQuality resolves a quality by name, ignoring case.
func ParseQuality(name string) (Quality, error) {
	for i, s := range qualityNames {
		if strings.EqualFold(s, name) {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, name)
}

func (q Quality) String() string {
	if q < Perfect || q > Diminished {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

// MarshalText encodes q by name.
func (q Quality) MarshalText() ([]byte, error) {
	if q < Perfect || q > Diminished {
		return nil, fmt.Errorf("%w: %d", ErrUnknownQuality, int(q))
	}
	return []byte(q.String()), nil
}

// UnmarshalText decodes a quality name.
func (q *Quality) UnmarshalText(text []byte) error {
	parsed, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
