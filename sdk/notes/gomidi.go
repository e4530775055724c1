package notes

import (
	"gitlab.com/gomidi/midi/v2"
)

// MIDIKey returns n as a gomidi key, with middle C in OneLine.
func (n Note) MIDIKey() (midi.Note, error) {
	key, err := n.ToMidi()
	if err != nil {
		return 0, err
	}
	return midi.Note(uint8(key)), nil
}

// NoteOn builds a note on message for n. Channel and velocity are masked to
// their 4 and 7 bit ranges by gomidi.
func (n Note) NoteOn(channel, velocity uint8) (midi.Message, error) {
	key, err := n.ToMidi()
	if err != nil {
		return nil, err
	}
	return midi.NoteOn(channel, uint8(key), velocity), nil
}

// NoteOff builds a note off message for n.
func (n Note) NoteOff(channel uint8) (midi.Message, error) {
	key, err := n.ToMidi()
	if err != nil {
		return nil, err
	}
	return midi.NoteOff(channel, uint8(key)), nil
}

// FromMessage returns the note addressed by a note on or note off message.
// It reports false for any other message.
func FromMessage(msg midi.Message) (Note, bool) {
	var channel, key, velocity uint8
	if !msg.GetNoteOn(&channel, &key, &velocity) && !msg.GetNoteOff(&channel, &key, &velocity) {
		return Note{}, false
	}
	n, err := FromMIDI(int(key))
	if err != nil {
		return Note{}, false
	}
	return n, true
}
