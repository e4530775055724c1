package main

import (
	"fmt"
	"os"

	"github.com/leandrodaf/musictheory/internal/logger"
	"github.com/leandrodaf/musictheory/sdk/contracts"
	"github.com/leandrodaf/musictheory/sdk/intervals"
	"github.com/leandrodaf/musictheory/sdk/notes"
)

func main() {
	log := logger.NewStandardLogger()

	cache, err := notes.NewCache(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithInitialCapacity(128),
	)
	if err != nil {
		log.Error("Failed to initialize note cache", log.Field().Error("error", err))
		return
	}
	if err := cache.CacheRange(-12, 116); err != nil { // MIDI 0..127
		log.Error("Failed to warm note cache", log.Field().Error("error", err))
		return
	}

	names := os.Args[1:]
	if len(names) == 0 {
		names = []string{"C4", "A4", "Bb3", "Cx4", "G9"}
	}

	var prev *notes.Note
	for _, name := range names {
		n, err := cache.Parse(name)
		if err != nil {
			log.Warn("Skipping note", log.Field().String("input", name), log.Field().Error("error", err))
			continue
		}

		if _, err := n.ToMidi(); err != nil {
			log.Warn("Note has no MIDI number", log.Field().String("note", n.String()), log.Field().Error("error", err))
		}
		fmt.Println(describe(name, *n))

		if prev != nil {
			iv := intervals.Between(*prev, *n)
			fmt.Printf("       %+d semitones from %v (%v %d)\n", iv.Semitones(), prev, iv.Quality(), iv.Size())
		}
		prev = n
	}
}

// describe renders one output line for n. The midi field is left out for
// notes outside the MIDI range.
func describe(name string, n notes.Note) string {
	line := fmt.Sprintf("%-6s sharps=%-4s flats=%-4s", name, n.ToName(), n.ToName(notes.WithFlats()))
	if midi, err := n.ToMidi(); err == nil {
		line += fmt.Sprintf(" midi=%-3d", midi)
	}
	return line + fmt.Sprintf(" hz=%.2f", n.ToFrequency())
}
