package notes

import (
	"fmt"
	"sync"

	"github.com/leandrodaf/musictheory/internal/logger"
	"github.com/leandrodaf/musictheory/sdk/contracts"
)

// MaxCacheRange is the largest span CacheRange accepts in one call.
const MaxCacheRange = 1 << 16

// Cache interns notes by semitone value so that repeated lookups of the same
// pitch share one *Note. Notes are immutable, so sharing is safe. Interning
// is an optimization only: equality never depends on it.
//
// A Cache has no eviction. It is safe for concurrent use. The zero value is
// an empty cache that does not log; NewCache configures logging.
type Cache struct {
	mu     sync.Mutex
	notes  map[int]*Note
	logger contracts.Logger
}

// Get returns the shared note the given number of semitones from C0,
// creating it on first use.
func (c *Cache) Get(semitones int) *Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(semitones)
}

func (c *Cache) getLocked(semitones int) *Note {
	if c.notes == nil {
		c.notes = make(map[int]*Note)
	}
	if n, ok := c.notes[semitones]; ok {
		return n
	}
	n := FromSemitones(semitones)
	c.notes[semitones] = &n
	return &n
}

// Note returns the shared note for a pitch class and octave.
func (c *Cache) Note(pc PitchClass, octave Octave) *Note {
	return c.Get(toSemitones(pc, octave))
}

// Parse parses text and returns the shared note for the result.
func (c *Cache) Parse(text string) (*Note, error) {
	n, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return c.Get(n.semitones), nil
}

// CacheRange populates the cache for every semitone value in [min, max).
// Spans wider than MaxCacheRange are rejected with an error wrapping
// ErrRange; warm larger areas with several calls.
func (c *Cache) CacheRange(minSemitone, maxSemitone int) error {
	log := c.log()
	if maxSemitone <= minSemitone {
		log.Warn("empty note cache range",
			log.Field().Int("min", minSemitone),
			log.Field().Int("max", maxSemitone))
		return nil
	}
	if span := uint(maxSemitone) - uint(minSemitone); span > MaxCacheRange {
		return fmt.Errorf("%w: cache range [%d, %d) spans %d semitones, limit %d",
			ErrRange, minSemitone, maxSemitone, span, MaxCacheRange)
	}

	c.mu.Lock()
	before := len(c.notes)
	for s := minSemitone; s < maxSemitone; s++ {
		c.getLocked(s)
	}
	added, total := len(c.notes)-before, len(c.notes)
	c.mu.Unlock()

	log.Debug("note cache warmed",
		log.Field().Int("min", minSemitone),
		log.Field().Int("max", maxSemitone),
		log.Field().Int("added", added),
		log.Field().Int("size", total))
	return nil
}

var nopLogger = logger.NewNopLogger()

func (c *Cache) log() contracts.Logger {
	if c.logger == nil {
		return nopLogger
	}
	return c.logger
}

// Len returns the number of interned notes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notes)
}
