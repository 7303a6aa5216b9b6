package lookupcurve

// LookupCache remembers which segment the previous lookup resolved to, so
// that temporally coherent queries (animation playback, parameter ramps)
// skip the binary search.
//
// The zero value is ready to use. A cache belongs to exactly one goroutine
// but may be reused freely across curves and across curve mutations: the
// hint is tagged with the curve generation it was recorded against and is
// ignored whenever the tag no longer matches. A stale or garbage cache can
// only cost speed, never change a lookup result.
type LookupCache struct {
	index      int
	generation uint64
}

// Reset clears the cached hint.
func (c *LookupCache) Reset() {
	*c = LookupCache{}
}

// hint returns the remembered segment index, or -1 when the hint was
// recorded against a different curve generation.
func (c *LookupCache) hint(generation uint64) int {
	if c.generation != generation {
		return -1
	}
	return c.index
}

// store records the resolved segment index for the given curve generation.
func (c *LookupCache) store(index int, generation uint64) {
	c.index = index
	c.generation = generation
}
