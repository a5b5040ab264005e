package dedupe

// Option configures the in-memory deduper.
type Option func(*memoryDeduper)

// WithMaxSize bounds how many observation ids are remembered. maxSize > 0
// enables oldest-first eviction; maxSize <= 0 disables the bound.
func WithMaxSize(maxSize int) Option {
	return func(d *memoryDeduper) {
		d.maxSize = maxSize
	}
}
