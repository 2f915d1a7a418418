package cache

// Option configures a Memo.
type Option func(*options)

type options struct {
	capacity int
	recorder Recorder
}

// WithCapacity sets the maximum number of resident entries.
// Non-positive values fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithRecorder attaches a Recorder that observes hits, misses and evictions.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}
