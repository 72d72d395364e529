package di

// Option customizes a container at creation time.
type Option func(*containerConfig)

type containerConfig struct {
	codec    Codec
	capacity int
}

// WithCodec selects the codec used to encode and decode payloads.
// Child scopes inherit their parent's codec unless they pass their own.
func WithCodec(c Codec) Option {
	return func(cfg *containerConfig) {
		if c != nil {
			cfg.codec = c
		}
	}
}

// WithCapacity pre-sizes the local store for roughly n registrations.
func WithCapacity(n int) Option {
	return func(cfg *containerConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}
