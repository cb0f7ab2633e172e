package chain

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

const (
	DefaultBloomCapacity       = 1024
	DefaultBloomBitsPerElement = 10
	DefaultBloomK              = 7
)

type Options struct {
	Log logger.Logger

	// BloomCapacity is the number of blocks the prefilter is sized for. The
	// prefilter is rebuilt at twice the size when the chain outgrows it.
	BloomCapacity       uint64
	BloomBitsPerElement uint64
	BloomK              uint8
}

// Option is a generic option type. Implementations type assert to their
// Options target record and ignore the option if that fails.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

func WithBloom(capacity uint64, bitsPerElement uint64, k uint8) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.BloomCapacity = capacity
			o.BloomBitsPerElement = bitsPerElement
			o.BloomK = k
		}
	}
}

func newDefaultOptions() Options {
	return Options{
		BloomCapacity:       DefaultBloomCapacity,
		BloomBitsPerElement: DefaultBloomBitsPerElement,
		BloomK:              DefaultBloomK,
	}
}
