package octdag

import "github.com/datatrails/go-datatrails-common/logger"

const (
	DefaultPrefilterBitsPerElement = 10
	DefaultPrefilterK              = 7
)

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	Dedup DedupMode

	// Signature filter sizing, used only by DedupLinear.
	PrefilterBitsPerElement uint64
	PrefilterK              uint8

	// Log is optional; a nil logger disables build logging.
	Log logger.Logger
}

type BuilderOption func(*BuilderOptions)

func WithDedup(mode DedupMode) BuilderOption {
	return func(opts *BuilderOptions) {
		opts.Dedup = mode
	}
}

// WithPrefilter sizes the per depth signature filters of DedupLinear.
func WithPrefilter(bitsPerElement uint64, k uint8) BuilderOption {
	return func(opts *BuilderOptions) {
		opts.PrefilterBitsPerElement = bitsPerElement
		opts.PrefilterK = k
	}
}

func WithLogger(log logger.Logger) BuilderOption {
	return func(opts *BuilderOptions) {
		opts.Log = log
	}
}

func defaultBuilderOptions() BuilderOptions {
	return BuilderOptions{
		Dedup:                   DedupHashed,
		PrefilterBitsPerElement: DefaultPrefilterBitsPerElement,
		PrefilterK:              DefaultPrefilterK,
	}
}
