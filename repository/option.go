package repository

import (
	"github.com/viant/afs"
	"github.com/viant/gmetric"
	"github.com/viant/wirely/extension"
	"github.com/viant/wirely/logger"
)

type (
	Options struct {
		resourceURL string
		fs          afs.Service
		extensions  *extension.Registry
		metrics     *gmetric.Service
		logger      *logger.Adapter
	}

	Option func(o *Options)
)

func NewOptions(opts ...Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.extensions == nil {
		ret.extensions = extension.Config
	}
	if ret.logger == nil {
		ret.logger = logger.Default()
	}
	return ret
}

// Extensions returns the member and type registry in use
func (o *Options) Extensions() *extension.Registry {
	return o.extensions
}

// WithResourceURL sets the resource location
func WithResourceURL(URL string) Option {
	return func(o *Options) {
		o.resourceURL = URL
	}
}

func WithFs(fs afs.Service) Option {
	return func(o *Options) {
		o.fs = fs
	}
}

// WithExtensions sets the member and type registry
func WithExtensions(registry *extension.Registry) Option {
	return func(o *Options) {
		o.extensions = registry
	}
}

func WithMetrics(metrics *gmetric.Service) Option {
	return func(o *Options) {
		o.metrics = metrics
	}
}

func WithLogger(adapter *logger.Adapter) Option {
	return func(o *Options) {
		o.logger = adapter
	}
}
