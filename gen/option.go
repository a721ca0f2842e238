package gen

import "github.com/viant/afs"

// Option customises a generator Service.
type Option func(s *Service)

// WithFS sets the file service used to read manifests and write generated
// source. Defaults to afs.New(), which handles file, mem and embed URLs.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}
