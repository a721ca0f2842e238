package gen

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/tuid/tracing"
	"gopkg.in/yaml.v3"
)

// Service loads kind manifests and generates descriptor source.
type Service struct {
	fs afs.Service
}

// New returns a generator service with the supplied options applied.
func New(options ...Option) *Service {
	s := &Service{}
	for _, option := range options {
		option(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	return s
}

// DecodeYAML decodes a manifest from YAML.
func DecodeYAML(encoded []byte) (*Manifest, error) {
	manifest := &Manifest{}
	if err := yaml.Unmarshal(encoded, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Load loads a manifest from YAML at the specified URL.
func (s *Service) Load(ctx context.Context, URL string) (manifest *Manifest, err error) {
	ctx, span := tracing.StartSpan(ctx, "manifest.load")
	defer func() { tracing.EndSpan(span, err) }()

	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest from %s: %w", URL, err)
	}
	manifest, err = DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest from %s: %w", URL, err)
	}
	return manifest, nil
}

// Generate validates every declaration and renders the descriptor source.
// Validation is fail-fast: the first invalid declaration aborts the run
// and nothing is emitted.
func (s *Service) Generate(ctx context.Context, manifest *Manifest) (src []byte, err error) {
	_, span := tracing.StartSpan(ctx, "descriptor.generate")
	defer func() { tracing.EndSpan(span, err) }()

	for i := range manifest.Enums {
		if err = Validate(&manifest.Enums[i]); err != nil {
			return nil, err
		}
	}
	return Emit(manifest)
}

// GenerateURL loads a manifest from srcURL and uploads the generated
// descriptor source to dstURL.
func (s *Service) GenerateURL(ctx context.Context, srcURL, dstURL string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "descriptor.generateURL")
	defer func() { tracing.EndSpan(span, err) }()

	manifest, err := s.Load(ctx, srcURL)
	if err != nil {
		return err
	}
	src, err := s.Generate(ctx, manifest)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, dstURL, file.DefaultFileOsMode, bytes.NewReader(src)); err != nil {
		return fmt.Errorf("failed to write generated source to %s: %w", dstURL, err)
	}
	return nil
}
