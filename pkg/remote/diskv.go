package remote

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Open creates a DocumentStore backed by diskv using the provided config.
func Open(cfg *Config) (DocumentStore, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Path == "" {
		return nil, errors.New("remote: store path required")
	}

	return &docStore{d: diskv.New(diskv.Options{
		BasePath:          cfg.Path,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: cfg.Path}, nil
}

type docStore struct {
	d        *diskv.Diskv
	basePath string
}

func (s *docStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, false, fmt.Errorf("remote: read %s: %w", key, err)
	}
	return data, true, nil
}

func (s *docStore) Set(ctx context.Context, key string, doc []byte) error {
	if err := s.d.Write(key, doc); err != nil {
		return fmt.Errorf("remote: write %s: %w", key, err)
	}
	return nil
}

func (s *docStore) Update(ctx context.Context, key string, fields map[string]json.RawMessage) error {
	merged := make(map[string]json.RawMessage)
	if s.d.Has(key) {
		data, err := s.d.Read(key)
		if err != nil {
			return fmt.Errorf("remote: read %s: %w", key, err)
		}
		// A document that is not a JSON object cannot be merged; replace it.
		if err := json.Unmarshal(data, &merged); err != nil {
			merged = make(map[string]json.RawMessage)
		}
	}
	for name, value := range fields {
		merged[name] = value
	}
	doc, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("remote: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, doc)
}

// Document keys are slash-separated paths ("users/<id>/cursor"). Each segment
// is base64-encoded on disk so opaque user ids cannot escape the store
// directory.

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	path := make([]string, len(parts)-1)
	for i, part := range parts[:len(parts)-1] {
		path[i] = encodeSegment(part)
	}
	return &diskv.PathKey{
		Path:     path,
		FileName: encodeSegment(parts[len(parts)-1]),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	parts := make([]string, 0, len(pathKey.Path)+1)
	for _, part := range pathKey.Path {
		parts = append(parts, decodeSegment(part))
	}
	parts = append(parts, decodeSegment(pathKey.FileName))
	return strings.Join(parts, "/")
}

func encodeSegment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func decodeSegment(s string) string {
	segment, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("decodeSegment: %s", err)
	}
	return string(segment)
}
