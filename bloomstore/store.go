package bloomstore

import (
	"context"
	"fmt"
	"path"
	"strconv"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-bloomhex/bloom"
)

const (
	// BlobExt is the file extension of stored filters.
	BlobExt = ".bloom"

	TagHash         = "bloomhash"
	TagHashRounds   = "bloomk"
	TagElementCount = "bloomn"
)

// PutOptions control a single blob write.
type PutOptions struct {
	// Tags are stored with the blob and returned by Get.
	Tags map[string]string
	// CreateOnly fails the write with ErrBlobExists if the blob is present.
	CreateOnly bool
}

// Blob is the content and tags of a stored blob.
type Blob struct {
	Data []byte
	Tags map[string]string
}

// BlobStore is the backend a Store persists filters to. AzureStore adapts
// the azblob store, DirStore uses a local directory.
//
// Get returns an error wrapping ErrBlobNotFound for a missing blob. Put with
// CreateOnly returns an error wrapping ErrBlobExists for a present one.
type BlobStore interface {
	Put(ctx context.Context, identity string, data []byte, opts PutOptions) error
	Get(ctx context.Context, identity string) (Blob, error)
}

// Store saves and loads encoded filters by name.
type Store struct {
	Cfg   Config
	Log   logger.Logger
	Blobs BlobStore

	hash bloom.SeededHash
}

// NewStore returns a Store over blobs using the hash named by cfg.HashName.
func NewStore(cfg Config, log logger.Logger, blobs BlobStore) (*Store, error) {
	hash, err := bloom.HashByName(cfg.HashName)
	if err != nil {
		return nil, err
	}
	if cfg.HashName == "" {
		cfg.HashName = bloom.HashNameMurmur3
	}
	return &Store{
		Cfg:   cfg,
		Log:   log,
		Blobs: blobs,
		hash:  hash,
	}, nil
}

// Hash returns the seeded hash filters in this store are built with.
func (s *Store) Hash() bloom.SeededHash {
	return s.hash
}

// Build builds a filter from elements with the store's hash. Any WithHash
// in opts is overridden.
func (s *Store) Build(elements []string, opts ...bloom.Option) (*bloom.Filter, error) {
	opts = append(opts[:len(opts):len(opts)], bloom.WithHash(s.hash))
	return bloom.FromElements(elements, opts...)
}

// BlobPath returns the storage path for the named filter.
func (s *Store) BlobPath(name string) string {
	return path.Join(s.Cfg.Prefix, name+BlobExt)
}

// Save writes the encoding of f under name.
//
// The blob is tagged with the store's hash name, so f must have been built
// with Hash (see Build). Unless Cfg.Overwrite is set the write fails if a
// filter already exists under name.
func (s *Store) Save(ctx context.Context, name string, f *bloom.Filter) error {
	if name == "" {
		return ErrNameRequired
	}
	blobPath := s.BlobPath(name)

	opts := PutOptions{
		Tags: map[string]string{
			TagHash:         s.Cfg.HashName,
			TagHashRounds:   strconv.FormatUint(uint64(f.HashRounds()), 10),
			TagElementCount: strconv.FormatUint(uint64(f.ExpectedElementCount()), 10),
		},
		CreateOnly: !s.Cfg.Overwrite,
	}

	data := []byte(f.String())
	if err := s.Blobs.Put(ctx, blobPath, data, opts); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBlobWrite, blobPath, err)
	}
	s.Log.Infof("Save: %s m=%d k=%d n=%d bytes=%d",
		blobPath, f.BitLength(), f.HashRounds(), f.ExpectedElementCount(), len(data))
	return nil
}

// Load reads and decodes the named filter. The hash recorded at save time
// must match the store's hash.
func (s *Store) Load(ctx context.Context, name string) (*bloom.Filter, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	blobPath := s.BlobPath(name)

	blob, err := s.Blobs.Get(ctx, blobPath)
	if err != nil {
		if IsBlobNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrFilterNotFound, blobPath)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrBlobRead, blobPath, err)
	}

	stored, ok := blob.Tags[TagHash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHashUnrecorded, blobPath)
	}
	if stored != s.Cfg.HashName {
		return nil, fmt.Errorf("%w: %s has %q, store uses %q", ErrHashMismatch, blobPath, stored, s.Cfg.HashName)
	}

	f, err := bloom.FromEncoding(string(blob.Data), bloom.WithHash(s.hash))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", blobPath, err)
	}
	s.Log.Infof("Load: %s m=%d k=%d n=%d p~%g",
		blobPath, f.BitLength(), f.HashRounds(), f.ExpectedElementCount(), f.FalsePositiveProbability())
	return f, nil
}
