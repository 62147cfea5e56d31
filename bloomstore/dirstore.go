package bloomstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
)

// TagsExt is appended to a blob's file name to form its tag sidecar.
const TagsExt = ".tags"

// DirStore is a BlobStore over a local directory. Blob identities are paths
// relative to Root. Tags are kept as a CBOR encoded map in a sidecar file
// next to the blob.
type DirStore struct {
	Root string
}

func NewDirStore(root string) *DirStore {
	return &DirStore{Root: root}
}

func (d *DirStore) blobFile(identity string) string {
	return filepath.Join(d.Root, filepath.FromSlash(identity))
}

func (d *DirStore) Put(ctx context.Context, identity string, data []byte, opts PutOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := d.blobFile(identity)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tags, err := cbor.Marshal(opts.Tags)
	if err != nil {
		return err
	}

	// The blob is published before its tags so a refused create-only write
	// leaves the existing tags untouched.
	if err := writeFileAtomic(target, data, opts.CreateOnly); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", identity, ErrBlobExists)
		}
		return err
	}
	return writeFileAtomic(target+TagsExt, tags, false)
}

func (d *DirStore) Get(ctx context.Context, identity string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return Blob{}, err
	}

	target := d.blobFile(identity)
	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Blob{}, fmt.Errorf("%s: %w", identity, ErrBlobNotFound)
		}
		return Blob{}, err
	}

	blob := Blob{Data: data}
	raw, err := os.ReadFile(target + TagsExt)
	if errors.Is(err, fs.ErrNotExist) {
		return blob, nil
	}
	if err != nil {
		return Blob{}, err
	}
	if err := cbor.Unmarshal(raw, &blob.Tags); err != nil {
		return Blob{}, fmt.Errorf("%s%s: %w", identity, TagsExt, err)
	}
	return blob, nil
}

// writeFileAtomic writes data to a sibling temp file and then publishes it at
// target, so readers never see a partial file. With exclusive set the publish
// is a hard link, which fails with fs.ErrExist if target is present.
func writeFileAtomic(target string, data []byte, exclusive bool) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if exclusive {
		return os.Link(tmp.Name(), target)
	}
	return os.Rename(tmp.Name(), target)
}
