package bloomstore

import (
	"context"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
)

// azureBlobs is the subset of the azblob store used by AzureStore.
type azureBlobs interface {
	Put(
		ctx context.Context,
		identity string,
		source io.ReadSeekCloser,
		opts ...azblob.Option,
	) (*azblob.WriteResponse, error)

	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
}

// AzureStore is a BlobStore over an azblob store. Tags are kept as blob
// index tags.
type AzureStore struct {
	Blobs azureBlobs
}

func NewAzureStore(blobs azureBlobs) *AzureStore {
	return &AzureStore{Blobs: blobs}
}

func (a *AzureStore) Put(ctx context.Context, identity string, data []byte, opts PutOptions) error {
	azopts := []azblob.Option{azblob.WithTags(opts.Tags)}
	if opts.CreateOnly {
		// The way to spell 'fail without modifying if the blob exists' is to
		// require that no blob matches *any* etag.
		azopts = append(azopts, azblob.WithEtagNoneMatch("*"))
	}
	_, err := a.Blobs.Put(ctx, identity, azblob.NewBytesReaderCloser(data), azopts...)
	return WrapBlobExists(err)
}

func (a *AzureStore) Get(ctx context.Context, identity string) (Blob, error) {
	// Tags are only returned when asked for.
	rr, err := a.Blobs.Reader(ctx, identity, azblob.WithGetTags())
	if err != nil {
		return Blob{}, WrapBlobNotFound(err)
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return Blob{}, err
	}
	return Blob{Data: data, Tags: rr.Tags}, nil
}
