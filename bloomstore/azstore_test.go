package bloomstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-bloomhex/bloom"
	"github.com/stretchr/testify/require"
)

// fakeAzure stands in for the azblob store. azblob options are opaque, so it
// records how many were passed. Tags it holds for a blob are returned only if
// the read passes an option, which AzureStore.Get only does for WithGetTags.
type fakeAzure struct {
	data       map[string][]byte
	tags       map[string]map[string]string
	putOpts    []int
	readerOpts []int
	putErr     error
	readerErr  error
}

func newFakeAzure() *fakeAzure {
	return &fakeAzure{data: map[string][]byte{}, tags: map[string]map[string]string{}}
}

func (f *fakeAzure) Put(
	_ context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option,
) (*azblob.WriteResponse, error) {
	f.putOpts = append(f.putOpts, len(opts))
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	f.data[identity] = b
	return &azblob.WriteResponse{}, nil
}

func (f *fakeAzure) Reader(
	_ context.Context, identity string, opts ...azblob.Option,
) (*azblob.ReaderResponse, error) {
	f.readerOpts = append(f.readerOpts, len(opts))
	if f.readerErr != nil {
		return nil, f.readerErr
	}
	b, ok := f.data[identity]
	if !ok {
		return nil, azblob.ErrorFromError(fmt.Errorf("%s: %w", identity, ErrBlobNotFound))
	}
	rr := &azblob.ReaderResponse{Reader: azblob.NewBytesReaderCloser(b)}
	if len(opts) > 0 {
		rr.Tags = f.tags[identity]
	}
	return rr, nil
}

func TestAzureStorePutOptions(t *testing.T) {
	fake := newFakeAzure()
	a := NewAzureStore(fake)

	tags := map[string]string{TagHash: bloom.HashNameMurmur3}
	require.NoError(t, a.Put(context.Background(), "x.bloom", []byte("abc"), PutOptions{Tags: tags, CreateOnly: true}))
	require.NoError(t, a.Put(context.Background(), "y.bloom", []byte("def"), PutOptions{Tags: tags}))

	// Tags, plus the none-match etag condition when create-only.
	require.Equal(t, []int{2, 1}, fake.putOpts)
	require.Equal(t, []byte("abc"), fake.data["x.bloom"])

	fake.putErr = errors.New("throttled")
	err := a.Put(context.Background(), "z.bloom", []byte("ghi"), PutOptions{CreateOnly: true})
	require.ErrorContains(t, err, "throttled")
	require.NotErrorIs(t, err, ErrBlobExists)
}

func TestAzureStoreGetRequestsTags(t *testing.T) {
	fake := newFakeAzure()
	a := NewAzureStore(fake)

	fake.data["x.bloom"] = []byte("abc")
	fake.tags["x.bloom"] = map[string]string{TagHash: bloom.HashNameXXHash64}

	blob, err := a.Get(context.Background(), "x.bloom")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), blob.Data)
	require.Equal(t, bloom.HashNameXXHash64, blob.Tags[TagHash])
	require.Equal(t, []int{1}, fake.readerOpts)

	_, err = a.Get(context.Background(), "y.bloom")
	require.True(t, IsBlobNotFound(err))

	fake.readerErr = errors.New("connection reset")
	_, err = a.Get(context.Background(), "x.bloom")
	require.False(t, IsBlobNotFound(err))
}

func TestStoreOverAzureDetectsHashMismatch(t *testing.T) {
	defer logger.OnExit()
	fake := newFakeAzure()
	s := testStore(t, Config{Prefix: "tenant"}, NewAzureStore(fake))

	f, err := s.Build(testElements())
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), "ids", f))

	// The index tags azure holds for the blob name another hash.
	fake.tags["tenant/ids.bloom"] = map[string]string{TagHash: bloom.HashNameXXHash64}
	_, err = s.Load(context.Background(), "ids")
	require.ErrorIs(t, err, ErrHashMismatch)

	fake.tags["tenant/ids.bloom"] = map[string]string{TagHash: bloom.HashNameMurmur3}
	g, err := s.Load(context.Background(), "ids")
	require.NoError(t, err)
	require.Equal(t, f.Words(), g.Words())

	_, err = s.Load(context.Background(), "other")
	require.ErrorIs(t, err, ErrFilterNotFound)

	fake.readerErr = errors.New("connection reset")
	_, err = s.Load(context.Background(), "ids")
	require.ErrorIs(t, err, ErrBlobRead)
}

func TestBlobErrorTranslation(t *testing.T) {
	require.NoError(t, WrapBlobNotFound(nil))
	require.NoError(t, WrapBlobExists(nil))
	require.False(t, IsBlobNotFound(nil))

	plain := errors.New("boom")
	require.Equal(t, plain, WrapBlobNotFound(plain))
	require.Equal(t, plain, WrapBlobExists(plain))
	require.False(t, IsBlobNotFound(plain))

	_, ok := AsStorageError(plain)
	require.False(t, ok)
	_, ok = AsStorageError(azblob.ErrorFromError(plain))
	require.False(t, ok)

	require.True(t, IsBlobNotFound(fmt.Errorf("x.bloom: %w", ErrBlobNotFound)))
}
