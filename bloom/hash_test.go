package bloom

import (
	"net/netip"
	"testing"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/require"
)

type label struct{ name string }

func (l label) String() string { return "label:" + l.name }

func TestTextBytes(t *testing.T) {
	require.Equal(t, []byte("abc"), TextBytes("abc"))
	require.Equal(t, []byte{0, 1, 2}, TextBytes([]byte{0, 1, 2}))
	require.Equal(t, []byte("42"), TextBytes(42))
	require.Equal(t, []byte("-7"), TextBytes(int64(-7)))
	require.Equal(t, []byte("1.5"), TextBytes(1.5))
	require.Equal(t, []byte("true"), TextBytes(true))
	require.Equal(t, []byte("label:x"), TextBytes(label{"x"}))
	require.Equal(t, []byte("10.0.0.1"), TextBytes(netip.MustParseAddr("10.0.0.1")))
}

func TestMurmur3MatchesTextForm(t *testing.T) {
	for seed := uint32(1); seed <= 4; seed++ {
		require.Equal(t, Murmur3("42", seed), Murmur3(42, seed))

		want := murmur3.Sum32WithSeed([]byte("42"), seed)
		require.Equal(t, want, readU32BE(Murmur3(42, seed)))
	}
}

func TestHashWidths(t *testing.T) {
	require.Len(t, Murmur3("v", 1), 4)
	require.Len(t, Murmur3x128("v", 1), 16)
	require.Len(t, XXHash64("v", 1), 8)
}

func TestHashesAreSeeded(t *testing.T) {
	for _, h := range []SeededHash{Murmur3, Murmur3x128, XXHash64} {
		require.Equal(t, h("value", 1), h("value", 1))
		require.NotEqual(t, h("value", 1), h("value", 2))
	}
}

func TestMurmur3x128Layout(t *testing.T) {
	h1, h2 := murmur3.Sum128WithSeed([]byte("v"), 3)
	out := Murmur3x128("v", 3)
	require.Equal(t, uint32(h1>>32), readU32BE(out[0:4]))
	require.Equal(t, uint32(h1), readU32BE(out[4:8]))
	require.Equal(t, uint32(h2>>32), readU32BE(out[8:12]))
	require.Equal(t, uint32(h2), readU32BE(out[12:16]))
}

func TestHashByName(t *testing.T) {
	for _, name := range []string{"", HashNameMurmur3, HashNameMurmur3x128, HashNameXXHash64} {
		h, err := HashByName(name)
		require.NoError(t, err)
		require.NotNil(t, h)
	}
	_, err := HashByName("md5")
	require.ErrorIs(t, err, ErrUnknownHash)
}
