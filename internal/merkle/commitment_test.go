package merkle

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testOccupancy() []uint8 {
	occupancy := make([]uint8, 36)
	for _, i := range []int{0, 1, 2, 9, 15, 20, 26, 30, 33, 35} {
		occupancy[i] = 1
	}
	return occupancy
}

func TestCommitmentRoundTrip(t *testing.T) {
	occupancy := testOccupancy()

	c, err := CommitOccupancy(occupancy, rand.Reader)
	require.NoError(t, err)

	ok, err := VerifyOccupancy(c.RootHex(), c.SaltHex(), occupancy)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCommitmentDetectsMovedShip(t *testing.T) {
	occupancy := testOccupancy()
	c, err := CommitOccupancy(occupancy, rand.Reader)
	require.NoError(t, err)

	moved := append([]uint8(nil), occupancy...)
	moved[35], moved[34] = 0, 1

	ok, err := VerifyOccupancy(c.RootHex(), c.SaltHex(), moved)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCommitmentSaltHidesLayout(t *testing.T) {
	occupancy := testOccupancy()

	first, err := CommitOccupancy(occupancy, bytes.NewReader(bytes.Repeat([]byte{1}, 32)))
	require.NoError(t, err)
	second, err := CommitOccupancy(occupancy, bytes.NewReader(bytes.Repeat([]byte{2}, 32)))
	require.NoError(t, err)

	require.NotEqual(t, first.RootHex(), second.RootHex())

	ok, err := VerifyOccupancy(first.RootHex(), second.SaltHex(), occupancy)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCommitmentShortSaltSource(t *testing.T) {
	_, err := CommitOccupancy(testOccupancy(), bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestVerifyOccupancyInvalidHex(t *testing.T) {
	tests := []struct {
		name    string
		rootHex string
		saltHex string
	}{
		{"missing prefix", "abc", "0x1"},
		{"not hex", "0xzz", "0x1"},
		{"empty salt", "0x1", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := VerifyOccupancy(test.rootHex, test.saltHex, testOccupancy())
			require.Error(t, err)
		})
	}
}

func TestBuildFixedTree(t *testing.T) {
	_, err := BuildFixedTree(testOccupancy(), 36, HashLeafMiMC(0))
	require.Error(t, err, "size must be a power of two")

	_, err = BuildFixedTree(make([]uint8, 65), TreeSize, HashLeafMiMC(0))
	require.Error(t, err, "too many leaves")

	tree, err := BuildFixedTree(testOccupancy(), TreeSize, HashLeafMiMC(0))
	require.NoError(t, err)
	require.Equal(t, 6, tree.Depth)
	require.Len(t, tree.Levels[0], TreeSize)
}
