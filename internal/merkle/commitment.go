package merkle

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// TreeSize covers the 36 cells of a default grid.
const TreeSize = 64

// Commitment binds a fleet layout before the first shot. Only the salted
// root is published; the salt is revealed when the match is over.
type Commitment struct {
	tree       *Tree
	salt       *big.Int
	saltedRoot *big.Int
}

// CommitOccupancy builds the tree over the occupancy bitmap and salts its
// root with a random field element read from rnd.
func CommitOccupancy(occupancy []uint8, rnd io.Reader) (*Commitment, error) {
	tree, err := BuildFixedTree(occupancy, TreeSize, HashLeafMiMC(0))
	if err != nil {
		return nil, err
	}

	saltBytes := make([]byte, 32)
	if _, err := io.ReadFull(rnd, saltBytes); err != nil {
		return nil, err
	}
	// reduce so the salt is a valid field element for MiMC
	salt := new(big.Int).SetBytes(saltBytes)
	salt.Mod(salt, fr.Modulus())

	return &Commitment{
		tree:       tree,
		salt:       salt,
		saltedRoot: HashNodeMiMC(salt, tree.Root()),
	}, nil
}

func (c *Commitment) RootHex() string {
	return fmt.Sprintf("0x%x", c.saltedRoot)
}

func (c *Commitment) SaltHex() string {
	return fmt.Sprintf("0x%x", c.salt)
}

// VerifyOccupancy recomputes the salted root from a revealed layout.
func VerifyOccupancy(rootHex, saltHex string, occupancy []uint8) (bool, error) {
	root, err := parseHex(rootHex)
	if err != nil {
		return false, err
	}
	salt, err := parseHex(saltHex)
	if err != nil {
		return false, err
	}

	tree, err := BuildFixedTree(occupancy, TreeSize, HashLeafMiMC(0))
	if err != nil {
		return false, err
	}
	return HashNodeMiMC(salt, tree.Root()).Cmp(root) == 0, nil
}

func parseHex(s string) (*big.Int, error) {
	if len(s) < 3 || s[:2] != "0x" {
		return nil, fmt.Errorf("invalid hex format: %q", s)
	}
	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, fmt.Errorf("can't parse hex value: %q", s)
	}
	return v, nil
}
