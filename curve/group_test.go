package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupMatchesPointMethods(t *testing.T) {
	w := testWitness()
	g := testGenerator(t, w)
	group := Group[*big.Int]{W: w}

	assert.True(t, group.Equal(group.Zero(), Identity(w)))

	sum := group.Add(g, g)
	assert.True(t, sum.Equal(g.Add(g)))

	doubled := group.ScalarMul(big.NewInt(2), g)
	assert.True(t, doubled.Equal(sum))

	assert.True(t, group.Neg(g).Equal(g.Neg()))
	assert.True(t, group.Sub(sum, g).Equal(g))

	assert.Equal(t, 0, group.Order().Cmp(w.Order))
}
