package DEC1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid1D(t *testing.T) {
	g, err := NewGrid1D(0, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, g.XP.Len())
	assert.Equal(t, 10, g.XD.Len())
	assert.InDelta(t, 0.1, g.Dx, 1.e-15)
	assert.Equal(t, 0., g.XP.AtVec(0))
	assert.InDelta(t, 0.9, g.XP.AtVec(9), 1.e-15)
	assert.InDelta(t, 0.05, g.XD.AtVec(0), 1.e-15)
	assert.InDelta(t, 0.95, g.XD.AtVec(9), 1.e-15)
	for i := 1; i < g.K; i++ {
		assert.InDelta(t, g.Dx, g.XP.AtVec(i)-g.XP.AtVec(i-1), 1.e-14)
		assert.InDelta(t, g.Dx, g.XD.AtVec(i)-g.XD.AtVec(i-1), 1.e-14)
	}
	a, b := g.PrimalCell(10) // wraps to cell 0
	assert.Equal(t, 0., a)
	assert.InDelta(t, 0.1, b, 1.e-15)
	a, b = g.DualCell(0)
	assert.InDelta(t, -0.05, a, 1.e-15)
	assert.InDelta(t, 0.05, b, 1.e-15)
	X := g.SamplePoints(4)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, X)
	assert.Equal(t, []float64{0}, g.SamplePoints(1))
	X = g.SamplePoints(1000)
	assert.Len(t, X, 1000)
	assert.Equal(t, 0., X[0])
	assert.InDelta(t, 0.999, X[999], 1.e-14)
	for i := 1; i < len(X); i++ {
		assert.InDelta(t, 0.001, X[i]-X[i-1], 1.e-14)
	}
	assert.Equal(t, 1., g.Length())

	_, err = NewGrid1D(0, 1, 0)
	assert.Error(t, err)
	_, err = NewGrid1D(1, 1, 4)
	assert.Error(t, err)
}
