package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	{ // Basic allocation and chained mutation
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		M.Scale(2).AddScalar(1)
		assert.Equal(t, []float64{3, 5, 7, 9}, M.Data())
		assert.Equal(t, 9., M.Max())
		assert.Equal(t, 3., M.Min())
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1}) })
	}
	{ // Product into a fresh matrix, then an elementwise map in place
		A := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
		B := NewMatrix(3, 2, []float64{7, 8, 9, 10, 11, 12})
		C := A.Mul(B)
		assert.Equal(t, []float64{58, 64, 139, 154}, C.Data())
		// Receivers unchanged
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, A.Data())
		C.Apply(func(v float64) float64 { return -v })
		assert.Equal(t, -58., C.At(0, 0))
		assert.Equal(t, -154., C.At(1, 1))
	}
	{ // Column access and assignment round trip
		M := NewMatrix(3, 2)
		M.SetCol(1, []float64{1, 2, 3})
		assert.Equal(t, []float64{1, 2, 3}, M.Col(1))
		assert.Panics(t, func() { M.SetCol(0, []float64{1}) })
	}
	{ // Sparse second difference applied against a matrix column
		n := 5
		d := NewDOK(n, n)
		for i := 1; i < n-1; i++ {
			d.Set(i, i-1, 1)
			d.Set(i, i, -2)
			d.Set(i, i+1, 1)
		}
		L := d.ToCSR()
		M := NewMatrix(n, 1)
		// Quadratic field has constant second difference
		for i := 0; i < n; i++ {
			M.Set(i, 0, float64(i*i))
		}
		out := M.MulVecCol(L, 0)
		for i := 1; i < n-1; i++ {
			assert.True(t, math.Abs(out[i]-2) < 1.e-12)
		}
	}
}
