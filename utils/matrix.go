package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Data() []float64 {
	return m.RawMatrix().Data
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.CloneFrom(m.M)
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

// MulVec multiplies a mat.Matrix (dense or sparse) against column j of the
// receiver, returning a new vector of values
func (m Matrix) MulVecCol(A mat.Matrix, j int) (out []float64) {
	var (
		nr, _ = A.Dims()
	)
	v := mat.NewVecDense(nr, nil)
	v.MulVec(A, m.M.ColView(j))
	out = v.RawVector().Data
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	var (
		nr, _ = m.Dims()
	)
	if len(data) != nr {
		panic(fmt.Errorf("wrong length %d, needed %d", len(data), nr))
	}
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Col(j int) (data []float64) {
	var (
		nr, _ = m.Dims()
	)
	data = make([]float64, nr)
	mat.Col(data, j, m.M)
	return
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.M.Add(m.M, A.M)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.M.Scale(a, m.M)
	return m
}

func (m Matrix) AddScalar(a float64) Matrix { // Changes receiver
	d := m.Data()
	for i := range d {
		d[i] += a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	d := m.Data()
	for i, val := range d {
		d[i] = f(val)
	}
	return m
}

func (m Matrix) Min() (min float64) {
	min = mat.Min(m.M)
	return
}

func (m Matrix) Max() (max float64) {
	max = mat.Max(m.M)
	return
}
