package driver

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"

	"github.com/RogueRocketeer/gofluid/model_problems/Mixing1D"
)

/*
Driver is the scripting-facing surface over a mixing case: bounds-checked
getters and setters for the solution fields, derived transport properties
and boundary fluxes, plus opaque storage for adjoint-style quantities an
outer optimization loop wants to attach. All getters return copies; none
of the accessors hold solver logic.
*/
type Driver struct {
	sim *Mixing1D.Mixing
	log *logrus.Logger

	markers map[string][]int

	// Opaque adjoint-side storage, set and read back by the caller
	adjointSource map[int][]float64
	tractions     map[string][]float64
	normalHeat    map[string]float64
}

// Boundary marker tags registered for every case
const (
	MarkerLeft  = "left"
	MarkerRight = "right"
)

func New(sim *Mixing1D.Mixing, log *logrus.Logger) (d *Driver) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	d = &Driver{
		sim:           sim,
		log:           log,
		markers:       make(map[string][]int),
		adjointSource: make(map[int][]float64),
		tractions:     make(map[string][]float64),
		normalHeat:    make(map[string]float64),
	}
	d.markers[MarkerLeft] = []int{0}
	d.markers[MarkerRight] = []int{sim.K - 1}
	return
}

// RegisterMarker names a set of probe nodes for marker-wise queries
func (d *Driver) RegisterMarker(tag string, nodes []int) (err error) {
	if len(nodes) == 0 {
		err = fmt.Errorf("marker %s has no nodes", tag)
		return
	}
	for _, i := range nodes {
		if i < 0 || i >= d.sim.K {
			err = fmt.Errorf("marker %s node %d out of range [0,%d)", tag, i, d.sim.K)
			return
		}
	}
	d.markers[tag] = append([]int{}, nodes...)
	d.log.WithFields(logrus.Fields{"marker": tag, "nodes": len(nodes)}).Info("registered marker")
	return
}

// MarkerTags lists the registered markers in sorted order
func (d *Driver) MarkerTags() (tags []string) {
	for tag := range d.markers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return
}

func (d *Driver) markerNodes(tag string) (nodes []int, err error) {
	var ok bool
	if nodes, ok = d.markers[tag]; !ok {
		err = fmt.Errorf("unknown marker %s", tag)
	}
	return
}

// NumNodes returns the solution size the node-indexed accessors expect
func (d *Driver) NumNodes() int { return d.sim.K }

func (d *Driver) GetTemperatures() (T []float64) {
	T = d.sim.Temperatures()
	return
}

func (d *Driver) GetMassFractions(scalar int) (Y []float64) {
	Y = d.sim.MassFractions(scalar)
	return
}

func (d *Driver) GetDensities() (Rho []float64) {
	Rho = append([]float64{}, d.sim.Rho...)
	return
}

func (d *Driver) GetLaminarViscosities() (Mu []float64) {
	Mu = append([]float64{}, d.sim.Mu...)
	return
}

func (d *Driver) GetThermalConductivities() (Kt []float64) {
	Kt = append([]float64{}, d.sim.Kt...)
	return
}

func (d *Driver) GetSpecificHeats() (Cp []float64) {
	Cp = append([]float64{}, d.sim.Cp...)
	return
}

// GetSpeedOfSound evaluates sqrt(gamma*R*T) node by node through the fluid
// model
func (d *Driver) GetSpeedOfSound() (C []float64) {
	var (
		fm = d.sim.FM
	)
	C = make([]float64, d.sim.K)
	for i := range C {
		scalars, T := d.sim.NodeState(i)
		if err := fm.SetStateT(T, scalars); err != nil {
			panic(err)
		}
		C[i] = math.Sqrt(fm.Gamma() * fm.GasConstant * fm.Temperature)
	}
	return
}

func (d *Driver) GetMarkerTemperatures(tag string) (T []float64, err error) {
	var nodes []int
	if nodes, err = d.markerNodes(tag); err != nil {
		return
	}
	all := d.sim.Temperatures()
	T = make([]float64, len(nodes))
	for i, n := range nodes {
		T[i] = all[n]
	}
	return
}

func (d *Driver) GetMarkerLaminarViscosities(tag string) (Mu []float64, err error) {
	var nodes []int
	if nodes, err = d.markerNodes(tag); err != nil {
		return
	}
	Mu = make([]float64, len(nodes))
	for i, n := range nodes {
		Mu[i] = d.sim.Mu[n]
	}
	return
}

// GetMarkerHeatFluxes returns the boundary conductive flux as a dimensioned
// W/m^2 quantity. Only the two boundary markers carry a heat flux.
func (d *Driver) GetMarkerHeatFluxes(tag string) (q *unit.Unit, err error) {
	var wattPerM2 = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3}
	switch tag {
	case MarkerLeft:
		q = unit.New(d.sim.HeatFlux(0), wattPerM2)
	case MarkerRight:
		q = unit.New(d.sim.HeatFlux(d.sim.K-1), wattPerM2)
	default:
		err = fmt.Errorf("heat flux defined on markers %s and %s, have %s", MarkerLeft, MarkerRight, tag)
	}
	return
}

// SetMarkerNormalHeatFluxes stores a prescribed wall heat flux for the outer
// coupling loop to read back; the model problem's Dirichlet ends stand in
// for the thermal boundary condition itself
func (d *Driver) SetMarkerNormalHeatFluxes(tag string, q float64) (err error) {
	if _, err = d.markerNodes(tag); err != nil {
		return
	}
	d.normalHeat[tag] = q
	d.log.WithFields(logrus.Fields{"marker": tag, "q": q}).Info("set normal heat flux")
	return
}

func (d *Driver) GetMarkerNormalHeatFluxes(tag string) (q float64, err error) {
	var ok bool
	if q, ok = d.normalHeat[tag]; !ok {
		err = fmt.Errorf("no prescribed heat flux on marker %s", tag)
	}
	return
}

// UpdateFarfield replaces the right-end boundary state and revalidates it
// against the fluid model
func (d *Driver) UpdateFarfield(T float64, scalars []float64) (err error) {
	if T <= 0 {
		err = fmt.Errorf("farfield temperature must be positive, have %v", T)
		return
	}
	if len(scalars) != d.sim.NScalars {
		err = fmt.Errorf("farfield carries %d transported scalars, have %d", d.sim.NScalars, len(scalars))
		return
	}
	var sum float64
	for _, y := range scalars {
		if y < 0 || y > 1 {
			err = fmt.Errorf("farfield mass fraction %v outside [0,1]", y)
			return
		}
		sum += y
	}
	if sum > 1 {
		err = fmt.Errorf("farfield mass fractions sum to %v, leaving a negative closure species", sum)
		return
	}
	if err = d.sim.FM.SetStateT(T, scalars); err != nil {
		return
	}
	d.sim.Out = Mixing1D.BCState{Scalars: append([]float64{}, scalars...), T: T}
	d.log.WithField("T", T).Info("updated farfield state")
	return
}

// SetOperatingPressure changes the thermodynamic pressure behind the fluid
// model; density and properties follow at the next evaluation
func (d *Driver) SetOperatingPressure(P float64) (err error) {
	if P <= 0 {
		err = fmt.Errorf("operating pressure must be positive, have %v", P)
		return
	}
	d.sim.FM.Pressure = P
	return
}

// SetAdjointSourceTerm attaches a per-node source vector; storage only
func (d *Driver) SetAdjointSourceTerm(node int, vals []float64) (err error) {
	if node < 0 || node >= d.sim.K {
		err = fmt.Errorf("node %d out of range [0,%d)", node, d.sim.K)
		return
	}
	d.adjointSource[node] = append([]float64{}, vals...)
	return
}

func (d *Driver) GetAdjointSourceTerm(node int) (vals []float64, err error) {
	var ok bool
	if vals, ok = d.adjointSource[node]; !ok {
		err = fmt.Errorf("no adjoint source stored at node %d", node)
		return
	}
	vals = append([]float64{}, vals...)
	return
}

// SetMarkerAdjointTractions attaches adjoint tractions to a marker; storage
// only, read back by the outer loop
func (d *Driver) SetMarkerAdjointTractions(tag string, vals []float64) (err error) {
	var nodes []int
	if nodes, err = d.markerNodes(tag); err != nil {
		return
	}
	if len(vals) != len(nodes) {
		err = fmt.Errorf("marker %s has %d nodes, have %d tractions", tag, len(nodes), len(vals))
		return
	}
	d.tractions[tag] = append([]float64{}, vals...)
	return
}

func (d *Driver) GetMarkerAdjointTractions(tag string) (vals []float64, err error) {
	var ok bool
	if vals, ok = d.tractions[tag]; !ok {
		err = fmt.Errorf("no adjoint tractions stored on marker %s", tag)
		return
	}
	vals = append([]float64{}, vals...)
	return
}
