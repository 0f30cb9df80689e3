package buhlmann

// Physical constants used throughout the simulation.
const (
	// barPerMeter converts depth in metres of seawater to bar.
	barPerMeter = 0.1

	// waterVaporPressure is the alveolar water vapor pressure in bar
	// (Bühlmann's respiratory value at body temperature).
	waterVaporPressure = 0.0627

	// surfaceN2Fraction is the inert-gas fraction of atmospheric air.
	surfaceN2Fraction = 0.7902
)

// GasMix describes a single constant breathing mixture by its oxygen and
// helium fractions. The nitrogen fraction is derived: N2 = 1 − O2 − He.
type GasMix struct {
	O2 float64 // oxygen fraction, (0, 1]
	He float64 // helium fraction, [0, 1)
}

// Air is surface-equivalent compressed air.
var Air = GasMix{O2: 0.21}

// N2 returns the derived nitrogen fraction of the mix.
func (g GasMix) N2() float64 { return 1 - g.O2 - g.He }

// Compartment holds the absolute inert-gas partial pressures (bar) of a
// single tissue compartment.
type Compartment struct {
	PN2 float64 // nitrogen partial pressure, bar
	PHe float64 // helium partial pressure, bar
}

// total is the combined inert-gas loading of the compartment.
func (c Compartment) total() float64 { return c.PN2 + c.PHe }

// TissueState is the ordered loading of all 16 compartments. It is a
// plain value type: every simulation step returns a fresh TissueState
// and never mutates its input, so states may be freely shared, compared
// and replayed.
type TissueState [compartments]Compartment

// NewTissueState returns the surface-equilibrium state for the given
// surface pressure: nitrogen saturated at the alveolar partial pressure,
// no helium loading.
func NewTissueState(surfacePressure float64) TissueState {
	var ts TissueState

	pn2 := surfaceN2Fraction * (surfacePressure - waterVaporPressure)
	for i := range ts {
		ts[i] = Compartment{PN2: pn2}
	}

	return ts
}

// Stop is one scheduled decompression stop.
type Stop struct {
	Depth   float64 // metres, > 0
	Minutes int     // whole minutes held at Depth, >= 1
}

// Profile is the caller-supplied square dive: descend to MaxDepth, stay
// for BottomTime, then ascend under the planner's staged schedule.
type Profile struct {
	MaxDepth   float64      // metres, >= 0
	BottomTime float64      // minutes, > 0
	Gas        GasMix       // constant breathing mixture
	GFLow      float64      // gradient factor at the first stop, (0, 1.5]
	GFHigh     float64      // gradient factor at the surface, (0, 1.5], >= GFLow
	Variant    ModelVariant // coefficient set, ModelB or ModelC
}

// Plan is the completed, immutable schedule. A nil/empty Stops slice is
// the valid "no decompression required" outcome, not an error.
type Plan struct {
	Variant         ModelVariant
	MaxDepth        float64 // metres
	BottomTime      float64 // minutes, as requested by the caller
	GFLow, GFHigh   float64
	SurfacePressure float64 // bar
	Stops           []Stop  // deepest first; empty when no stops required
	RuntimeMinutes  float64 // descent + bottom + stops + inter-stop ascents
}

// TotalDecompressionMinutes is the sum of all stop durations.
func (p Plan) TotalDecompressionMinutes() int {
	var total int
	for _, s := range p.Stops {
		total += s.Minutes
	}

	return total
}
