// Package physio collects the single-formula physiology calculators that
// surround dive planning in field practice: thermal stress before and
// after the dive, fluid loss, occupational noise exposure and the
// oxygen cascade.
//
// Every calculator is a small pure function over validated inputs with a
// sentinel error per rejection cause — no state, no I/O, no hidden
// units. Inputs and outputs use the conventional unit for each formula
// (°C and km/h for wind chill, mmHg for the oxygen cascade, dBA and
// hours for noise dose) and say so at every signature.
//
// These are screening tools for research and education, not clinical or
// regulatory instruments.
package physio
