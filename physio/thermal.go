// Package physio - thermal stress and fluid balance.
package physio

import "math"

// Wind chill validity envelope (Environment Canada / NWS 2001).
const (
	windChillMaxTempC   = 10.0
	windChillMinWindKmh = 4.8
)

// WindChill returns the 2001 JAG/TI wind chill temperature in °C.
//
//	WCT = 13.12 + 0.6215·T − 11.37·v^0.16 + 0.3965·T·v^0.16
//
// with T the air temperature in °C and v the wind speed in km/h at 10 m.
//
// Errors: ErrWindChillRange when T > 10 °C or v < 4.8 km/h — the
// regression is not defined there and extrapolating it misleads.
func WindChill(tempC, windKmh float64) (float64, error) {
	if tempC > windChillMaxTempC || windKmh < windChillMinWindKmh {
		return 0, ErrWindChillRange
	}

	v := math.Pow(windKmh, 0.16)

	return 13.12 + 0.6215*tempC - 11.37*v + 0.3965*tempC*v, nil
}

// HeatIndex returns the apparent temperature in °C for shaded, light-wind
// conditions, using the NWS Rothfusz regression with its low-range
// simple-formula fallback and the two published adjustment terms.
//
// tempC is the dry-bulb temperature in °C; relHumidity in percent [0,100].
//
// Errors: ErrHumidityRange for humidity outside [0, 100].
func HeatIndex(tempC, relHumidity float64) (float64, error) {
	if relHumidity < 0 || relHumidity > 100 {
		return 0, ErrHumidityRange
	}

	// The regression is published in °F.
	tf := tempC*9/5 + 32
	rh := relHumidity

	simple := 0.5 * (tf + 61.0 + (tf-68.0)*1.2 + rh*0.094)
	if (simple+tf)/2 < 80 {
		return fahrenheitToCelsius(simple), nil
	}

	hi := -42.379 +
		2.04901523*tf +
		10.14333127*rh -
		0.22475541*tf*rh -
		6.83783e-3*tf*tf -
		5.481717e-2*rh*rh +
		1.22874e-3*tf*tf*rh +
		8.5282e-4*tf*rh*rh -
		1.99e-6*tf*tf*rh*rh

	// Dry-heat adjustment.
	if rh < 13 && tf >= 80 && tf <= 112 {
		hi -= ((13 - rh) / 4) * math.Sqrt((17-math.Abs(tf-95))/17)
	}
	// Humid low-80s adjustment.
	if rh > 85 && tf >= 80 && tf <= 87 {
		hi += ((rh - 85) / 10) * ((87 - tf) / 5)
	}

	return fahrenheitToCelsius(hi), nil
}

func fahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// SweatRate returns the fluid-balance sweat rate in litres per hour:
//
//	(preKg − postKg + fluidL − urineL) / hours
//
// preKg/postKg are nude body weights before and after the session
// (1 kg of mass loss ≈ 1 L of sweat), fluidL the fluid drunk during it
// and urineL the urine produced.
//
// Errors: ErrBadWeight for non-positive weights, ErrBadFluidVolume for
// negative volumes, ErrBadDuration for a non-positive session length.
func SweatRate(preKg, postKg, fluidL, urineL, hours float64) (float64, error) {
	if preKg <= 0 || postKg <= 0 {
		return 0, ErrBadWeight
	}
	if fluidL < 0 || urineL < 0 {
		return 0, ErrBadFluidVolume
	}
	if hours <= 0 {
		return 0, ErrBadDuration
	}

	return (preKg - postKg + fluidL - urineL) / hours, nil
}
