// Package physio - oxygen-cascade arithmetic.
package physio

// Oxygen-transport constants.
const (
	// hbO2BindingCapacity is the O2 carried per gram of saturated
	// hemoglobin, mL/g (Hüfner's constant, in-vivo value).
	hbO2BindingCapacity = 1.34

	// o2Solubility is dissolved O2 per mmHg of arterial tension,
	// mL/dL/mmHg.
	o2Solubility = 0.003

	// waterVaporMmHg is saturated water vapor pressure at 37 °C.
	waterVaporMmHg = 47.0
)

// AlveolarO2 returns the alveolar oxygen tension PAO2 in mmHg from the
// alveolar gas equation:
//
//	PAO2 = FiO2·(Pb − 47) − PaCO2/RQ
//
// fio2 is the inspired oxygen fraction (0,1], barometricMmHg the ambient
// pressure in mmHg, paco2 the arterial CO2 tension in mmHg, rq the
// respiratory quotient (typically 0.8).
func AlveolarO2(fio2, barometricMmHg, paco2, rq float64) (float64, error) {
	if fio2 <= 0 || fio2 > 1 {
		return 0, ErrBadFraction
	}
	if barometricMmHg <= 0 || paco2 < 0 {
		return 0, ErrBadPressure
	}
	if rq <= 0 {
		return 0, ErrBadRatio
	}

	return fio2*(barometricMmHg-waterVaporMmHg) - paco2/rq, nil
}

// ArterialO2Content returns CaO2 in mL O2 per dL of blood:
//
//	CaO2 = 1.34·Hb·SaO2 + 0.003·PaO2
//
// hbGdl is hemoglobin in g/dL, sao2 the arterial saturation (0,1],
// pao2 the arterial oxygen tension in mmHg.
func ArterialO2Content(hbGdl, sao2, pao2 float64) (float64, error) {
	if hbGdl <= 0 {
		return 0, ErrBadConcentration
	}
	if sao2 <= 0 || sao2 > 1 {
		return 0, ErrBadFraction
	}
	if pao2 < 0 {
		return 0, ErrBadPressure
	}

	return hbO2BindingCapacity*hbGdl*sao2 + o2Solubility*pao2, nil
}

// OxygenDelivery returns DO2 in mL O2 per minute:
//
//	DO2 = CO·CaO2·10
//
// cardiacOutputLMin is cardiac output in L/min, cao2 the arterial oxygen
// content in mL/dL (the factor 10 converts dL to L).
func OxygenDelivery(cardiacOutputLMin, cao2 float64) (float64, error) {
	if cardiacOutputLMin <= 0 || cao2 <= 0 {
		return 0, ErrBadConcentration
	}

	return cardiacOutputLMin * cao2 * 10, nil
}
