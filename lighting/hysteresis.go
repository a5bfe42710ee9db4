// Package lighting holds the façade-lighting core: the hysteresis lighting
// state machine, monthly rollups, and the energy estimator.
package lighting

// DeriveLightingStates runs a two-state hysteresis machine over an ordered
// hourly GHI series and returns one lights-on flag per input hour.
//
// The machine starts OFF. It switches ON when irradiance drops below onThr
// and back OFF when irradiance rises above offThr; inside the dead band
// [onThr, offThr] the state holds, which prevents rapid toggling near a
// single boundary. Degenerate thresholds (onThr >= offThr) are permitted:
// the OFF->ON check runs first each step, so the outcome stays
// deterministic. NaN readings fail both comparisons and hold the state.
func DeriveLightingStates(ghi []float64, onThr, offThr float64) []bool {
	states := make([]bool, len(ghi))
	lightsOn := false
	for i, reading := range ghi {
		if !lightsOn && reading < onThr {
			lightsOn = true
		} else if lightsOn && reading > offThr {
			lightsOn = false
		}
		states[i] = lightsOn
	}
	return states
}
