package lighting

import "daylight-server/models"

// EnergyKWh converts lit hours into energy for the given facility:
// LPD (W/m²) × façade area (m²) × lit hours × control factor, in kWh.
// Pure; linear in each factor.
func EnergyKWh(litHours float64, params models.FacilityParameters) float64 {
	return params.LPDWPerM2 * params.FacadeAreaM2 * litHours * params.ControlFactor / 1000
}
