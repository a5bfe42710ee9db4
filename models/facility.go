package models

// FacilityParameters are the user-supplied lighting inputs. They are captured
// once per run and shared read-only across both cities' computations.
type FacilityParameters struct {
	FacadeAreaM2    float64 `json:"facade_area_m2"`
	LPDWPerM2       float64 `json:"lpd_w_per_m2"`
	ControlFactor   float64 `json:"control_factor"`
	GHIOnThreshold  float64 `json:"ghi_on_threshold"`
	GHIOffThreshold float64 `json:"ghi_off_threshold"`
}

// Normalized returns a copy with out-of-range values clamped: negative areas,
// densities and thresholds go to 0, the control factor is held to [0,1].
func (p FacilityParameters) Normalized() FacilityParameters {
	out := p
	if out.FacadeAreaM2 < 0 {
		out.FacadeAreaM2 = 0
	}
	if out.LPDWPerM2 < 0 {
		out.LPDWPerM2 = 0
	}
	if out.ControlFactor < 0 {
		out.ControlFactor = 0
	}
	if out.ControlFactor > 1 {
		out.ControlFactor = 1
	}
	if out.GHIOnThreshold < 0 {
		out.GHIOnThreshold = 0
	}
	if out.GHIOffThreshold < 0 {
		out.GHIOffThreshold = 0
	}
	return out
}
