package inventory

// HoldType selects how the hold amount is interpreted.
type HoldType string

const (
	HoldFlat       HoldType = "flat"
	HoldPercentage HoldType = "percentage"
)

const maxHoldCutoffDays = 30

// HoldBookingPolicy lets guests reserve without paying in full: a hold
// amount, an advance cutoff before check-in, and how long the hold stays
// valid. All constraints apply only while the policy is enabled.
type HoldBookingPolicy struct {
	Enabled    bool     `json:"enabled"`
	Type       HoldType `json:"type,omitempty"`
	Amount     float64  `json:"amount,omitempty"`
	CutoffDays int      `json:"cutoff_days,omitempty"`
	LimitHours int      `json:"limit_hours,omitempty"`
}

// SetEnabled toggles the policy. Turning it off clears the dependent fields,
// so a later re-enable starts from scratch.
func (h *HoldBookingPolicy) SetEnabled(on bool) {
	h.Enabled = on
	if !on {
		h.Type = ""
		h.Amount = 0
		h.CutoffDays = 0
		h.LimitHours = 0
	}
}

// ValidateHoldAmount rejects a flat hold above the nightly price and a
// percentage hold above 100.
func ValidateHoldAmount(amount float64, typ HoldType, nightlyPrice float64) error {
	switch typ {
	case HoldFlat:
		if amount > nightlyPrice {
			return ErrHoldExceedsPrice
		}
	case HoldPercentage:
		if amount > 100 {
			return ErrHoldPercentOver100
		}
	}
	return nil
}

func ValidateHoldCutoff(days int) error {
	if days > maxHoldCutoffDays {
		return ErrHoldMaxDaysExceeded
	}
	return nil
}

func ValidateHoldLimit(hours, cutoffDays int) error {
	if hours > cutoffDays*24 {
		return ErrHoldLimitExceedsCutoff
	}
	return nil
}

// Check recomputes every constraint from the current state. Validators are
// never attached or detached; callers re-run this whenever price, type,
// cutoff or limit changes.
func (h *HoldBookingPolicy) Check(nightlyPrice float64) []error {
	if !h.Enabled {
		return nil
	}
	var errs []error
	if err := ValidateHoldAmount(h.Amount, h.Type, nightlyPrice); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateHoldCutoff(h.CutoffDays); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateHoldLimit(h.LimitHours, h.CutoffDays); err != nil {
		errs = append(errs, err)
	}
	return errs
}
