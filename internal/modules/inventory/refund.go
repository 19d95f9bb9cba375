package inventory

// RefundRule pairs a booking-relative cutoff with an absolute refund amount.
type RefundRule struct {
	DaysBeforeCheckin int     `json:"days_before_checkin"`
	Amount            float64 `json:"amount"`
}

// RefundPolicy is the ordered rule list entered per room. Rules are only
// meaningful while Refundable is on.
type RefundPolicy struct {
	Refundable bool         `json:"refundable"`
	Rules      []RefundRule `json:"rules,omitempty"`
}

func (p *RefundPolicy) AddRule(days int, amount float64) error {
	if days < 1 || amount < 0 {
		return ErrInvalidRefundRule
	}
	p.Rules = append(p.Rules, RefundRule{DaysBeforeCheckin: days, Amount: amount})
	return nil
}

func (p *RefundPolicy) RemoveRule(index int) error {
	if index < 0 || index >= len(p.Rules) {
		return ErrRuleNotFound
	}
	p.Rules = append(p.Rules[:index], p.Rules[index+1:]...)
	return nil
}

// PersistedRefundRule is the stored form: the absolute amount plus its
// percentage of the effective nightly price. Percentage is nil when no
// positive effective price exists to derive it from.
type PersistedRefundRule struct {
	DaysBeforeCheckin int      `json:"days_before_checkin"`
	Percentage        *float64 `json:"percentage"`
	Amount            float64  `json:"amount"`
}

// ToPersistedForm derives the percentage representation against the given
// effective price, clamped to [0,100]. Rules with a non-positive cutoff are
// dropped.
func (p *RefundPolicy) ToPersistedForm(effectivePrice float64) []PersistedRefundRule {
	out := make([]PersistedRefundRule, 0, len(p.Rules))
	for _, r := range p.Rules {
		if r.DaysBeforeCheckin <= 0 {
			continue
		}
		row := PersistedRefundRule{DaysBeforeCheckin: r.DaysBeforeCheckin, Amount: r.Amount}
		if effectivePrice > 0 {
			pct := r.Amount / effectivePrice * 100
			if pct < 0 {
				pct = 0
			}
			if pct > 100 {
				pct = 100
			}
			row.Percentage = &pct
		}
		out = append(out, row)
	}
	return out
}
