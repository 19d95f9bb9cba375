package inventory

import (
	"errors"
	"testing"
)

func TestToPersistedFormDerivesPercentage(t *testing.T) {
	p := &RefundPolicy{Refundable: true}
	if err := p.AddRule(5, 500); err != nil {
		t.Fatalf("AddRule failed: %v", err)
	}

	rows := p.ToPersistedForm(1000)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].DaysBeforeCheckin != 5 || rows[0].Amount != 500 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if rows[0].Percentage == nil || *rows[0].Percentage != 50 {
		t.Fatalf("expected percentage 50, got %v", rows[0].Percentage)
	}
}

func TestToPersistedFormClampsPercentage(t *testing.T) {
	p := &RefundPolicy{Refundable: true}
	_ = p.AddRule(3, 2500)

	rows := p.ToPersistedForm(1000)
	if rows[0].Percentage == nil || *rows[0].Percentage != 100 {
		t.Fatalf("expected clamp to 100, got %v", rows[0].Percentage)
	}
}

func TestToPersistedFormNilPercentageWithoutPrice(t *testing.T) {
	p := &RefundPolicy{Refundable: true}
	_ = p.AddRule(2, 300)

	rows := p.ToPersistedForm(0)
	if rows[0].Percentage != nil {
		t.Fatalf("expected nil percentage at zero effective price, got %v", *rows[0].Percentage)
	}
}

func TestToPersistedFormFiltersNonPositiveDays(t *testing.T) {
	p := &RefundPolicy{Refundable: true, Rules: []RefundRule{
		{DaysBeforeCheckin: 0, Amount: 100},
		{DaysBeforeCheckin: 4, Amount: 100},
	}}
	rows := p.ToPersistedForm(1000)
	if len(rows) != 1 || rows[0].DaysBeforeCheckin != 4 {
		t.Fatalf("expected only the days=4 rule, got %+v", rows)
	}
}

func TestAddRuleValidation(t *testing.T) {
	p := &RefundPolicy{}
	if err := p.AddRule(0, 100); !errors.Is(err, ErrInvalidRefundRule) {
		t.Fatalf("expected ErrInvalidRefundRule for days=0, got %v", err)
	}
	if err := p.AddRule(1, -5); !errors.Is(err, ErrInvalidRefundRule) {
		t.Fatalf("expected ErrInvalidRefundRule for negative amount, got %v", err)
	}
	if err := p.AddRule(1, 0); err != nil {
		t.Fatalf("days=1 amount=0 should be valid, got %v", err)
	}
}

func TestRemoveRuleBounds(t *testing.T) {
	p := &RefundPolicy{}
	_ = p.AddRule(1, 10)
	if err := p.RemoveRule(3); !errors.Is(err, ErrRuleNotFound) {
		t.Fatalf("expected ErrRuleNotFound, got %v", err)
	}
	if err := p.RemoveRule(0); err != nil || len(p.Rules) != 0 {
		t.Fatalf("expected rule removed, err=%v len=%d", err, len(p.Rules))
	}
}
