package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

// Service runs the save/load flow around the engine: validate, flatten,
// persist, and the reverse hydration for the edit screen.
type Service struct {
	inventories *repository.InventoryRepository
	mealPlans   *repository.MealPlanRepository
}

func NewService(inventories *repository.InventoryRepository, mealPlans *repository.MealPlanRepository) *Service {
	return &Service{inventories: inventories, mealPlans: mealPlans}
}

// Save drives Draft -> Validating -> Ready -> Saving -> Saved. Validation
// failures surface as *ValidationError with the draft left editable; storage
// failures move the draft to StatusSaveFailed without touching its contents,
// so the caller can retry.
func (s *Service) Save(ctx context.Context, d *Draft, existingID uuid.UUID) (uuid.UUID, error) {
	if len(d.AllMealPlans) == 0 {
		plans, err := s.mealPlans.List(ctx)
		if err != nil {
			return uuid.Nil, fmt.Errorf("load meal plans: %w", err)
		}
		for _, p := range plans {
			d.AllMealPlans = append(d.AllMealPlans, p.ID)
		}
	}

	payload, err := d.BuildPayload()
	if err != nil {
		return uuid.Nil, err
	}

	rows, err := rowsFromPayload(payload, existingID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.inventories.Save(ctx, rows); err != nil {
		d.Status = StatusSaveFailed
		return uuid.Nil, fmt.Errorf("save inventory: %w", err)
	}
	d.Status = StatusSaved
	return rows.Header.ID, nil
}

// Load fetches a stored inventory and rebuilds the editable draft.
func (s *Service) Load(ctx context.Context, id uuid.UUID) (*Draft, uuid.UUID, error) {
	rows, err := s.inventories.Get(ctx, id)
	if err != nil {
		return nil, uuid.Nil, err
	}
	payload, err := payloadFromRows(rows)
	if err != nil {
		return nil, uuid.Nil, err
	}
	d, err := Hydrate(payload)
	if err != nil {
		return nil, uuid.Nil, err
	}
	// the meal-plan catalog is reference data, not part of the stored rows
	if len(d.AllMealPlans) == 0 {
		plans, err := s.mealPlans.List(ctx)
		if err != nil {
			return nil, uuid.Nil, fmt.Errorf("load meal plans: %w", err)
		}
		for _, p := range plans {
			d.AllMealPlans = append(d.AllMealPlans, p.ID)
		}
	}
	return d, rows.Header.ID, nil
}

func (s *Service) List(ctx context.Context, hotelID int64) ([]domain.Inventory, error) {
	return s.inventories.List(ctx, hotelID)
}

// GetPayload returns the stored flattened form without rebuilding a draft,
// for read-only consumers.
func (s *Service) GetPayload(ctx context.Context, id uuid.UUID) (*Payload, error) {
	rows, err := s.inventories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return payloadFromRows(rows)
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func fromJSON[T any](raw datatypes.JSON) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	err := json.Unmarshal(raw, &out)
	return out, err
}

func rowsFromPayload(p *Payload, existingID uuid.UUID) (*repository.InventoryRows, error) {
	checkIn, err := ParseDate(p.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(p.CheckOut)
	if err != nil {
		return nil, err
	}
	blackouts, err := toJSON(p.BlackoutDates)
	if err != nil {
		return nil, err
	}

	rows := &repository.InventoryRows{
		Header: domain.Inventory{
			ID:            existingID,
			HotelID:       p.HotelID,
			Mode:          string(p.Mode),
			Status:        string(StatusSaved),
			Country:       p.Country,
			State:         p.State,
			City:          p.City,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Price:         p.Price,
			BlackoutDates: blackouts,
		},
	}
	if rows.Header.ID == uuid.Nil {
		rows.Header.ID = uuid.New()
	}

	for _, rp := range p.Rooms {
		row := domain.InventoryRoom{
			RoomID:          rp.RoomID,
			Name:            rp.Name,
			Adults:          rp.Adults,
			Children:        rp.Children,
			Infants:         rp.Infants,
			MaxPersons:      rp.MaxPersons,
			FrontRoomsCount: rp.FrontRoomsCount,
			Refundable:      rp.Refundable,
			HoldEnabled:     rp.HoldEnabled,
			HoldType:        string(rp.HoldType),
			HoldAmount:      rp.HoldAmount,
			HoldCutoffDays:  rp.HoldCutoffDays,
			HoldLimitHours:  rp.HoldLimitHours,
		}
		if row.MealPlanIDs, err = toJSON(rp.MealPlanIDs); err != nil {
			return nil, err
		}
		if row.Occupancies, err = toJSON(rp.Occupancies); err != nil {
			return nil, err
		}
		if row.WeekendDays, err = toJSON(rp.WeekendDays); err != nil {
			return nil, err
		}
		if row.Ranges, err = toJSON(rp.Ranges); err != nil {
			return nil, err
		}
		if row.BlackoutDates, err = toJSON(rp.BlackoutDates); err != nil {
			return nil, err
		}
		if row.RefundRules, err = toJSON(rp.RefundRules); err != nil {
			return nil, err
		}
		rows.Rooms = append(rows.Rooms, row)
	}

	for _, it := range p.Items {
		rows.Items = append(rows.Items, domain.InventoryLineItem{
			RoomID:     it.RoomID,
			StartDate:  it.StartDate,
			EndDate:    it.EndDate,
			Person:     it.Person,
			MealType:   it.MealType,
			Amount:     it.Amount,
			Type:       string(it.Type),
			RoomsCount: it.RoomsCount,
		})
	}
	for _, ec := range p.ExtraCosts {
		rows.ExtraCosts = append(rows.ExtraCosts, domain.InventoryExtraCost{
			RoomID:     ec.RoomID,
			Type:       string(ec.Day),
			GuestKind:  string(ec.Kind),
			MealPlanID: ec.MealPlanID,
			Amount:     ec.Amount,
		})
	}
	return rows, nil
}

func payloadFromRows(rows *repository.InventoryRows) (*Payload, error) {
	h := rows.Header
	blackouts, err := fromJSON[[]string](h.BlackoutDates)
	if err != nil {
		return nil, err
	}
	p := &Payload{
		Mode:          Mode(h.Mode),
		Country:       h.Country,
		State:         h.State,
		City:          h.City,
		HotelID:       h.HotelID,
		CheckIn:       Day(h.CheckIn).Format(DateLayout),
		CheckOut:      Day(h.CheckOut).Format(DateLayout),
		Price:         h.Price,
		BlackoutDates: blackouts,
	}

	for _, row := range rows.Rooms {
		rp := RoomPayload{
			RoomID:          row.RoomID,
			Name:            row.Name,
			Adults:          row.Adults,
			Children:        row.Children,
			Infants:         row.Infants,
			MaxPersons:      row.MaxPersons,
			FrontRoomsCount: row.FrontRoomsCount,
			Refundable:      row.Refundable,
			HoldEnabled:     row.HoldEnabled,
			HoldType:        HoldType(row.HoldType),
			HoldAmount:      row.HoldAmount,
			HoldCutoffDays:  row.HoldCutoffDays,
			HoldLimitHours:  row.HoldLimitHours,
		}
		if rp.MealPlanIDs, err = fromJSON[[]int64](row.MealPlanIDs); err != nil {
			return nil, err
		}
		if rp.Occupancies, err = fromJSON[[]int](row.Occupancies); err != nil {
			return nil, err
		}
		if rp.WeekendDays, err = fromJSON[[]string](row.WeekendDays); err != nil {
			return nil, err
		}
		if rp.Ranges, err = fromJSON[[]RangeItem](row.Ranges); err != nil {
			return nil, err
		}
		if rp.BlackoutDates, err = fromJSON[[]string](row.BlackoutDates); err != nil {
			return nil, err
		}
		if rp.RefundRules, err = fromJSON[[]PersistedRefundRule](row.RefundRules); err != nil {
			return nil, err
		}
		p.Rooms = append(p.Rooms, rp)
	}

	for _, it := range rows.Items {
		p.Items = append(p.Items, LineItem{
			RoomID:     it.RoomID,
			StartDate:  it.StartDate,
			EndDate:    it.EndDate,
			Person:     it.Person,
			MealType:   it.MealType,
			Amount:     it.Amount,
			Type:       DayType(it.Type),
			RoomsCount: it.RoomsCount,
		})
	}
	for _, ec := range rows.ExtraCosts {
		p.ExtraCosts = append(p.ExtraCosts, ExtraCostItem{
			RoomID:     ec.RoomID,
			Day:        DayType(ec.Type),
			Kind:       GuestKind(ec.GuestKind),
			MealPlanID: ec.MealPlanID,
			Amount:     ec.Amount,
		})
	}
	return p, nil
}
