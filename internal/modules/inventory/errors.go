package inventory

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange     = errors.New("range start must not be after range end")
	ErrDuplicateRange   = errors.New("identical range already exists")
	ErrOverlappingRange = errors.New("range overlaps an existing range")
	ErrRangeNotFound    = errors.New("range not found")
	ErrRoomNotFound     = errors.New("room not selected")

	ErrInvalidRefundRule = errors.New("refund rule requires days >= 1 and amount >= 0")
	ErrRuleNotFound      = errors.New("refund rule not found")

	ErrHoldExceedsPrice       = errors.New("hold amount exceeds nightly price")
	ErrHoldPercentOver100     = errors.New("hold percentage exceeds 100")
	ErrHoldMaxDaysExceeded    = errors.New("hold cutoff exceeds 30 days")
	ErrHoldLimitExceedsCutoff = errors.New("hold validity exceeds cutoff window")

	ErrDuplicateBlackoutDate = errors.New("blackout date already added")
	ErrInvalidDate           = errors.New("invalid date")

	ErrInvalidPrice     = errors.New("price must be a non-negative integer")
	ErrInvalidOccupancy = errors.New("occupancy outside room capacity")
)

// ValidationError carries every completeness violation found before save.
// Error() returns only the first message; callers that want the full list
// read Violations directly.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return e.Violations[0].Message
}

// Violation is a single human-readable completeness failure.
type Violation struct {
	RoomID  int64  `json:"room_id,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func violationf(roomID int64, field, format string, args ...any) Violation {
	return Violation{RoomID: roomID, Field: field, Message: fmt.Sprintf(format, args...)}
}
