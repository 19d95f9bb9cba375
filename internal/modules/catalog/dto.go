package catalog

type CreateHotelRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country" validate:"required"`
	State   string `json:"state" validate:"required"`
	City    string `json:"city" validate:"required"`
	Address string `json:"address"`
}

type CreateRoomRequest struct {
	Name        string `json:"name" validate:"required"`
	MaxAdults   int    `json:"max_adults" validate:"required,gt=0"`
	MaxChildren int    `json:"max_children" validate:"gte=0"`
	MaxInfants  int    `json:"max_infants" validate:"gte=0"`
	MaxPersons  int    `json:"max_persons" validate:"required,gt=0"`
}

type CreateMealPlanRequest struct {
	Name string `json:"name" validate:"required"`
}
