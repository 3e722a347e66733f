package concerts

type CreateConcertRequest struct {
	City      string `json:"city"`
	EventDate string `json:"event_date"`
	Venue     string `json:"venue"`
	EventName string `json:"event_name"`
	EventURL  string `json:"event_url"`
}

type UpdateConcertRequest struct {
	ID string `json:"id"`
	CreateConcertRequest
}
