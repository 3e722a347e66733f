package carousel

type CreateCarouselRequest struct {
	Picture64 string `json:"picture64"`
}

type UpdateCarouselRequest struct {
	ID string `json:"id"`
	CreateCarouselRequest
}

type SwitchPositionRequest struct {
	// Direction is "left" (towards position 0) or "right".
	Direction string `json:"direction"`
}
