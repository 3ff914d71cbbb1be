package request

type SubmitBookingRequest struct {
	GuestEmail string `json:"guest_email" validate:"omitempty,max=254"`
}
