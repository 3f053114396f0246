package payments

// CheckoutSessionRequest mirrors the booking the client wants to pay for.
type CheckoutSessionRequest struct {
	Seats      []string `json:"seats" binding:"required,min=1,dive,required"`
	TotalPrice float64  `json:"totalPrice" binding:"gte=0"`
}
