package payments

// CheckoutSessionResponse carries the hosted checkout identifiers back to the
// client, which redirects to URL.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
