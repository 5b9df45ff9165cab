package dto

// MessageResponse carries a single localized message, for errors and for
// endpoints whose success result is only a confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}
