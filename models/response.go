package models

// ErrorResponse représente une réponse d'erreur JSON
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse représente une réponse de succès avec un simple message
type MessageResponse struct {
	Message string `json:"message"`
}
