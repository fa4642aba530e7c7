package models

// Envelopes returned by the backend's action endpoints.

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type InsertResponse struct {
	InsertID string `json:"insertId"`
}
