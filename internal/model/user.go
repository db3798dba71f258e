package model

import "time"

// User represents a restaurant account in the system
type User struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	SenhaHash string    `json:"-"` // Do not expose password hash in JSON responses
	Foto      []byte    `json:"-"` // Raw photo bytes; transported as a data URI, never as raw JSON
	FotoTipo  *string   `json:"-"` // Media type of the photo, nil when no photo was uploaded
	CreatedAt time.Time `json:"created_at"`
}
