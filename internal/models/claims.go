package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an access token: the caller's id and username
// next to the registered JWT fields.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthIdentity is the verified caller attached to a request.
type AuthIdentity struct {
	UserID   uuid.UUID
	Username string
}
