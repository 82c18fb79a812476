package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by a login session token.
// UserID (the subject) is the identity string that namespaces every record
// store access for the session.
type SessionClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
