package model

import "github.com/golang-jwt/jwt/v5"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	HostID string `json:"hostId"`
}

// HostClaims is the JWT payload for an operator allowed to launch crawls
// and generation runs.
type HostClaims struct {
	HostID string `json:"hostId"`
	jwt.RegisteredClaims
}
