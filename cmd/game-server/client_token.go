package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const clientCookieName = "arena_token"

const clientTokenTTL = 14 * 24 * time.Hour

var errBadClientToken = errors.New("bad client token")

// clientID resolves the caller's session key from the signed cookie, minting
// a fresh one when the cookie is missing or invalid. The returned key is what
// the session manager indexes on, so a stolen cookie is the only way to reach
// somebody else's game.
func clientID(w http.ResponseWriter, r *http.Request, secret string) string {
	if c, err := r.Cookie(clientCookieName); err == nil {
		if sid, err := parseClientToken(c.Value, secret); err == nil {
			return sid
		}
	}
	sid := uuid.NewString()
	token, err := signClientToken(sid, secret)
	if err != nil {
		// Fall back to an uncookied key; the caller still gets a working
		// game for this request, it just does not survive the next one.
		return sid
	}
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(clientTokenTTL),
	})
	return sid
}

func signClientToken(sid, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(clientTokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func parseClientToken(raw, secret string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errBadClientToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errBadClientToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errBadClientToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errBadClientToken
	}
	return sid, nil
}
