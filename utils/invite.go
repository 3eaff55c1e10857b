package utils

import (
	"errors"
	"time"

	"laundr/config"

	"github.com/golang-jwt/jwt"
)

// Errors returned by VerifyInviteToken. Tampered and expired tokens are
// reported distinctly so callers can answer claims precisely.
var (
	ErrInviteTokenInvalid = errors.New("invite token is invalid")
	ErrInviteTokenExpired = errors.New("invite token has expired")
)

func inviteSecret() []byte {
	secret := config.AppConfig.InviteSecret
	if secret == "" {
		secret = "laundr-invite-dev"
	}
	return []byte(secret)
}

// GenerateInviteToken creates a signed claim token for an off-platform load
// recipient. The recipient identity is embedded as the subject together with
// the creation timestamp, so the token can later prove who the load was
// addressed to and when.
func GenerateInviteToken(recipientID string, amount float64) (string, error) {
	claims := jwt.MapClaims{
		"sub":    recipientID,
		"amount": amount,
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(inviteSecret())
}

// VerifyInviteToken validates signature and age of an invite token and
// returns the recipient identity it was issued for. Tokens older than maxAge
// fail with ErrInviteTokenExpired; anything tampered or malformed fails with
// ErrInviteTokenInvalid.
func VerifyInviteToken(tokenString string, maxAge time.Duration) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return inviteSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInviteTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInviteTokenInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInviteTokenInvalid
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return "", ErrInviteTokenInvalid
	}
	if time.Since(time.Unix(int64(iat), 0)) > maxAge {
		return "", ErrInviteTokenExpired
	}
	return sub, nil
}
