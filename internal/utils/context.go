package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey    ContextKey = "claims"
	SubjectKey   ContextKey = "subject"
	RequestIDKey ContextKey = "request_id"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrNoSubjectInClaims = errors.New("no sub found in claims")
)

// GetSubjectFromContext returns the authenticated caller's "sub" claim.
func GetSubjectFromContext(c context.Context) (string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", ErrNoSubjectInClaims
	}

	return subject, nil
}

func GetRequestIDFromContext(c context.Context) string {
	requestID, _ := c.Value(RequestIDKey).(string)
	return requestID
}
