package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing authorization token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the identity carried by a verified credential.
type Claims struct {
	RecordID   int64     // users.id
	UserID     string    // users.user_id, also names the stored picture
	LanguageID int       // language at the time the token was issued
	ExpiresAt  time.Time // mandatory
}

// CredentialVerifier decodes and validates a signed credential.
type CredentialVerifier interface {
	Verify(token string) (*Claims, error)
}

type credentialVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewCredentialVerifier(secret string) CredentialVerifier {
	return &credentialVerifier{secret: []byte(secret), now: time.Now}
}

// Verify accepts the raw token or "Bearer <token>". Any signature, shape or
// expiry problem is reported as KindInvalidCredential; an empty value as
// KindMissingCredential.
func (v *credentialVerifier) Verify(raw string) (*Claims, error) {
	const op = "verify credential"

	tokenString := strings.TrimSpace(raw)
	const scheme = "Bearer "
	if len(tokenString) >= len(scheme) && strings.EqualFold(tokenString[:len(scheme)], scheme) {
		tokenString = strings.TrimSpace(tokenString[len(scheme):])
	}
	if tokenString == "" {
		return nil, Fail(KindMissingCredential, op, ErrMissingToken)
	}

	mapClaims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, mapClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return v.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, Fail(KindInvalidCredential, op, fmt.Errorf("%w: %v", ErrExpiredToken, err))
		}
		return nil, Fail(KindInvalidCredential, op, fmt.Errorf("%w: %v", ErrInvalidToken, err))
	}
	if !token.Valid {
		return nil, Fail(KindInvalidCredential, op, ErrInvalidToken)
	}

	recordID, err := intClaim(mapClaims, "id")
	if err != nil {
		return nil, Fail(KindInvalidCredential, op, err)
	}
	userID, err := stringClaim(mapClaims, "user_id")
	if err != nil {
		return nil, Fail(KindInvalidCredential, op, err)
	}
	languageID, err := intClaim(mapClaims, "language_id")
	if err != nil {
		return nil, Fail(KindInvalidCredential, op, err)
	}
	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, Fail(KindInvalidCredential, op, fmt.Errorf("%w: exp claim", ErrInvalidToken))
	}

	return &Claims{
		RecordID:   recordID,
		UserID:     userID,
		LanguageID: int(languageID),
		ExpiresAt:  exp.Time,
	}, nil
}

// IssueToken signs a credential for claims, valid for ttl from now.
// Used by the CLI and tests; production tokens come from the login service.
func IssueToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":          claims.RecordID,
		"user_id":     claims.UserID,
		"language_id": claims.LanguageID,
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// intClaim reads an integer claim that may be encoded as a number or a numeric string.
func intClaim(claims jwt.MapClaims, key string) (int64, error) {
	switch v := claims[key].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidToken, key)
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidToken, key, err)
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrInvalidToken, key, err)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%w: %s claim missing", ErrInvalidToken, key)
	default:
		return 0, fmt.Errorf("%w: %s has type %T", ErrInvalidToken, key, v)
	}
}

func stringClaim(claims jwt.MapClaims, key string) (string, error) {
	switch v := claims[key].(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("%w: %s claim empty", ErrInvalidToken, key)
		}
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case nil:
		return "", fmt.Errorf("%w: %s claim missing", ErrInvalidToken, key)
	default:
		return "", fmt.Errorf("%w: %s has type %T", ErrInvalidToken, key, v)
	}
}
