package jwt

import (
	"time"

	"hotel/internal/pkg/errs"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errs.New("invalid token")

type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "hotel-api",
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) GenerateToken(userID int64, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
