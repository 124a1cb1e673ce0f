package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the issuer the CMS stamps on admin tokens.
const TokenIssuer = "modeva-cms"

// AdminJWTClaims are the claims carried by CMS admin tokens.
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService verifies admin tokens issued by the CMS. Analytics never logs
// anyone in, so issuing is only used by the report CLI and tests.
type JWTService struct {
	secretKey []byte
}

var jwtService *JWTService

func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{secretKey: []byte(secretKey)}
	return nil
}

// GetJWTService returns the initialized service, falling back to JWT_SECRET.
func GetJWTService() *JWTService {
	if jwtService == nil {
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: []byte(secretKey)}
	}
	return jwtService
}

// IssueAdminJWT signs a token for adminID valid for ttl.
func (j *JWTService) IssueAdminJWT(adminID, email string, ttl time.Duration) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email cannot be empty")
	}

	now := time.Now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    TokenIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAdminJWT parses tokenString and checks signature, expiry and issuer.
func (j *JWTService) VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	claims := &AdminJWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(TokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AdminID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}
	return claims, nil
}

func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	return GetJWTService().VerifyAdminJWT(tokenString)
}
