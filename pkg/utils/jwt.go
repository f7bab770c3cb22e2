package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

type SellerClaims struct {
	SellerID   int64
	Email      string
	Name       string
	ExternalID string
	Role       string
}

func CreateJWTToken(seller SellerClaims, jwtSecretKey string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["sellerID"] = seller.SellerID
	claims["email"] = seller.Email
	claims["name"] = seller.Name
	claims["externalID"] = seller.ExternalID
	claims["role"] = seller.Role
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ParseJWTToken validates signature and expiry and returns the seller claims.
func ParseJWTToken(tokenString string, jwtSecretKey string) (SellerClaims, error) {
	var res SellerClaims

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		return res, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return res, fmt.Errorf("invalid token claims")
	}

	sellerID, ok := claims["sellerID"].(float64)
	if !ok {
		return res, fmt.Errorf("missing sellerID claim")
	}

	res.SellerID = int64(sellerID)
	res.Email, _ = claims["email"].(string)
	res.Name, _ = claims["name"].(string)
	res.ExternalID, _ = claims["externalID"].(string)
	res.Role, _ = claims["role"].(string)

	return res, nil
}
