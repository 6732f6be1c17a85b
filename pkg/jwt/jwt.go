package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AppMetadata metadatos que el proveedor de autenticación incluye en el token.
// company_id identifica al tenant (empresa) del usuario.
type AppMetadata struct {
	CompanyID string `json:"company_id"`
}

// Claims claims del access token emitido por el proveedor de autenticación (HS256).
type Claims struct {
	jwt.RegisteredClaims
	Role        string      `json:"role"`
	AppMetadata AppMetadata `json:"app_metadata"`
}

// Identity datos del usuario extraídos de un token válido.
type Identity struct {
	UserID    string
	CompanyID string
	Role      string
}

// Generate firma un token con el mismo formato que el proveedor. Se usa en tests y herramientas.
func Generate(secret, userID, companyID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Role:        role,
		AppMetadata: AppMetadata{CompanyID: companyID},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida firma, expiración y (si issuer no es vacío) el emisor del token.
// Un token sin sub o sin company_id se considera inválido.
func Parse(secret, issuer, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" || claims.AppMetadata.CompanyID == "" {
		return Identity{}, fmt.Errorf("jwt: token sin usuario o empresa")
	}
	return Identity{
		UserID:    claims.Subject,
		CompanyID: claims.AppMetadata.CompanyID,
		Role:      claims.Role,
	}, nil
}
