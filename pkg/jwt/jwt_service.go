package jwt

import (
	"HealthPantry-Backend/internal/utils"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenAccount(accountID string, role string) string
		ValidateTokenAccount(token string) (*jwt.Token, error)
		GetAccountIDByToken(token string) (string, string, error)
	}

	jwtAccountClaim struct {
		AccountID string `json:"account_id"`
		Role      string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "HEALTHPANTRY",
	}
}

func (j *jwtService) GenerateTokenAccount(accountID string, role string) string {
	claims := jwtAccountClaim{
		accountID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenAccount(token string) (*jwt.Token, error) {
	return jwt.Parse(token, j.parseToken)
}

func (j *jwtService) GetAccountIDByToken(token string) (string, string, error) {
	tToken, err := j.ValidateTokenAccount(token)
	if err != nil {
		return "", "", err
	}

	claims, ok := tToken.Claims.(jwt.MapClaims)
	if !ok || !tToken.Valid {
		return "", "", errors.New("invalid token")
	}

	accountID, ok := claims["account_id"].(string)
	if !ok {
		return "", "", errors.New("account_id claim missing")
	}
	role, _ := claims["role"].(string)

	return accountID, role, nil
}
