// Package token реализует выпуск и проверку подписанных токенов сессии.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается при любой структурной ошибке токена:
// неверный формат, неверная подпись, истёкший срок действия.
var ErrInvalidToken = errors.New("invalid token")

// Config содержит параметры подписи токенов. Передаётся явно при
// создании кодека, чтобы в тестах можно было использовать одноразовые ключи.
type Config struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims описывает утверждения токена: стандартный набор, имя
// пользователя передаётся в Subject.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec выпускает и проверяет токены сессии с симметричной подписью HS256.
type Codec struct {
	cfg Config
}

// NewCodec создаёт кодек токенов с указанной конфигурацией.
func NewCodec(cfg Config) *Codec {
	return &Codec{cfg: cfg}
}

// Issue выпускает токен для указанного имени пользователя со сроком
// действия cfg.TTL от текущего момента.
func (c *Codec) Issue(username string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    c.cfg.Issuer,
			Audience:  jwt.ClaimStrings{c.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Decode проверяет подпись, срок действия, издателя и аудиторию токена
// и возвращает имя пользователя. На любом некорректном входе возвращает
// ErrInvalidToken, не паникует.
func (c *Codec) Decode(tokenString string) (string, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return c.cfg.Secret, nil
		},
		jwt.WithIssuer(c.cfg.Issuer),
		jwt.WithAudience(c.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	if !t.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
