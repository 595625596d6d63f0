// Package model содержит доменные сущности сервиса blueprint.
package model

import "time"

// User представляет зарегистрированного пользователя сервиса.
// Поле IsLogin — персистентный флаг активной сессии: именно он,
// а не валидность токена, даёт право выполнять операции каталога.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	IsLogin      bool
	CreatedAt    time.Time
}

// Product описывает товар каталога. Цена хранится в копейках.
type Product struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
	CreatedAt   time.Time
}

// Границы допустимой цены товара в копейках (0.01 .. 999999999.99).
const (
	MinPriceCents int64 = 1
	MaxPriceCents int64 = 99999999999
)
