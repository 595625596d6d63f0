// Package service реализует бизнес-логику сервиса blueprint.
package service

import (
	"time"

	"github.com/mmeshcher/blueprint-system/internal/model"
)

// StatusKind — внутренний вид исхода операции. Намеренно не совпадает
// с HTTP-кодами: преобразование в транспортный статус выполняет
// граничный слой (internal/handler).
type StatusKind int

// Возможные виды исхода операции.
const (
	StatusOK StatusKind = iota
	StatusBadRequest
	StatusNotFound
	StatusConflict
	StatusInternal
)

// Result — исход операции сервиса. Success и Status всегда согласованы:
// Success истинен только при StatusOK.
type Result struct {
	Success bool
	Status  StatusKind
	Message string
	Data    any
	Token   string
}

func okResult(message string, data any) Result {
	return Result{
		Success: true,
		Status:  StatusOK,
		Message: message,
		Data:    data,
	}
}

func failResult(status StatusKind, message string) Result {
	return Result{
		Status:  status,
		Message: message,
	}
}

// UserView — представление пользователя для внешнего ответа.
// Хеш пароля сюда не попадает никогда.
type UserView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	IsLogin   bool   `json:"isLogin"`
	CreatedAt string `json:"createdAt"`
}

func newUserView(u *model.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		IsLogin:   u.IsLogin,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ProductView — представление товара для внешнего ответа, цена — в рублях.
type ProductView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"createdAt"`
}

func newProductView(p *model.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       float64(p.PriceCents) / 100,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
