// Package validation содержит функции валидации входных данных.
package validation

import (
	"strings"

	"github.com/mmeshcher/blueprint-system/internal/model"
)

// IsValidProductName проверяет, что имя товара задано и не состоит из пробелов.
func IsValidProductName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// IsValidPriceCents проверяет, что цена в копейках попадает в допустимый диапазон.
func IsValidPriceCents(priceCents int64) bool {
	return priceCents >= model.MinPriceCents && priceCents <= model.MaxPriceCents
}

// IsValidProductInput проверяет обязательные поля товара: имя, описание
// и цену в допустимом диапазоне.
func IsValidProductInput(name, description string, priceCents int64) bool {
	if !IsValidProductName(name) {
		return false
	}
	if strings.TrimSpace(description) == "" {
		return false
	}
	return IsValidPriceCents(priceCents)
}
