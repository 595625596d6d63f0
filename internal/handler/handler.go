// Package handler содержит HTTP-обработчики API сервиса blueprint.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/blueprint-system/internal/service"
)

// AuthService определяет контракт сервиса аутентификации, используемый обработчиками.
type AuthService interface {
	Register(ctx context.Context, username, password string) service.Result
	Login(ctx context.Context, username, password string) service.Result
	Logout(ctx context.Context, token string) service.Result
}

// ProductService определяет контракт сервиса каталога, используемый обработчиками.
type ProductService interface {
	GetAll(ctx context.Context, token string) service.Result
	GetByName(ctx context.Context, token, name string) service.Result
	Add(ctx context.Context, token string, in service.ProductInput) service.Result
	Update(ctx context.Context, token, name string, in service.ProductInput) service.Result
	Delete(ctx context.Context, token, name string) service.Result
}

// Handler реализует HTTP-обработчики API сервиса blueprint.
type Handler struct {
	auth     AuthService
	products ProductService
	logger   *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(auth AuthService, products ProductService, logger *zap.Logger) *Handler {
	return &Handler{
		auth:     auth,
		products: products,
		logger:   logger,
	}
}

// envelope — единая форма тела ответа для всех эндпоинтов.
// В отличие от исходной версии API поле success отражает фактический
// исход операции (см. DESIGN.md).
type envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Token      string `json:"token,omitempty"`
}

// httpStatus преобразует внутренний вид исхода в транспортный статус.
// Нераспознанный вид всегда превращается в 500.
func httpStatus(kind service.StatusKind) int {
	switch kind {
	case service.StatusOK:
		return http.StatusOK
	case service.StatusBadRequest:
		return http.StatusBadRequest
	case service.StatusNotFound:
		return http.StatusNotFound
	case service.StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeResult(w http.ResponseWriter, res service.Result) {
	code := httpStatus(res.Status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	body := envelope{
		Success:    res.Success,
		StatusCode: code,
		Message:    res.Message,
		Data:       res.Data,
		Token:      res.Token,
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response error", zap.Error(err))
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	h.writeResult(w, service.Result{
		Status:  service.StatusBadRequest,
		Message: message,
	})
}

// bearerToken извлекает токен из заголовка Authorization.
// Отсутствующий заголовок даёт пустой токен, который кодек отклонит.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "Invalid request body.")
		return
	}

	h.writeResult(w, h.auth.Register(r.Context(), req.Username, req.Password))
}

// Login выполняет аутентификацию пользователя и возвращает токен сессии.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "Invalid request body.")
		return
	}

	h.writeResult(w, h.auth.Login(r.Context(), req.Username, req.Password))
}

// Logout снимает флаг активной сессии пользователя из токена.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, h.auth.Logout(r.Context(), bearerToken(r)))
}

// GetProducts возвращает все товары каталога.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w, h.products.GetAll(r.Context(), bearerToken(r)))
}

// GetProductByName возвращает товар по имени.
func (h *Handler) GetProductByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	h.writeResult(w, h.products.GetByName(r.Context(), bearerToken(r), name))
}

// AddProduct создаёт новый товар.
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "Invalid request body.")
		return
	}

	in := service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	h.writeResult(w, h.products.Add(r.Context(), bearerToken(r), in))
}

// UpdateProduct перезаписывает изменяемые поля товара.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, "Invalid request body.")
		return
	}

	name := chi.URLParam(r, "name")
	in := service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	h.writeResult(w, h.products.Update(r.Context(), bearerToken(r), name, in))
}

// DeleteProduct удаляет товар и возвращает снимок удалённой записи.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	h.writeResult(w, h.products.Delete(r.Context(), bearerToken(r), name))
}
