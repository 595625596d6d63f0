package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/mmeshcher/blueprint-system/internal/model"
	"github.com/mmeshcher/blueprint-system/internal/repository"
	"github.com/mmeshcher/blueprint-system/internal/validation"
)

// ProductRepository описывает контракт доступа к данным каталога.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	CreateProduct(ctx context.Context, name, description string, priceCents int64) (*model.Product, error)
	UpdateProduct(ctx context.Context, name, newName, description string, priceCents int64) (*model.Product, error)
	DeleteProduct(ctx context.Context, name string) (*model.Product, error)
}

// ProductInput — входные данные создания или обновления товара.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
}

func (in ProductInput) priceCents() int64 {
	return int64(math.Round(in.Price * 100))
}

// ProductService реализует операции каталога. Каждая операция сначала
// проходит проверку сессии (authorize) и только затем обращается к каталогу.
type ProductService struct {
	products ProductRepository
	users    UserRepository
	auth     *AuthService
	logger   *zap.Logger

	// emptyCatalogNotFound сохраняет историческое поведение:
	// пустой каталог — ошибка NotFound, а не пустой успешный список.
	emptyCatalogNotFound bool
}

// NewProductService создаёт сервис каталога.
func NewProductService(products ProductRepository, users UserRepository, auth *AuthService, logger *zap.Logger, emptyCatalogNotFound bool) *ProductService {
	return &ProductService{
		products:             products,
		users:                users,
		auth:                 auth,
		logger:               logger,
		emptyCatalogNotFound: emptyCatalogNotFound,
	}
}

// authorize проверяет токен и состояние сессии пользователя.
// Отсутствующий пользователь и пользователь без активной сессии дают
// один и тот же отказ, чтобы не раскрывать существующие имена.
func (s *ProductService) authorize(ctx context.Context, tokenString string) (*model.User, *Result) {
	username := s.auth.UsernameFromToken(tokenString)
	if username == "" {
		denial := failResult(StatusBadRequest, "Invalid token.")
		return nil, &denial
	}

	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			denial := failResult(StatusNotFound, "User not found or not logged in.")
			return nil, &denial
		}
		s.logger.Error("authorize error", zap.Error(err), zap.String("username", username))
		denial := failResult(StatusInternal, msgInternal)
		return nil, &denial
	}

	if !u.IsLogin {
		denial := failResult(StatusNotFound, "User not found or not logged in.")
		return nil, &denial
	}

	return u, nil
}

// GetAll возвращает все товары каталога.
func (s *ProductService) GetAll(ctx context.Context, tokenString string) Result {
	if _, denial := s.authorize(ctx, tokenString); denial != nil {
		return *denial
	}

	products, err := s.products.GetAllProducts(ctx)
	if err != nil {
		s.logger.Error("get products error", zap.Error(err))
		return failResult(StatusInternal, msgInternal)
	}

	if len(products) == 0 && s.emptyCatalogNotFound {
		return failResult(StatusNotFound, "No products found.")
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, newProductView(&products[i]))
	}

	return okResult("products found.", views)
}

// GetByName возвращает товар по имени.
func (s *ProductService) GetByName(ctx context.Context, tokenString, name string) Result {
	if _, denial := s.authorize(ctx, tokenString); denial != nil {
		return *denial
	}

	p, err := s.products.GetProductByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return failResult(StatusNotFound, "No products found.")
		}
		s.logger.Error("get product error", zap.Error(err), zap.String("name", name))
		return failResult(StatusInternal, msgInternal)
	}

	return okResult("product found.", newProductView(p))
}

// Add создаёт новый товар.
func (s *ProductService) Add(ctx context.Context, tokenString string, in ProductInput) Result {
	if _, denial := s.authorize(ctx, tokenString); denial != nil {
		return *denial
	}

	if !validation.IsValidProductInput(in.Name, in.Description, in.priceCents()) {
		return failResult(StatusBadRequest, "Invalid product data.")
	}

	p, err := s.products.CreateProduct(ctx, in.Name, in.Description, in.priceCents())
	if err != nil {
		if errors.Is(err, repository.ErrProductExists) {
			return failResult(StatusConflict, fmt.Sprintf("Product name '%s' already exists.", in.Name))
		}
		s.logger.Error("add product error", zap.Error(err), zap.String("name", in.Name))
		return failResult(StatusInternal, msgInternal)
	}

	return okResult("Product Added successfully.", newProductView(p))
}

// Update перезаписывает изменяемые поля товара и обновляет отметку времени.
func (s *ProductService) Update(ctx context.Context, tokenString, name string, in ProductInput) Result {
	if _, denial := s.authorize(ctx, tokenString); denial != nil {
		return *denial
	}

	// Сначала существование цели, затем валидация полей: PUT по
	// отсутствующему имени отвечает NotFound независимо от тела.
	if _, err := s.products.GetProductByName(ctx, name); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return failResult(StatusNotFound, fmt.Sprintf("Product '%s' not found.", name))
		}
		s.logger.Error("update product error", zap.Error(err), zap.String("name", name))
		return failResult(StatusInternal, msgInternal)
	}

	if !validation.IsValidProductInput(in.Name, in.Description, in.priceCents()) {
		return failResult(StatusBadRequest, "Invalid product data.")
	}

	if in.Name != name {
		if _, err := s.products.GetProductByName(ctx, in.Name); err == nil {
			return failResult(StatusConflict, fmt.Sprintf("Product name '%s' already exists.", in.Name))
		} else if !errors.Is(err, repository.ErrProductNotFound) {
			s.logger.Error("update product error", zap.Error(err), zap.String("name", in.Name))
			return failResult(StatusInternal, msgInternal)
		}
	}

	p, err := s.products.UpdateProduct(ctx, name, in.Name, in.Description, in.priceCents())
	if err != nil {
		// Гонка между проверкой и записью: уникальный индекс решает.
		if errors.Is(err, repository.ErrProductExists) {
			return failResult(StatusConflict, fmt.Sprintf("Product name '%s' already exists.", in.Name))
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			return failResult(StatusNotFound, fmt.Sprintf("Product '%s' not found.", name))
		}
		s.logger.Error("update product error", zap.Error(err), zap.String("name", name))
		return failResult(StatusInternal, msgInternal)
	}

	return okResult("Product updated successfully.", newProductView(p))
}

// Delete удаляет товар и возвращает снимок удалённой записи.
func (s *ProductService) Delete(ctx context.Context, tokenString, name string) Result {
	if _, denial := s.authorize(ctx, tokenString); denial != nil {
		return *denial
	}

	p, err := s.products.DeleteProduct(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return failResult(StatusNotFound, "Product not found.")
		}
		s.logger.Error("delete product error", zap.Error(err), zap.String("name", name))
		return failResult(StatusInternal, msgInternal)
	}

	return okResult("Product deleted successfully.", newProductView(p))
}
