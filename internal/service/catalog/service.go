package catalog

import (
	"context"
	"errors"
	"strings"

	"kabirclub/internal/domain"
	categoryrepo "kabirclub/internal/repository/category"
	productrepo "kabirclub/internal/repository/product"

	"github.com/google/uuid"
)

// Service exposes catalog reads for the storefront and guarded product
// management for admins.
type Service struct {
	categories categoryrepo.Repository
	products   productrepo.Repository
}

func New(categories categoryrepo.Repository, products productrepo.Repository) *Service {
	return &Service{categories: categories, products: products}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}

// CreateCategoryCommand is the validated shape of an admin category create.
// Slug defaults to a slugified name when omitted.
type CreateCategoryCommand struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"imageUrl"`
}

func (c *CreateCategoryCommand) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.New("name required")
	}
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	return nil
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func (s *Service) CreateCategory(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	return s.categories.Create(ctx, domain.Category{
		Name:     cmd.Name,
		Slug:     cmd.Slug,
		ImageURL: cmd.ImageURL,
	})
}

// ListProductsByCategory resolves the category slug first so an unknown
// slug reads as a missing resource, not an empty shelf.
func (s *Service) ListProductsByCategory(ctx context.Context, slug string) ([]domain.Product, error) {
	c, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.products.ListByCategory(ctx, c.ID)
}

// GetProduct returns a product together with its category for the detail
// view.
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, *domain.Category, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	return p, c, nil
}

func (s *Service) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListFeatured(ctx)
}

func (s *Service) ListTrending(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListTrending(ctx)
}

// CreateProductCommand is the validated shape of an admin product create.
// ItemID is optional; a random one is assigned when omitted.
type CreateProductCommand struct {
	ItemID        string   `json:"itemId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	ImageURL      string   `json:"imageUrl"`
	CategoryID    int64    `json:"categoryId"`
	Sizes         []string `json:"sizes"`
	StockQuantity int      `json:"stockQuantity"`
	Featured      bool     `json:"featured"`
	Trending      bool     `json:"trending"`
}

func (c *CreateProductCommand) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.New("name required")
	}
	if c.Price < 0 {
		return errors.New("price must not be negative")
	}
	if c.CategoryID <= 0 {
		return errors.New("categoryId required")
	}
	if c.StockQuantity < 0 {
		return errors.New("stockQuantity must not be negative")
	}
	if c.ItemID == "" {
		c.ItemID = uuid.NewString()
	}
	if c.Sizes == nil {
		c.Sizes = []string{}
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, domain.Product{
		ItemID:        cmd.ItemID,
		Name:          cmd.Name,
		Description:   cmd.Description,
		Price:         cmd.Price,
		ImageURL:      cmd.ImageURL,
		CategoryID:    cmd.CategoryID,
		Sizes:         cmd.Sizes,
		StockQuantity: cmd.StockQuantity,
		Featured:      cmd.Featured,
		Trending:      cmd.Trending,
	})
}

// UpdateProductCommand replaces the full product row; partial updates are
// handled by the caller fetching the current state first.
type UpdateProductCommand struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	ImageURL      string   `json:"imageUrl"`
	CategoryID    int64    `json:"categoryId"`
	Sizes         []string `json:"sizes"`
	StockQuantity int      `json:"stockQuantity"`
	Featured      bool     `json:"featured"`
	Trending      bool     `json:"trending"`
}

func (c *UpdateProductCommand) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.New("name required")
	}
	if c.Price < 0 {
		return errors.New("price must not be negative")
	}
	if c.CategoryID <= 0 {
		return errors.New("categoryId required")
	}
	if c.StockQuantity < 0 {
		return errors.New("stockQuantity must not be negative")
	}
	if c.Sizes == nil {
		c.Sizes = []string{}
	}
	return nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, cmd UpdateProductCommand) (*domain.Product, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	current, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.products.Update(ctx, domain.Product{
		ID:            id,
		ItemID:        current.ItemID,
		Name:          cmd.Name,
		Description:   cmd.Description,
		Price:         cmd.Price,
		ImageURL:      cmd.ImageURL,
		CategoryID:    cmd.CategoryID,
		Sizes:         cmd.Sizes,
		StockQuantity: cmd.StockQuantity,
		Featured:      cmd.Featured,
		Trending:      cmd.Trending,
	})
}

// DeleteProduct removes a product from the catalog. Cart rows referencing
// it are left in place and filtered out at assembly time.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}
