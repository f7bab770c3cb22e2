package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/repository"
	pkgdto "github.com/alimikegami/seller-dashboard/pkg/dto"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
	"github.com/alimikegami/seller-dashboard/pkg/utils"
)

const (
	DefaultProductPageSize = 5

	numberedSlugAttempts = 4
	maxSlugAttempts      = numberedSlugAttempts + 2
)

type ProductServiceImpl struct {
	repo      repository.ProductRepository
	publisher EventPublisher
	pageSize  int
}

func CreateProductService(repo repository.ProductRepository, publisher EventPublisher, pageSize int) ProductService {
	if pageSize <= 0 {
		pageSize = DefaultProductPageSize
	}

	return &ProductServiceImpl{
		repo:      repo,
		publisher: publisher,
		pageSize:  pageSize,
	}
}

// GetProducts reads the page, the total and the images from one snapshot so
// totalProducts always agrees with the page.
func (s *ProductServiceImpl) GetProducts(ctx context.Context, caller identity.Identity, filter pkgdto.Filter) (res dto.ProductListResponse, err error) {
	if filter.Status != "" && !domain.ProductStatus(filter.Status).Valid() {
		return res, errs.ErrClient
	}

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	repoFilter := repository.ProductFilter{
		Q:      filter.Q,
		Status: filter.Status,
		Offset: offset,
		Limit:  s.pageSize + 1,
	}

	var (
		products []domain.Product
		images   []domain.ProductImage
		hasMore  bool
	)
	err = s.repo.HandleSnapshot(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		var err error
		products, err = repo.GetProducts(ctx, caller.SellerID, repoFilter)
		if err != nil {
			return err
		}

		res.TotalProducts, err = repo.CountProducts(ctx, caller.SellerID, repoFilter)
		if err != nil {
			return err
		}

		hasMore = len(products) > s.pageSize
		if hasMore {
			products = products[:s.pageSize]
		}
		if len(products) == 0 {
			return nil
		}

		productIDs := make([]int64, len(products))
		for i, p := range products {
			productIDs[i] = p.ID
		}

		images, err = repo.GetImagesByProductIDs(ctx, productIDs)
		return err
	})
	if err != nil {
		return dto.ProductListResponse{}, err
	}

	res.Products = make([]dto.ProductResponse, 0, len(products))

	imagesByProduct := make(map[int64][]domain.ProductImage, len(products))
	for _, img := range images {
		imagesByProduct[img.ProductID] = append(imagesByProduct[img.ProductID], img)
	}

	for _, p := range products {
		p.Images = imagesByProduct[p.ID]
		res.Products = append(res.Products, dto.NewProductResponse(p))
	}

	if hasMore {
		next := offset + s.pageSize
		res.NewOffset = &next
	}

	return res, nil
}

// AddProduct stores the product and its images atomically. The slug is
// derived from the name and retried with a new candidate while taken.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, caller identity.Identity, req dto.ProductRequest) (id int64, err error) {
	if req.SellerID != nil && *req.SellerID != caller.SellerID {
		return 0, errs.ErrUnauthorized
	}

	product := domain.Product{SellerID: &caller.SellerID}
	if err = applyProductRequest(&product, req); err != nil {
		return 0, err
	}

	var slug string
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		inserted := false
		for attempt := 0; attempt < maxSlugAttempts && !inserted; attempt++ {
			product.Slug = utils.SlugCandidate(product.Name, attempt, numberedSlugAttempts)

			id, inserted, err = repo.InsertProduct(ctx, product)
			if err != nil {
				return err
			}
		}

		if !inserted {
			return errs.ErrSlugGenerationFailure
		}
		slug = product.Slug

		return repo.AddProductImages(ctx, imageRows(id, req.Images))
	})
	if err != nil {
		return 0, fmt.Errorf("add product: %w", err)
	}

	publish(ctx, s.publisher, strconv.FormatInt(id, 10), dto.EventProductCreated, dto.ProductEvent{
		ProductID: id,
		SellerID:  caller.SellerID,
		Slug:      slug,
	})

	return id, nil
}

// GetOwnedProduct returns nil when the product does not exist and
// ErrUnauthorized when it belongs to another seller.
func (s *ProductServiceImpl) GetOwnedProduct(ctx context.Context, caller identity.Identity, productID int64) (res *dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.ID == 0 {
		return nil, nil
	}

	if !product.OwnedBy(caller.SellerID) {
		return nil, errs.ErrUnauthorized
	}

	product.Images, err = s.repo.GetImagesByProductIDs(ctx, []int64{product.ID})
	if err != nil {
		return nil, err
	}

	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// UpdateProduct locks the row, checks ownership and writes in one
// transaction. A non-nil image list replaces the stored one.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, caller identity.Identity, productID int64, req dto.ProductRequest) (err error) {
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		product, err := lockOwnedProduct(ctx, repo, caller, productID)
		if err != nil {
			return err
		}

		if err := applyProductRequest(&product, req); err != nil {
			return err
		}

		if err := repo.UpdateProduct(ctx, product); err != nil {
			return err
		}

		if req.Images == nil {
			return nil
		}

		if err := repo.DeleteProductImages(ctx, product.ID); err != nil {
			return err
		}

		return repo.AddProductImages(ctx, imageRows(product.ID, req.Images))
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	publish(ctx, s.publisher, strconv.FormatInt(productID, 10), dto.EventProductUpdated, dto.ProductEvent{
		ProductID: productID,
		SellerID:  caller.SellerID,
	})

	return nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, caller identity.Identity, productID int64) (err error) {
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.ProductRepository) error {
		if _, err := lockOwnedProduct(ctx, repo, caller, productID); err != nil {
			return err
		}

		return repo.DeleteProduct(ctx, productID)
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	publish(ctx, s.publisher, strconv.FormatInt(productID, 10), dto.EventProductDeleted, dto.ProductEvent{
		ProductID: productID,
		SellerID:  caller.SellerID,
	})

	return nil
}

func lockOwnedProduct(ctx context.Context, repo repository.ProductRepository, caller identity.Identity, productID int64) (domain.Product, error) {
	product, err := repo.LockProductByID(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if product.ID == 0 {
		return domain.Product{}, errs.ErrNotFound
	}

	if !product.OwnedBy(caller.SellerID) {
		return domain.Product{}, errs.ErrUnauthorized
	}

	return product, nil
}

func applyProductRequest(p *domain.Product, req dto.ProductRequest) error {
	if req.Status != nil {
		status := domain.ProductStatus(*req.Status)
		if !status.Valid() {
			return errs.ErrClient
		}
		p.Status = status
	}

	if req.Price != nil {
		if req.Price.IsNegative() {
			return errs.ErrClient
		}
		p.Price = req.Price.Round(2)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.AvailableAt != nil {
		p.AvailableAt = *req.AvailableAt
	}

	return nil
}

func imageRows(productID int64, urls []string) []domain.ProductImage {
	rows := make([]domain.ProductImage, 0, len(urls))
	for _, u := range urls {
		rows = append(rows, domain.ProductImage{ProductID: productID, ImageURL: u})
	}
	return rows
}
