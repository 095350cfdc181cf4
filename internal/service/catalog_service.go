package service

import (
	"okbike/internal/db"
	"okbike/internal/entities"
	"okbike/internal/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func page(content any, total int64, pageNum, size int) *entities.CatalogPage {
	return &entities.CatalogPage{Content: content, TotalElements: total, Page: pageNum, Size: size}
}

func (s *CatalogService) ListBrands(pageNum, size int) (*entities.CatalogPage, error) {
	brands, total, err := s.Repo.ListBrands(pageNum, size)
	if err != nil {
		return nil, err
	}
	return page(brands, total, pageNum, size), nil
}

func (s *CatalogService) CreateBrand(name string) (int, error) {
	return s.Repo.CreateBrand(name)
}

func (s *CatalogService) UpdateBrand(id int, name string) error {
	return s.Repo.UpdateBrand(id, name)
}

func (s *CatalogService) ToggleBrand(id int) error {
	return s.Repo.ToggleBrand(id)
}

func (s *CatalogService) ListCategories(pageNum, size int) (*entities.CatalogPage, error) {
	categories, total, err := s.Repo.ListCategories(pageNum, size)
	if err != nil {
		return nil, err
	}
	return page(categories, total, pageNum, size), nil
}

func (s *CatalogService) CreateCategory(name string) (int, error) {
	return s.Repo.CreateCategory(name)
}

func (s *CatalogService) UpdateCategory(id int, name string) error {
	return s.Repo.UpdateCategory(id, name)
}

func (s *CatalogService) ToggleCategory(id int) error {
	return s.Repo.ToggleCategory(id)
}

func (s *CatalogService) ListModels(pageNum, size int) (*entities.CatalogPage, error) {
	models, total, err := s.Repo.ListModels(pageNum, size)
	if err != nil {
		return nil, err
	}
	return page(models, total, pageNum, size), nil
}

func (s *CatalogService) ListModelsByBrand(brandID int) ([]db.VehicleModel, error) {
	return s.Repo.ListModelsByBrand(brandID)
}

func (s *CatalogService) CreateModel(brandID int, name string) (int, error) {
	return s.Repo.CreateModel(brandID, name)
}

func (s *CatalogService) ListVehicles(pageNum, size int) (*entities.CatalogPage, error) {
	vehicles, total, err := s.Repo.ListVehicles(pageNum, size)
	if err != nil {
		return nil, err
	}
	return page(vehicles, total, pageNum, size), nil
}

func (s *CatalogService) UpdateVehicleStatus(id int, status string) error {
	return s.Repo.UpdateVehicleStatus(id, status)
}

func (s *CatalogService) ListPackages(pageNum, size int) (*entities.CatalogPage, error) {
	packages, total, err := s.Repo.ListPackages(pageNum, size)
	if err != nil {
		return nil, err
	}
	return page(packages, total, pageNum, size), nil
}

func (s *CatalogService) CreatePackage(p *db.Package) (int, error) {
	return s.Repo.CreatePackage(p)
}

func (s *CatalogService) UpdatePackage(id int, p *db.Package) error {
	return s.Repo.UpdatePackage(id, p)
}

func (s *CatalogService) TogglePackage(id int) error {
	return s.Repo.TogglePackage(id)
}

func (s *CatalogService) ListStores() ([]db.Store, error) {
	return s.Repo.ListStores()
}

func (s *CatalogService) ListCoupons() ([]db.Coupon, error) {
	return s.Repo.ListCoupons()
}
