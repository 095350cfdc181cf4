package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"okbike/internal/db"
	"okbike/internal/service"
)

type CatalogHandler struct {
	Service *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// pageParams reads page/size query params with the dashboard's defaults.
func pageParams(r *http.Request) (int, int) {
	page := 0
	size := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}
	return page, size
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	brands, err := h.Service.ListBrands(page, size)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, brands)
}

func (h *CatalogHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	id, err := h.Service.CreateBrand(req.Name)
	if err != nil {
		http.Error(w, "Could not create brand", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"message": "Brand created", "id": id})
}

func (h *CatalogHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateBrand(id, req.Name); err != nil {
		http.Error(w, "Could not update brand", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Brand updated"})
}

func (h *CatalogHandler) ToggleBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.ToggleBrand(id); err != nil {
		http.Error(w, "Could not update brand", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Brand status toggled"})
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	categories, err := h.Service.ListCategories(page, size)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, categories)
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	id, err := h.Service.CreateCategory(req.Name)
	if err != nil {
		http.Error(w, "Could not create category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"message": "Category created", "id": id})
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateCategory(id, req.Name); err != nil {
		http.Error(w, "Could not update category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Category updated"})
}

func (h *CatalogHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.ToggleCategory(id); err != nil {
		http.Error(w, "Could not update category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Category status toggled"})
}

func (h *CatalogHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	models, err := h.Service.ListModels(page, size)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, models)
}

func (h *CatalogHandler) ListModelsByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := strconv.Atoi(mux.Vars(r)["brandId"])
	if err != nil {
		http.Error(w, "Invalid brand ID", http.StatusBadRequest)
		return
	}
	models, err := h.Service.ListModelsByBrand(brandID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, models)
}

func (h *CatalogHandler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var req ModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.BrandID == 0 {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	id, err := h.Service.CreateModel(req.BrandID, req.Name)
	if err != nil {
		http.Error(w, "Could not create model", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"message": "Model created", "id": id})
}

func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	vehicles, err := h.Service.ListVehicles(page, size)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, vehicles)
}

func (h *CatalogHandler) UpdateVehicleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req VehicleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateVehicleStatus(id, req.Status); err != nil {
		http.Error(w, "Could not update vehicle", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Vehicle status updated"})
}

func (h *CatalogHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	packages, err := h.Service.ListPackages(page, size)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, packages)
}

func (h *CatalogHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CategoryID == 0 {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	pkg := &db.Package{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Deposit:    req.Deposit,
		Hours:      req.Hours,
		Days:       req.Days,
		Active:     true,
	}
	id, err := h.Service.CreatePackage(pkg)
	if err != nil {
		http.Error(w, "Could not create package", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"message": "Package created", "id": id})
}

func (h *CatalogHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	pkg := &db.Package{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Deposit:    req.Deposit,
		Hours:      req.Hours,
		Days:       req.Days,
	}
	if err := h.Service.UpdatePackage(id, pkg); err != nil {
		http.Error(w, "Could not update package", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Package updated"})
}

func (h *CatalogHandler) TogglePackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.TogglePackage(id); err != nil {
		http.Error(w, "Could not update package", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"message": "Package status toggled"})
}

func (h *CatalogHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.Service.ListStores()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stores)
}

func (h *CatalogHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.Service.ListCoupons()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, coupons)
}
