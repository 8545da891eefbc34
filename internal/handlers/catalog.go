package handlers

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"

	"karthika_back_end/internal/catalog"
	"karthika_back_end/internal/models"
	"karthika_back_end/internal/repository"
	"karthika_back_end/internal/services"
)

const listCacheTTL = 10 * time.Minute

// CatalogHandler serves every product kind from one set of methods; the
// per-kind differences live entirely in the catalog.Definition passed by the
// route layer.
type CatalogHandler struct {
	products *repository.Products
	storage  *services.Storage
	search   *services.Search
	cache    *redis.Client
}

func NewCatalogHandler(products *repository.Products, storage *services.Storage, search *services.Search, cache *redis.Client) *CatalogHandler {
	return &CatalogHandler{products: products, storage: storage, search: search, cache: cache}
}

// productPayload mirrors the product JSON with pointers where absence matters
// (partial updates, defaults on create).
type productPayload struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Brand              string            `json:"brand"`
	Category           string            `json:"category"`
	Model              string            `json:"model"`
	Price              *float64          `json:"price"`
	MRP                *float64          `json:"mrp"`
	Images             []string          `json:"images"`
	Features           []string          `json:"features"`
	Specifications     map[string]string `json:"specifications"`
	Badge              *string           `json:"badge"`
	Warranty           string            `json:"warranty"`
	Channels           *int              `json:"channels"`
	Cameras            *int              `json:"cameras"`
	Recorder           string            `json:"recorder"`
	StorageCapacity    string            `json:"storageCapacity"`
	TargetAudience     string            `json:"targetAudience"`
	RecommendedCameras string            `json:"recommendedCameras"`
	PDFURL             string            `json:"pdfUrl"`
	PDFFileName        string            `json:"pdfFileName"`
	Rating             *float64          `json:"rating"`
	Reviews            *int              `json:"reviews"`
	InStock            *bool             `json:"inStock"`
}

// apply copies the provided fields onto p, leaving absent fields untouched.
func (pl *productPayload) apply(p *models.Product) {
	if pl.Name != "" {
		p.Name = pl.Name
	}
	if pl.Description != "" {
		p.Description = pl.Description
	}
	if pl.Brand != "" {
		p.Brand = pl.Brand
	}
	if pl.Category != "" {
		p.Category = pl.Category
	}
	if pl.Model != "" {
		p.Model = pl.Model
	}
	if pl.Price != nil {
		p.Price = *pl.Price
	}
	if pl.MRP != nil {
		p.MRP = *pl.MRP
	}
	if pl.Images != nil {
		p.Images = pl.Images
	}
	if pl.Features != nil {
		p.Features = pl.Features
	}
	if pl.Specifications != nil {
		p.Specifications = pl.Specifications
	}
	if pl.Badge != nil {
		p.Badge = *pl.Badge
	}
	if pl.Warranty != "" {
		p.Warranty = pl.Warranty
	}
	if pl.Channels != nil {
		p.Channels = *pl.Channels
	}
	if pl.Cameras != nil {
		p.Cameras = *pl.Cameras
	}
	if pl.Recorder != "" {
		p.Recorder = pl.Recorder
	}
	if pl.StorageCapacity != "" {
		p.StorageCapacity = pl.StorageCapacity
	}
	if pl.TargetAudience != "" {
		p.TargetAudience = pl.TargetAudience
	}
	if pl.RecommendedCameras != "" {
		p.RecommendedCameras = pl.RecommendedCameras
	}
	if pl.PDFURL != "" {
		p.PDFURL = pl.PDFURL
	}
	if pl.PDFFileName != "" {
		p.PDFFileName = pl.PDFFileName
	}
	if pl.Rating != nil {
		p.Rating = *pl.Rating
	}
	if pl.Reviews != nil {
		p.Reviews = *pl.Reviews
	}
	if pl.InStock != nil {
		p.InStock = *pl.InStock
	}
}

// bindPayload reads the payload from JSON or, on multipart requests, from the
// form values (features/specifications arrive as JSON strings there, the way
// admin dashboards submit them alongside files).
func bindPayload(c *gin.Context) (*productPayload, []*multipart.FileHeader, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var pl productPayload
		if err := c.ShouldBindJSON(&pl); err != nil {
			return nil, nil, err
		}
		return &pl, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	value := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	pl := &productPayload{
		Name:               value("name"),
		Description:        value("description"),
		Brand:              value("brand"),
		Category:           value("category"),
		Model:              value("model"),
		Warranty:           value("warranty"),
		Recorder:           value("recorder"),
		StorageCapacity:    value("storageCapacity"),
		TargetAudience:     value("targetAudience"),
		RecommendedCameras: value("recommendedCameras"),
		PDFURL:             value("pdfUrl"),
		PDFFileName:        value("pdfFileName"),
	}
	if v := value("price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			pl.Price = &n
		}
	}
	if v := value("mrp"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			pl.MRP = &n
		}
	}
	if v := value("badge"); v != "" {
		pl.Badge = &v
	}
	if v := value("channels"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pl.Channels = &n
		}
	}
	if v := value("cameras"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pl.Cameras = &n
		}
	}
	if v := value("rating"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			pl.Rating = &n
		}
	}
	if v := value("reviews"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pl.Reviews = &n
		}
	}
	if v := value("inStock"); v != "" {
		b := v == "true"
		pl.InStock = &b
	}
	if v := value("features"); v != "" {
		_ = json.Unmarshal([]byte(v), &pl.Features)
	}
	if v := value("specifications"); v != "" {
		_ = json.Unmarshal([]byte(v), &pl.Specifications)
	}
	if v := value("images"); v != "" {
		_ = json.Unmarshal([]byte(v), &pl.Images)
	}

	return pl, form.File["images"], nil
}

// fetchRows loads one kind's rows through the Redis list cache.
func (h *CatalogHandler) fetchRows(c *gin.Context, def *catalog.Definition) ([]models.Product, error) {
	ctx := c.Request.Context()
	cacheKey := "catalog:" + def.Kind

	if data, err := h.cache.Get(ctx, cacheKey).Result(); err == nil && data != "" {
		var cached []models.Product
		if json.Unmarshal([]byte(data), &cached) == nil {
			for i := range cached {
				cached[i].Kind = def.Kind
			}
			return cached, nil
		}
	}

	rows, err := h.products.ListByKind(def.Kind)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(rows); err == nil {
		h.cache.Set(ctx, cacheKey, data, listCacheTTL)
	}
	return rows, nil
}

func (h *CatalogHandler) invalidate(c *gin.Context, kind string) {
	h.cache.Del(c.Request.Context(), "catalog:"+kind)
}

// List handles GET /api/<resource> with the query filters.
func (h *CatalogHandler) List(def *catalog.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.fetchRows(c, def)
		if err != nil {
			respondServerError(c, "Error fetching "+strings.ToLower(def.Label)+" list", err)
			return
		}

		filter := catalog.ParseFilter(def, c.Query)

		// Elasticsearch answers the text search when it's up; otherwise the
		// filter falls back to its substring scan.
		if filter.Search != "" && h.search.Available() {
			if ids, err := h.search.SearchProducts(def.Kind, filter.Search); err == nil {
				idSet := make(map[string]bool, len(ids))
				for _, id := range ids {
					idSet[id] = true
				}
				// fresh slice: rows may come from the list cache
				narrowed := make([]models.Product, 0, len(ids))
				for _, p := range rows {
					if idSet[p.ID.String()] {
						narrowed = append(narrowed, p)
					}
				}
				rows = narrowed
				filter.Search = ""
			}
		}

		result := filter.Apply(def, rows)
		for i := range result {
			result[i].WithDiscount()
		}
		respondList(c, len(result), result)
	}
}

// Get handles GET /api/<resource>/:id. A malformed id reads as "no such
// record", not a validation error.
func (h *CatalogHandler) Get(def *catalog.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := gocql.ParseUUID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}

		p, err := h.products.Get(def.Kind, id)
		if err == gocql.ErrNotFound {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}
		if err != nil {
			respondServerError(c, "Error fetching "+strings.ToLower(def.Label), err)
			return
		}
		respondData(c, http.StatusOK, p.WithDiscount())
	}
}

// storeUploads validates every part before writing anything, then streams
// them into the kind's prefix. Returns the stored /uploads paths.
func (h *CatalogHandler) storeUploads(c *gin.Context, def *catalog.Definition, files []*multipart.FileHeader) ([]string, bool) {
	if len(files) > maxMultipleUploads {
		respondError(c, http.StatusBadRequest, "Maximum 5 images per upload")
		return nil, false
	}
	for _, fh := range files {
		if err := services.ValidateImage(fh); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
	}

	var stored []string
	for _, fh := range files {
		path, err := h.storage.Put(c.Request.Context(), def.Kind, fh, services.ObjectName(def.FilePrefix, fh.Filename))
		if err != nil {
			// best-effort cleanup of the parts already written
			h.storage.RemoveAll(c.Request.Context(), stored)
			respondServerError(c, "Error uploading images", err)
			return nil, false
		}
		stored = append(stored, path)
	}
	return stored, true
}

// Create handles POST /api/<resource> (admin, multipart or JSON).
func (h *CatalogHandler) Create(def *catalog.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		pl, files, err := bindPayload(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		p := models.Product{
			Kind:    def.Kind,
			InStock: true,
			Rating:  def.DefaultRating,
		}
		pl.apply(&p)

		uploaded, ok := h.storeUploads(c, def, files)
		if !ok {
			return
		}
		if len(uploaded) > 0 {
			p.Images = uploaded
		}

		if errs := catalog.Validate(def, &p, false); len(errs) > 0 {
			h.storage.RemoveAll(c.Request.Context(), uploaded)
			respondValidation(c, catalog.Messages(errs))
			return
		}

		p.ID = gocql.TimeUUID()
		now := time.Now()
		p.CreatedAt = now
		p.UpdatedAt = now

		if err := h.products.Save(&p); err != nil {
			h.storage.RemoveAll(c.Request.Context(), uploaded)
			respondServerError(c, "Error creating "+strings.ToLower(def.Label), err)
			return
		}

		h.invalidate(c, def.Kind)
		go h.search.IndexProduct(p)

		respondData(c, http.StatusCreated, p.WithDiscount())
	}
}

// Update handles PUT /api/<resource>/:id. Newly uploaded files are appended
// to the existing image list unless the payload supplies a replacement list.
func (h *CatalogHandler) Update(def *catalog.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := gocql.ParseUUID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}

		existing, err := h.products.Get(def.Kind, id)
		if err == gocql.ErrNotFound {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}
		if err != nil {
			respondServerError(c, "Error fetching "+strings.ToLower(def.Label), err)
			return
		}

		pl, files, err := bindPayload(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		p := *existing
		pl.apply(&p)

		uploaded, ok := h.storeUploads(c, def, files)
		if !ok {
			return
		}
		if len(uploaded) > 0 {
			p.Images = append(p.Images, uploaded...)
		}

		if errs := catalog.Validate(def, &p, true); len(errs) > 0 {
			h.storage.RemoveAll(c.Request.Context(), uploaded)
			respondValidation(c, catalog.Messages(errs))
			return
		}

		p.UpdatedAt = time.Now()

		if err := h.products.Save(&p); err != nil {
			h.storage.RemoveAll(c.Request.Context(), uploaded)
			respondServerError(c, "Error updating "+strings.ToLower(def.Label), err)
			return
		}

		h.invalidate(c, def.Kind)
		go h.search.IndexProduct(p)

		respondData(c, http.StatusOK, p.WithDiscount())
	}
}

// Delete handles DELETE /api/<resource>/:id. Every referenced image is
// attempted for deletion; the record goes away regardless of the outcome.
func (h *CatalogHandler) Delete(def *catalog.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := gocql.ParseUUID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}

		p, err := h.products.Get(def.Kind, id)
		if err == gocql.ErrNotFound {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}
		if err != nil {
			respondServerError(c, "Error fetching "+strings.ToLower(def.Label), err)
			return
		}

		h.storage.RemoveAll(c.Request.Context(), p.Images)

		if err := h.products.Delete(def.Kind, id); err != nil {
			respondServerError(c, "Error deleting "+strings.ToLower(def.Label), err)
			return
		}

		h.invalidate(c, def.Kind)
		go h.search.RemoveProduct(def.Kind, id.String())

		respondMessage(c, http.StatusOK, def.Label+" deleted successfully")
	}
}

// DeleteImage handles DELETE /api/<resource>/:id/images with {"imageUrl": ...}:
// drops one image from the record and best-effort removes the object.
func (h *CatalogHandler) DeleteImage(def *catalog.Definition) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := gocql.ParseUUID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}

		var input struct {
			ImageURL string `json:"imageUrl" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Please provide imageUrl")
			return
		}

		p, err := h.products.Get(def.Kind, id)
		if err == gocql.ErrNotFound {
			respondError(c, http.StatusNotFound, def.Label+" not found")
			return
		}
		if err != nil {
			respondServerError(c, "Error fetching "+strings.ToLower(def.Label), err)
			return
		}

		kept := p.Images[:0]
		for _, img := range p.Images {
			if img != input.ImageURL {
				kept = append(kept, img)
			}
		}
		p.Images = kept
		p.UpdatedAt = time.Now()

		if err := h.products.Save(p); err != nil {
			respondServerError(c, "Error updating "+strings.ToLower(def.Label), err)
			return
		}

		if err := h.storage.Remove(c.Request.Context(), input.ImageURL); err != nil {
			log.Println("⚠️ Image object removal failed:", err)
		}

		h.invalidate(c, def.Kind)
		go h.search.IndexProduct(*p)

		respondData(c, http.StatusOK, p.WithDiscount())
	}
}
