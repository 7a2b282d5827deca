package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/catalog"
	"github.com/storefront/internal/model"
)

const (
	maxFormMemory = 8 << 20
	formOverhead  = 1 << 20
)

// ListProducts godoc
// @Summary List products
// @Description List products sorted by category then newest first, optionally filtered by category
// @Tags Products
// @Produce json
// @Param category query string false "Category name"
// @Success 200 {array} model.Product "Products"
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := catalog.NormalizeName(r.URL.Query().Get("category"))

	products, err := h.products.List(r.Context(), category)
	if err != nil {
		respondError(w, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	respondJSON(w, http.StatusOK, products)
}

// GetAllProducts godoc
// @Summary List all products
// @Description List every product, newest first
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{} "Products"
// @Router /products/getAllProducts [get]
func (h *Handler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListNewest(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": products,
	})
}

// CountProducts godoc
// @Summary Count products
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{} "Product count"
// @Router /products/stats/count [get]
func (h *Handler) CountProducts(w http.ResponseWriter, r *http.Request) {
	count, err := h.products.Count(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}

// GetProduct godoc
// @Summary Get product
// @Description Look a product up by id, falling back to its product ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID or productId"
// @Success 200 {object} model.Product "Product"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if product == nil {
		respondError(w, apperr.NotFound("Product not found"))
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a product from a multipart form (with an optional image) or a JSON body. The category must name an active category
// @Tags Products
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param category formData string true "Category name"
// @Param price formData number true "Price"
// @Param weight formData string false "Weight"
// @Param flavor formData string false "Comma separated flavors"
// @Param image formData file false "Product image"
// @Success 201 {object} map[string]interface{} "Product created"
// @Failure 400 {object} map[string]interface{} "Invalid request or category"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	in, file, err := h.parseProductInput(w, r)
	if err != nil {
		respondError(w, err)
		return
	}

	fields, err := catalog.ValidateCreate(in)
	if err != nil {
		respondError(w, err)
		return
	}

	ctx := r.Context()
	category, err := h.checker.Check(ctx, fields.Category)
	if err != nil {
		respondError(w, err)
		return
	}

	image, err := h.saveImage(r, file)
	if err != nil {
		respondError(w, err)
		return
	}

	product, err := h.products.Create(ctx, &model.Product{
		ProductID: catalog.NewProductID(h.now()),
		Name:      fields.Name,
		Price:     fields.Price,
		Image:     image,
		Category:  category,
		Flavor:    fields.Flavor,
		Weight:    fields.Weight,
	})
	if err != nil {
		h.discardImage(r, image)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Product added successfully",
		"product": product,
	})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update any subset of product fields. A supplied category must name an active category
// @Tags Products
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param id path string true "Product ID or productId"
// @Param image formData file false "Replacement image"
// @Success 200 {object} map[string]interface{} "Product updated"
// @Failure 400 {object} map[string]interface{} "Invalid request or category"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	in, file, err := h.parseProductInput(w, r)
	if err != nil {
		respondError(w, err)
		return
	}

	upd, err := catalog.ValidateUpdate(in)
	if err != nil {
		respondError(w, err)
		return
	}

	ctx := r.Context()
	if upd.Category != nil {
		category, err := h.checker.Check(ctx, *upd.Category)
		if err != nil {
			respondError(w, err)
			return
		}
		upd.Category = &category
	}

	existing, err := h.products.FindByID(ctx, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if existing == nil {
		respondError(w, apperr.NotFound("Product not found"))
		return
	}

	image, err := h.saveImage(r, file)
	if err != nil {
		respondError(w, err)
		return
	}
	if image != "" {
		upd.Image = &image
	}

	product, err := h.products.Update(ctx, existing.ID, upd)
	if err != nil || product == nil {
		h.discardImage(r, image)
		if err == nil {
			err = apperr.NotFound("Product not found")
		}
		respondError(w, err)
		return
	}

	if image != "" && existing.Image != "" && existing.Image != image {
		h.discardImage(r, existing.Image)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": product,
	})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product and its stored image
// @Tags Products
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param id path string true "Product ID or productId"
// @Success 200 {object} map[string]interface{} "Product deleted"
// @Failure 404 {object} map[string]interface{} "Product not found"
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	removed, err := h.products.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if removed == nil {
		respondError(w, apperr.NotFound("Product not found"))
		return
	}

	h.discardImage(r, removed.Image)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// parseProductInput reads a product write from a multipart form, a URL
// encoded form or a JSON body. The returned file header is nil when no
// image was uploaded.
func (h *Handler) parseProductInput(w http.ResponseWriter, r *http.Request) (*model.ProductInput, *multipart.FileHeader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, h.uploadLimit+formOverhead)
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, nil, apperr.Validation("image", fmt.Sprintf("File too large. Maximum size is %dMB", h.uploadLimit/(1024*1024)))
			}
			return nil, nil, apperr.Validation("", "Invalid multipart form")
		}
		var file *multipart.FileHeader
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			file = files[0]
		}
		return formInput(r.MultipartForm.Value), file, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, nil, apperr.Validation("", "Invalid form body")
		}
		return formInput(r.PostForm), nil, nil

	default:
		in, err := jsonInput(r)
		return in, nil, err
	}
}

func formInput(values url.Values) *model.ProductInput {
	get := func(key string) *string {
		if vs, ok := values[key]; ok && len(vs) > 0 {
			v := vs[0]
			return &v
		}
		return nil
	}

	in := &model.ProductInput{
		Name:     get("name"),
		Category: get("category"),
		Price:    get("price"),
		Weight:   get("weight"),
	}
	if vs, ok := values["flavor"]; ok {
		in.Flavor = append([]string{}, vs...)
	}
	if vs, ok := values["flavor[]"]; ok {
		in.Flavor = append(in.Flavor, vs...)
	}
	return in
}

type productBody struct {
	Name     *string         `json:"name"`
	Category *string         `json:"category"`
	Price    json.RawMessage `json:"price"`
	Weight   *string         `json:"weight"`
	Flavor   json.RawMessage `json:"flavor"`
}

func jsonInput(r *http.Request) (*model.ProductInput, error) {
	var body productBody
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	in := &model.ProductInput{
		Name:     body.Name,
		Category: body.Category,
		Weight:   body.Weight,
	}

	price, err := rawScalar(body.Price)
	if err != nil {
		return nil, apperr.Validation("price", "Price must be a valid positive number")
	}
	in.Price = price

	flavor, err := rawStrings(body.Flavor)
	if err != nil {
		return nil, apperr.Validation("flavor", "flavor must be a string or a list of strings")
	}
	in.Flavor = flavor

	return in, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// rawScalar accepts either a JSON string or a bare JSON literal such as a
// number and returns its text.
func rawScalar(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	raw = bytes.TrimSpace(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	if raw[0] == '{' || raw[0] == '[' {
		return nil, errors.New("expected a scalar")
	}
	s := string(raw)
	return &s, nil
}

func rawStrings(raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return nil, nil
	}
	raw = bytes.TrimSpace(raw)
	if raw[0] == '[' {
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		if list == nil {
			list = []string{}
		}
		return list, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func (h *Handler) saveImage(r *http.Request, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	f, err := file.Open()
	if err != nil {
		return "", apperr.Validation("image", "Could not read uploaded image")
	}
	defer f.Close()

	return h.images.Save(r.Context(), file.Header.Get("Content-Type"), file.Size, f)
}

// discardImage removes a stored image. Failures are logged and otherwise
// ignored.
func (h *Handler) discardImage(r *http.Request, ref string) {
	if ref == "" {
		return
	}
	if err := h.images.Delete(r.Context(), ref); err != nil {
		log.Printf("Warning: failed to delete image %s: %v", ref, err)
	}
}
