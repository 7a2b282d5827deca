package api

import (
	"net/http"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/catalog"
	"github.com/storefront/internal/model"
)

const categoryExistsMessage = "Category with this name already exists"

// ListCategories godoc
// @Summary List categories
// @Description List every category, newest first, active or not
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories"
// @Router /api/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// GetCategory godoc
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{} "Category"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /api/categories/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if category == nil {
		respondError(w, apperr.NotFound("Category not found"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"category": category,
	})
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a category. The name is stored lower-cased and must be unique
// @Tags Categories
// @Accept json
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param request body model.CreateCategoryRequest true "Category details"
// @Success 201 {object} map[string]interface{} "Category created"
// @Failure 400 {object} map[string]interface{} "Invalid request or duplicate name"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /api/categories [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	req.Normalize()
	if err := model.Validate(&req); err != nil {
		respondError(w, err)
		return
	}

	ctx := r.Context()
	name := catalog.NormalizeName(req.Name)

	taken, err := h.categories.NameTaken(ctx, name, "")
	if err != nil {
		respondError(w, err)
		return
	}
	if taken {
		respondError(w, apperr.Conflict(categoryExistsMessage))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category, err := h.categories.Create(ctx, &model.Category{
		Name:        name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    isActive,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "Category created successfully",
		"category": category,
	})
}

// UpdateCategory godoc
// @Summary Update category
// @Description Update name, description, image or active flag. Deactivated categories reject new product writes
// @Tags Categories
// @Accept json
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body model.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Category updated"
// @Failure 400 {object} map[string]interface{} "Invalid request or duplicate name"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /api/categories/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req model.UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	req.Normalize()
	if err := model.Validate(&req); err != nil {
		respondError(w, err)
		return
	}

	ctx := r.Context()
	if req.Name != nil {
		name := catalog.NormalizeName(*req.Name)
		if name == "" {
			respondError(w, apperr.Validation("name", "Category name cannot be empty"))
			return
		}
		req.Name = &name

		taken, err := h.categories.NameTaken(ctx, name, id)
		if err != nil {
			respondError(w, err)
			return
		}
		if taken {
			respondError(w, apperr.Conflict(categoryExistsMessage))
			return
		}
	}

	category, err := h.categories.Update(ctx, id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	if category == nil {
		respondError(w, apperr.NotFound("Category not found"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory godoc
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deleted"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.categories.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if !deleted {
		respondError(w, apperr.NotFound("Category not found"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Category deleted successfully",
	})
}
