// Package catalog enforces the product/category rules applied on writes.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/model"
)

const (
	invalidCategoryMessage = "Invalid category. Category must exist and be active."
	noCategoriesMessage    = "Invalid category. No categories configured; create a category first."
)

// NormalizeName is the canonical matching key for category names.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CategoryLookup is the read side of the category store used by Checker.
type CategoryLookup interface {
	FindActiveByName(ctx context.Context, name string) (*model.Category, error)
	ListActiveNames(ctx context.Context) ([]string, error)
}

// Checker validates that product writes reference an existing, active
// category.
type Checker struct {
	categories CategoryLookup
}

func NewChecker(categories CategoryLookup) *Checker {
	return &Checker{categories: categories}
}

// Check normalizes raw and returns it if it names an active category.
// Otherwise the error lists every active category name.
func (c *Checker) Check(ctx context.Context, raw string) (string, error) {
	name := NormalizeName(raw)

	if name != "" {
		category, err := c.categories.FindActiveByName(ctx, name)
		if err != nil {
			return "", fmt.Errorf("failed to look up category: %w", err)
		}
		if category != nil && category.IsActive {
			return name, nil
		}
	}

	names, err := c.categories.ListActiveNames(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list active categories: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	sort.Strings(names)

	message := invalidCategoryMessage
	if len(names) == 0 {
		message = noCategoriesMessage
	}

	return "", &apperr.Error{
		Kind:    apperr.KindInvalidCategory,
		Message: message,
		Field:   "category",
		Extra: map[string]interface{}{
			"received":            raw,
			"availableCategories": names,
		},
	}
}
