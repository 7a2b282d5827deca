package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/model"
)

// NewProductID returns a human-facing product identifier such as
// "PROD-1767225600000-3f9a1c2be".
func NewProductID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("PROD-%d-%s", now.UnixMilli(), suffix)
}

// ParsePrice accepts a decimal string and requires a finite value above zero.
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, apperr.Validation("price", "Price must be a valid positive number")
	}
	return price, nil
}

// NewProduct holds the validated fields of a product create. Category is
// still raw and must go through Checker.
type NewProduct struct {
	Name     string
	Category string
	Price    float64
	Weight   string
	Flavor   []string
}

// ValidateCreate checks the required fields of a product create.
func ValidateCreate(in *model.ProductInput) (*NewProduct, error) {
	name := deref(in.Name)
	category := deref(in.Category)
	price := deref(in.Price)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if category == "" {
		missing = append(missing, "category")
	}
	if price == "" {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, &apperr.Error{
			Kind:    apperr.KindValidation,
			Message: "Name, category, and price are required",
			Field:   missing[0],
			Extra:   map[string]interface{}{"missing": missing},
		}
	}

	parsed, err := ParsePrice(price)
	if err != nil {
		return nil, err
	}

	return &NewProduct{
		Name:     name,
		Category: category,
		Price:    parsed,
		Weight:   deref(in.Weight),
		Flavor:   CleanFlavors(in.Flavor),
	}, nil
}

// ValidateUpdate converts a partial product write into a change set. The
// category is copied raw; callers check it only when it is present.
func ValidateUpdate(in *model.ProductInput) (*model.ProductUpdate, error) {
	upd := &model.ProductUpdate{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Validation("name", "name cannot be empty")
		}
		upd.Name = &name
	}
	if in.Price != nil {
		price, err := ParsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		upd.Price = &price
	}
	if in.Category != nil {
		category := *in.Category
		upd.Category = &category
	}
	if in.Weight != nil {
		weight := strings.TrimSpace(*in.Weight)
		upd.Weight = &weight
	}
	if in.Flavor != nil {
		upd.Flavor = CleanFlavors(in.Flavor)
	}

	return upd, nil
}

// CleanFlavors splits comma separated entries, trims them and drops blanks.
func CleanFlavors(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
