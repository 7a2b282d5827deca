package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/model"
)

type fakeCategories struct {
	byName map[string]*model.Category
	err    error
}

func (f *fakeCategories) FindActiveByName(_ context.Context, name string) (*model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byName[name]
	if !ok || !c.IsActive {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCategories) ListActiveNames(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var names []string
	for name, c := range f.byName {
		if c.IsActive {
			names = append(names, name)
		}
	}
	return names, nil
}

func TestNormalizeName(t *testing.T) {
	inputs := []string{"Snacks", "  SNACKS ", "\tProtein Bars\n", "", "   ", "ÉCLAIRS", "already lower"}
	for _, in := range inputs {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once), "normalize must be idempotent for %q", in)
	}
	assert.Equal(t, "snacks", NormalizeName("  SNACKS "))
	assert.Equal(t, "protein bars", NormalizeName("\tProtein Bars\n"))
}

func TestChecker_Check(t *testing.T) {
	store := &fakeCategories{byName: map[string]*model.Category{
		"snacks":   {Name: "snacks", IsActive: true},
		"drinks":   {Name: "drinks", IsActive: true},
		"seasonal": {Name: "seasonal", IsActive: false},
	}}
	checker := NewChecker(store)
	ctx := context.Background()

	name, err := checker.Check(ctx, "  SNACKS ")
	require.NoError(t, err)
	assert.Equal(t, "snacks", name)

	for _, raw := range []string{"seasonal", "candy", ""} {
		_, err := checker.Check(ctx, raw)
		require.Error(t, err, raw)

		appErr := apperr.As(err)
		assert.Equal(t, apperr.KindInvalidCategory, appErr.Kind)
		assert.Equal(t, invalidCategoryMessage, appErr.Message)
		assert.Equal(t, []string{"drinks", "snacks"}, appErr.Extra["availableCategories"])
		assert.Equal(t, raw, appErr.Extra["received"])
	}
}

func TestChecker_Check_NoActiveCategories(t *testing.T) {
	checker := NewChecker(&fakeCategories{byName: map[string]*model.Category{
		"snacks": {Name: "snacks", IsActive: false},
	}})

	_, err := checker.Check(context.Background(), "snacks")
	require.Error(t, err)

	appErr := apperr.As(err)
	assert.Equal(t, apperr.KindInvalidCategory, appErr.Kind)
	assert.Equal(t, noCategoriesMessage, appErr.Message)
	assert.Equal(t, []string{}, appErr.Extra["availableCategories"])
}

func TestChecker_Check_StoreFailure(t *testing.T) {
	checker := NewChecker(&fakeCategories{err: errors.New("db down")})

	_, err := checker.Check(context.Background(), "snacks")
	require.Error(t, err)
	assert.False(t, apperr.Is(err, apperr.KindInvalidCategory))
	assert.Equal(t, apperr.KindInternal, apperr.As(err).Kind)
}
