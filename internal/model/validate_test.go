package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/internal/apperr"
)

func TestValidate_CreateAdminRequest(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateAdminRequest
		field string
	}{
		{name: "valid", req: CreateAdminRequest{Email: "a@shop.test", Password: "secret"}},
		{name: "missing email", req: CreateAdminRequest{Password: "secret"}, field: "email"},
		{name: "missing password", req: CreateAdminRequest{Email: "a@shop.test"}, field: "password"},
		{name: "malformed email", req: CreateAdminRequest{Email: "nope", Password: "x"}, field: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := apperr.As(err)
			assert.Equal(t, apperr.KindValidation, appErr.Kind)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestValidate_WhitespaceOnlyNameIsMissingAfterNormalize(t *testing.T) {
	req := CreateCategoryRequest{Name: "   "}
	req.Normalize()

	err := Validate(&req)
	require.Error(t, err)
	assert.Equal(t, "name", apperr.As(err).Field)
	assert.Equal(t, "name is required", apperr.As(err).Message)
}

func TestValidate_OrderRequest(t *testing.T) {
	req := CreateOrderRequest{Name: "Ann", Email: "ann@shop.test", PaymentMethod: "cash"}
	err := Validate(&req)
	require.Error(t, err)
	assert.Equal(t, "paymentMethod", apperr.As(err).Field)

	req.PaymentMethod = PaymentMethodBank
	req.CartItems = []CartItem{{Name: "Bar"}}
	err = Validate(&req)
	require.Error(t, err)
	assert.Equal(t, "cartItems[0].productId", apperr.As(err).Field)

	req.CartItems[0].ProductID = "PROD-1"
	assert.NoError(t, Validate(&req))
}

func TestUpdateAdminRequest_Normalize(t *testing.T) {
	email := "  a@shop.test "
	password := "   "
	req := UpdateAdminRequest{Email: &email, Password: &password}
	req.Normalize()

	assert.Equal(t, "a@shop.test", *req.Email)
	assert.Equal(t, "", *req.Password)
	assert.Nil(t, req.Name)
}

func TestCartItems_ValueScan(t *testing.T) {
	items := CartItems{{ProductID: "PROD-1", Name: "Bar", Price: 2.5, Count: 2, Flavor: []string{"mint"}}}
	v, err := items.Value()
	require.NoError(t, err)

	var out CartItems
	require.NoError(t, out.Scan(v))
	assert.Equal(t, items, out)

	require.Error(t, out.Scan("not-bytes"))
}
