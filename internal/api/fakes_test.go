package api

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/storefront/internal/model"
)

type fakeAdmins struct {
	mu   sync.Mutex
	byID map[string]*model.Admin
	err  error
}

func newFakeAdmins() *fakeAdmins {
	return &fakeAdmins{byID: map[string]*model.Admin{}}
}

func (f *fakeAdmins) Create(_ context.Context, admin *model.Admin) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := *admin
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.byID[a.ID] = &a
	out := a
	return &out, nil
}

func (f *fakeAdmins) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.byID {
		if a.Email == email {
			out := *a
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeAdmins) FindByID(_ context.Context, id string) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.byID[id]; ok {
		out := *a
		return &out, nil
	}
	return nil, nil
}

func (f *fakeAdmins) List(_ context.Context) ([]model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Admin
	for _, a := range f.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAdmins) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID), nil
}

func (f *fakeAdmins) EmailTaken(_ context.Context, email, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.byID {
		if a.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdmins) Update(_ context.Context, id string, upd model.AdminUpdate) (*model.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if upd.Email != nil {
		a.Email = *upd.Email
	}
	if upd.Name != nil {
		a.Name = *upd.Name
	}
	if upd.PasswordHash != nil {
		a.Password = *upd.PasswordHash
	}
	out := *a
	return &out, nil
}

type fakeCategories struct {
	mu   sync.Mutex
	byID map[string]*model.Category
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{byID: map[string]*model.Category{}}
}

func (f *fakeCategories) Create(_ context.Context, category *model.Category) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *category
	c.ID = uuid.NewString()
	f.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (f *fakeCategories) FindByID(_ context.Context, id string) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byID[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, nil
}

func (f *fakeCategories) FindActiveByName(_ context.Context, name string) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byID {
		if c.Name == name && c.IsActive {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeCategories) ListActiveNames(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, c := range f.byID {
		if c.IsActive {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

func (f *fakeCategories) List(_ context.Context) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Category
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategories) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, c := range f.byID {
		if c.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategories) Update(_ context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Image != nil {
		c.Image = *req.Image
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	out := *c
	return &out, nil
}

func (f *fakeCategories) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeProducts struct {
	mu    sync.Mutex
	items []*model.Product
}

func (f *fakeProducts) Create(_ context.Context, product *model.Product) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := *product
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	f.items = append(f.items, &p)
	out := p
	return &out, nil
}

func (f *fakeProducts) find(id string) *model.Product {
	for _, p := range f.items {
		if p.ID == id || p.ProductID == id {
			return p
		}
	}
	return nil
}

func (f *fakeProducts) FindByID(_ context.Context, id string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p := f.find(id); p != nil {
		out := *p
		return &out, nil
	}
	return nil, nil
}

func (f *fakeProducts) List(_ context.Context, category string) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Product
	for _, p := range f.items {
		if category == "" || p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) ListNewest(ctx context.Context) ([]model.Product, error) {
	out, _ := f.List(ctx, "")
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProducts) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items), nil
}

func (f *fakeProducts) Update(_ context.Context, id string, upd *model.ProductUpdate) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.find(id)
	if p == nil {
		return nil, nil
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.Weight != nil {
		p.Weight = *upd.Weight
	}
	if upd.Flavor != nil {
		p.Flavor = pq.StringArray(upd.Flavor)
	}
	out := *p
	return &out, nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.items {
		if p.ID == id || p.ProductID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return p, nil
		}
	}
	return nil, nil
}

type fakeOrders struct {
	mu    sync.Mutex
	items []model.Order
}

func (f *fakeOrders) Create(_ context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := model.Order{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		CartItems:     model.CartItems(req.CartItems),
		TotalAmount:   req.TotalAmount,
		CreatedAt:     time.Now(),
	}
	f.items = append(f.items, order)
	return &order, nil
}

func (f *fakeOrders) List(_ context.Context) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Order(nil), f.items...), nil
}

func (f *fakeOrders) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items), nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeImages struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
}

func (f *fakeImages) Save(_ context.Context, contentType string, _ int64, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if contentType != "image/png" {
		return "", errors.New("unexpected content type " + contentType)
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	ref := "/uploads/" + uuid.NewString() + ".png"
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeImages) Delete(_ context.Context, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ref)
	return nil
}

type fakeNotifier struct {
	placed chan *model.Order
}

func (f *fakeNotifier) OrderPlaced(_ context.Context, order *model.Order) error {
	f.placed <- order
	return nil
}
