package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/cache/redis"
	"github.com/alimikegami/seller-dashboard/internal/infrastructure/oauth"
	"github.com/alimikegami/seller-dashboard/internal/repository"
)

type productState struct {
	products map[int64]domain.Product
	images   []domain.ProductImage
	nextID   int64
	imageID  int64
}

func (s productState) clone() productState {
	c := productState{
		products: make(map[int64]domain.Product, len(s.products)),
		images:   append([]domain.ProductImage(nil), s.images...),
		nextID:   s.nextID,
		imageID:  s.imageID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	return c
}

// fakeProductRepo keeps products in memory. HandleTrx restores the previous
// state when fn fails.
type fakeProductRepo struct {
	mu            sync.Mutex
	state         productState
	imagesErr     error
	inSnapshot    bool
	snapshotReads int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{state: productState{products: map[int64]domain.Product{}}}
}

func (r *fakeProductRepo) seed(p domain.Product, urls ...string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.nextID++
	p.ID = r.state.nextID
	r.state.products[p.ID] = p
	for _, u := range urls {
		r.state.imageID++
		r.state.images = append(r.state.images, domain.ProductImage{ID: r.state.imageID, ProductID: p.ID, ImageURL: u})
	}
	return p.ID
}

func (r *fakeProductRepo) imageURLs(productID int64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var urls []string
	for _, img := range r.state.images {
		if img.ProductID == productID {
			urls = append(urls, img.ImageURL)
		}
	}
	return urls
}

func (r *fakeProductRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.state.products)
}

func (r *fakeProductRepo) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.ProductRepository) error) error {
	r.mu.Lock()
	snapshot := r.state.clone()
	r.mu.Unlock()

	if err := fn(ctx, r); err != nil {
		r.mu.Lock()
		r.state = snapshot
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *fakeProductRepo) HandleSnapshot(ctx context.Context, fn func(ctx context.Context, repo repository.ProductRepository) error) error {
	r.mu.Lock()
	r.inSnapshot = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inSnapshot = false
		r.mu.Unlock()
	}()

	return fn(ctx, r)
}

func (r *fakeProductRepo) markRead() {
	if r.inSnapshot {
		r.snapshotReads++
	}
}

func (r *fakeProductRepo) matching(sellerID int64, filter repository.ProductFilter) []domain.Product {
	var res []domain.Product
	for _, p := range r.state.products {
		if !p.OwnedBy(sellerID) {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.Q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Q)) {
			continue
		}
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (r *fakeProductRepo) GetProducts(ctx context.Context, sellerID int64, filter repository.ProductFilter) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markRead()

	res := r.matching(sellerID, filter)
	if filter.Offset >= len(res) {
		return nil, nil
	}
	res = res[filter.Offset:]
	if filter.Limit > 0 && len(res) > filter.Limit {
		res = res[:filter.Limit]
	}
	return res, nil
}

func (r *fakeProductRepo) CountProducts(ctx context.Context, sellerID int64, filter repository.ProductFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markRead()
	return int64(len(r.matching(sellerID, filter))), nil
}

func (r *fakeProductRepo) GetImagesByProductIDs(ctx context.Context, productIDs []int64) ([]domain.ProductImage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := map[int64]bool{}
	for _, id := range productIDs {
		wanted[id] = true
	}

	var res []domain.ProductImage
	for _, img := range r.state.images {
		if wanted[img.ProductID] {
			res = append(res, img)
		}
	}
	return res, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.products[id], nil
}

func (r *fakeProductRepo) LockProductByID(ctx context.Context, id int64) (domain.Product, error) {
	return r.GetProductByID(ctx, id)
}

func (r *fakeProductRepo) InsertProduct(ctx context.Context, data domain.Product) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.state.products {
		if p.Slug == data.Slug {
			return 0, false, nil
		}
	}

	r.state.nextID++
	data.ID = r.state.nextID
	r.state.products[data.ID] = data
	return data.ID, true, nil
}

func (r *fakeProductRepo) AddProductImages(ctx context.Context, data []domain.ProductImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.imagesErr != nil {
		return r.imagesErr
	}
	for _, img := range data {
		r.state.imageID++
		img.ID = r.state.imageID
		r.state.images = append(r.state.images, img)
	}
	return nil
}

func (r *fakeProductRepo) DeleteProductImages(ctx context.Context, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.state.images[:0:0]
	for _, img := range r.state.images {
		if img.ProductID != productID {
			kept = append(kept, img)
		}
	}
	r.state.images = kept
	return nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.products[data.ID] = data
	return nil
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	r.mu.Lock()
	delete(r.state.products, id)
	r.mu.Unlock()
	return r.DeleteProductImages(ctx, id)
}

// fakeSellerRepo enforces a unique email the way the sellers table does.
type fakeSellerRepo struct {
	mu      sync.Mutex
	sellers map[string]domain.Seller
	nextID  int64
	inserts int
	// hideOnce makes the next lookup miss, simulating a concurrent insert
	// landing between lookup and insert.
	hideOnce bool
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: map[string]domain.Seller{}}
}

func (r *fakeSellerRepo) GetSellerByEmail(ctx context.Context, email string) (domain.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hideOnce {
		r.hideOnce = false
		return domain.Seller{}, nil
	}
	return r.sellers[email], nil
}

func (r *fakeSellerRepo) InsertSellerIfAbsent(ctx context.Context, data domain.Seller) (domain.Seller, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sellers[data.Email]; ok {
		return domain.Seller{}, false, nil
	}

	r.nextID++
	r.inserts++
	data.ID = r.nextID
	r.sellers[data.Email] = data
	return data, true, nil
}

func (r *fakeSellerRepo) UpdateSellerProfile(ctx context.Context, data domain.SellerProfileUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sellers[data.Email]
	if !ok {
		return 0, nil
	}
	if data.SellerName != nil {
		s.SellerName = *data.SellerName
	}
	if data.ContactPhone != nil {
		s.ContactPhone = *data.ContactPhone
	}
	if data.CompanyName != nil {
		s.CompanyName = data.CompanyName
	}
	if data.WebsiteURL != nil {
		s.WebsiteURL = data.WebsiteURL
	}
	if data.ProfileURL != nil {
		s.ProfileURL = data.ProfileURL
	}
	if data.Address != nil {
		s.Address = data.Address
	}
	if data.Country != nil {
		s.Country = data.Country
	}
	r.sellers[data.Email] = s
	return 1, nil
}

type paymentKey struct {
	userType string
	userID   int64
}

type fakePaymentRepo struct {
	mu      sync.Mutex
	details map[paymentKey]domain.PaymentDetail
	nextID  int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{details: map[paymentKey]domain.PaymentDetail{}}
}

func (r *fakePaymentRepo) GetPaymentDetail(ctx context.Context, userType string, userID int64) (domain.PaymentDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.details[paymentKey{userType, userID}], nil
}

func (r *fakePaymentRepo) UpsertPaymentDetail(ctx context.Context, data domain.PaymentDetail) (domain.PaymentDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := paymentKey{data.UserType, data.UserID}
	if existing, ok := r.details[key]; ok {
		data.ID = existing.ID
		data.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		data.ID = r.nextID
		data.CreatedAt = time.Now()
	}
	data.UpdatedAt = time.Now()
	r.details[key] = data
	return data, nil
}

type fakeCategoryRepo struct {
	categories []domain.Category
	err        error
	calls      int
}

func (r *fakeCategoryRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	r.calls++
	return r.categories, r.err
}

type fakeOrderRepo struct {
	orders []domain.Order
	items  []domain.OrderItem
	owners map[int64]int64
}

func (r *fakeOrderRepo) GetOrdersBySeller(ctx context.Context, sellerID int64, limit int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range r.orders {
		for _, item := range r.items {
			if item.OrderID == o.ID && r.owners[item.ProductID] == sellerID {
				res = append(res, o)
				break
			}
		}
		if len(res) == limit {
			break
		}
	}
	return res, nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, nil
}

func (r *fakeOrderRepo) GetOrderItemsForSeller(ctx context.Context, orderID int64, sellerID int64) ([]domain.OrderItem, error) {
	var res []domain.OrderItem
	for _, item := range r.items {
		if item.OrderID == orderID && r.owners[item.ProductID] == sellerID {
			res = append(res, item)
		}
	}
	return res, nil
}

type publishedEvent struct {
	key       string
	eventType string
	data      interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, key string, eventType string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{key: key, eventType: eventType, data: data})
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var res []string
	for _, e := range p.events {
		res = append(res, e.eventType)
	}
	return res
}

// fakeCache stores values by reference, which is enough for a single process.
type fakeCache struct {
	values map[string][]domain.Category
	states map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string][]domain.Category{}, states: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.getErr != nil {
		return c.getErr
	}
	v, ok := c.values[key]
	if !ok {
		return redis.ErrCacheMiss
	}
	out, ok := dest.(*[]domain.Category)
	if !ok {
		return errors.New("unsupported destination")
	}
	*out = append([]domain.Category(nil), v...)
	return nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	v, ok := value.([]domain.Category)
	if !ok {
		return errors.New("unsupported value")
	}
	c.sets++
	c.values[key] = v
	return nil
}

func (c *fakeCache) SetOnce(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if _, ok := c.states[key]; ok {
		return false, nil
	}
	c.states[key] = value
	return true, nil
}

func (c *fakeCache) Take(ctx context.Context, key string) (string, error) {
	v, ok := c.states[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	delete(c.states, key)
	return v, nil
}

type fakeProvider struct {
	info oauth.UserInfo
	err  error
}

func (p *fakeProvider) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (p *fakeProvider) Exchange(ctx context.Context, code string) (oauth.UserInfo, error) {
	return p.info, p.err
}

type fakeUploader struct {
	paths []string
	body  []byte
	err   error
}

func (u *fakeUploader) Upload(ctx context.Context, objectPath string, contentType string, r io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	u.paths = append(u.paths, objectPath)
	u.body = body
	return "https://storage.example.com/bucket/" + objectPath, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMailer) SendWelcome(ctx context.Context, to string, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

var errBoom = errors.New("boom")
