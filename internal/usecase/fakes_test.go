package usecase_test

import (
	"context"
	"errors"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeCategoryRepo struct {
	categories map[int64]*domain.Category
	created    []*domain.Category
}

func newFakeCategoryRepo(categories ...*domain.Category) *fakeCategoryRepo {
	m := make(map[int64]*domain.Category)
	for _, c := range categories {
		m[c.ID] = c
	}
	return &fakeCategoryRepo{categories: m}
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	res := make([]domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		res = append(res, *c)
	}
	return res, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	category.ID = int64(len(f.categories) + 1)
	f.categories[category.ID] = category
	f.created = append(f.created, category)
	return category, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := f.categories[category.ID]; !ok {
		return nil, e.ErrCategoryNotFound
	}
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return e.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

type fakeProductRepo struct {
	products map[int64]*domain.Product
	infos    map[int64]usecase.ProductInfo
	created  []*domain.Product
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	m := make(map[int64]*domain.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m, infos: make(map[int64]usecase.ProductInfo)}
}

func (f *fakeProductRepo) List(ctx context.Context, categoryIDs []int64) ([]domain.Product, error) {
	res := make([]domain.Product, 0)
	for _, p := range f.products {
		if len(categoryIDs) == 0 {
			res = append(res, *p)
			continue
		}
		for _, id := range categoryIDs {
			if p.CategoryID == id {
				res = append(res, *p)
				break
			}
		}
	}
	return res, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = int64(len(f.products) + 1)
	f.products[product.ID] = product
	f.created = append(f.created, product)
	return product, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := f.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	res := make([]domain.Product, 0)
	for _, p := range f.products {
		if p.IsFeatured && len(res) < limit {
			res = append(res, *p)
		}
	}
	return res, nil
}

func (f *fakeProductRepo) SetGallery(ctx context.Context, id int64, images []string) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	p.Images = images
	return p, nil
}

func (f *fakeProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	res := make([]usecase.ProductInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := f.infos[id]; ok {
			res = append(res, info)
		}
	}
	return res, nil
}

type fakeCacheRepo struct {
	products map[int64]usecase.ProductInfo
	deleted  []int64
	setCalls [][]usecase.ProductInfo
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{products: make(map[int64]usecase.ProductInfo)}
}

func (f *fakeCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]usecase.ProductInfo, error) {
	res := make(map[int64]usecase.ProductInfo)
	for _, id := range ids {
		if info, ok := f.products[id]; ok {
			res[id] = info
		}
	}
	return res, nil
}

func (f *fakeCacheRepo) SetProducts(ctx context.Context, products []usecase.ProductInfo) error {
	f.setCalls = append(f.setCalls, products)
	for _, info := range products {
		f.products[info.ID] = info
	}
	return nil
}

func (f *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	f.deleted = append(f.deleted, ids...)
	for _, id := range ids {
		delete(f.products, id)
	}
	return nil
}

type fakeImagesInfra struct {
	uploaded   []usecase.ProductImage
	cleanedUp  []string
	uploadErr  error
	nextKeyIdx int
}

func (f *fakeImagesInfra) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	keys := make([]string, 0, len(req.Images))
	for range req.Images {
		f.nextKeyIdx++
		keys = append(keys, "products/key-"+string(rune('a'+f.nextKeyIdx)))
	}
	f.uploaded = append(f.uploaded, req.Images...)
	return usecase.NewUploadImagesRes(keys), nil
}

func (f *fakeImagesInfra) CleanupImages(keys []string) {
	f.cleanedUp = append(f.cleanedUp, keys...)
}

func (f *fakeImagesInfra) WaitForCleanup(ctx context.Context) error { return nil }

type fakeUserRepo struct {
	users  map[int64]*domain.User
	byMail map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{
		users:  make(map[int64]*domain.User),
		byMail: make(map[string]*domain.User),
	}
	for _, u := range users {
		f.users[u.ID] = u
		f.byMail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	res := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		res = append(res, *u)
	}
	return res, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byMail[email]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byMail[user.Email]; ok {
		return nil, e.ErrDuplicateEmail
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.ID] = user
	f.byMail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return e.ErrUserNotFound
	}
	delete(f.byMail, u.Email)
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeOrderRepo struct {
	orders        map[int64]*domain.Order
	nextID        int64
	deleteItemErr error
	deletedItems  []int64
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	f := &fakeOrderRepo{orders: make(map[int64]*domain.Order)}
	for _, o := range orders {
		f.orders[o.ID] = o
		if o.ID > f.nextID {
			f.nextID = o.ID
		}
	}
	return f
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		res = append(res, *o)
	}
	return res, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	f.nextID++
	order.ID = f.nextID
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	o.Status = status
	return o, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return e.ErrOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) DeleteItems(ctx context.Context, orderID int64) error {
	if f.deleteItemErr != nil {
		return f.deleteItemErr
	}
	f.deletedItems = append(f.deletedItems, orderID)
	return nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) TotalSales(ctx context.Context) (int64, error) {
	var total int64
	for _, o := range f.orders {
		total += o.TotalPrice
	}
	return total, nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	res := make([]domain.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			res = append(res, *o)
		}
	}
	return res, nil
}

type fakeOutboxRepo struct {
	events []*usecase.OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	res := make([]*usecase.OutboxEvent, 0, limit)
	for _, ev := range f.events {
		if ev.Status == usecase.Pending && len(res) < limit {
			ev.Status = usecase.Processing
			res = append(res, ev)
		}
	}
	return res, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, ev := range f.events {
		if ev.ID == id {
			ev.Status = usecase.Processed
		}
	}
	return nil
}

type fakeInfoProvider struct {
	infos map[int64]usecase.ProductInfo
}

func (f *fakeInfoProvider) GetProductsInfo(ctx context.Context, req *usecase.GetProductsReq) (*usecase.GetProductsRes, error) {
	products := make([]usecase.ProductInfo, 0, len(req.IDs))
	notFound := make([]int64, 0)
	for _, id := range req.IDs {
		if info, ok := f.infos[id]; ok {
			products = append(products, info)
		} else {
			notFound = append(notFound, id)
		}
	}
	return usecase.NewGetProductsRes(products, notFound), nil
}

// fakeTx и fakeTxDB подменяют транзакционный пул в юнит-тестах.

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return f, nil }
func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}
func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}
func (f *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not implemented")
}
func (f *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (f *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (f *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (f *fakeTx) Conn() *pgx.Conn                                               { return nil }

type fakeTxDB struct {
	tx *fakeTx
}

func newFakeTxDB() *fakeTxDB {
	return &fakeTxDB{tx: &fakeTx{}}
}

func (f *fakeTxDB) Begin(ctx context.Context) (pgx.Tx, error) { return f.tx, nil }

func (f *fakeTxDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return f.tx, nil
}
