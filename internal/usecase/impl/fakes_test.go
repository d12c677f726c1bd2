package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"
)

const (
	testOwnerUID         = "uid-1234"
	testDeletePass       = "admin123"
	testStatusChangePass = "mudar123"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// assertAppCode asserts that err carries the given business error code.
func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, code, appErr.ErrorCode())
	}
}

// fakeStoreRepo is an in-memory StoreRepository. Updates do not apply the
// field patch to the stored record; tests assert on lastFields instead.
type fakeStoreRepo struct {
	records    map[string]*entity.Store
	seq        int
	lastFields map[string]any
	err        error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{records: make(map[string]*entity.Store)}
}

func (r *fakeStoreRepo) add(store *entity.Store) *entity.Store {
	r.seq++
	store.ID = fmt.Sprintf("store-%d", r.seq)
	r.records[store.ID] = store

	return store
}

func (r *fakeStoreRepo) ListStores(_ context.Context, _ string) ([]*entity.Store, error) {
	if r.err != nil {
		return nil, r.err
	}

	stores := make([]*entity.Store, 0, len(r.records))
	for _, store := range r.records {
		stores = append(stores, store)
	}

	return stores, nil
}

func (r *fakeStoreRepo) FindStoreByID(_ context.Context, _, id string) (*entity.Store, error) {
	if r.err != nil {
		return nil, r.err
	}

	store, ok := r.records[id]
	if !ok {
		return nil, repository.ErrStoreNotFound
	}

	return store, nil
}

func (r *fakeStoreRepo) CreateStore(_ context.Context, _ string, store *entity.Store) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	r.add(store)

	return store.ID, nil
}

func (r *fakeStoreRepo) UpdateStore(_ context.Context, _, id string, fields map[string]any) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrStoreNotFound
	}
	r.lastFields = fields

	return nil
}

func (r *fakeStoreRepo) DeleteStore(_ context.Context, _, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrStoreNotFound
	}
	delete(r.records, id)

	return nil
}

type fakeProductRepo struct {
	records    map[string]*entity.Product
	seq        int
	lastFields map[string]any
	err        error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{records: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) add(product *entity.Product) *entity.Product {
	r.seq++
	product.ID = fmt.Sprintf("product-%d", r.seq)
	r.records[product.ID] = product

	return product
}

func (r *fakeProductRepo) ListProducts(_ context.Context, _ string) ([]*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}

	products := make([]*entity.Product, 0, len(r.records))
	for _, product := range r.records {
		products = append(products, product)
	}

	return products, nil
}

func (r *fakeProductRepo) FindProductByID(_ context.Context, _, id string) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}

	product, ok := r.records[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r *fakeProductRepo) CreateProduct(_ context.Context, _ string, product *entity.Product) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	r.add(product)

	return product.ID, nil
}

func (r *fakeProductRepo) UpdateProduct(_ context.Context, _, id string, fields map[string]any) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrProductNotFound
	}
	r.lastFields = fields

	return nil
}

func (r *fakeProductRepo) DeleteProduct(_ context.Context, _, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.records, id)

	return nil
}

type fakeSKURepo struct {
	records    map[string]*entity.SKU
	seq        int
	lastFields map[string]any
	err        error
}

func newFakeSKURepo() *fakeSKURepo {
	return &fakeSKURepo{records: make(map[string]*entity.SKU)}
}

func (r *fakeSKURepo) add(sku *entity.SKU) *entity.SKU {
	r.seq++
	sku.ID = fmt.Sprintf("sku-%d", r.seq)
	r.records[sku.ID] = sku

	return sku
}

func (r *fakeSKURepo) ListSKUs(_ context.Context, _ string) ([]*entity.SKU, error) {
	if r.err != nil {
		return nil, r.err
	}

	skus := make([]*entity.SKU, 0, len(r.records))
	for _, sku := range r.records {
		skus = append(skus, sku)
	}

	return skus, nil
}

func (r *fakeSKURepo) FindSKUByID(_ context.Context, _, id string) (*entity.SKU, error) {
	if r.err != nil {
		return nil, r.err
	}

	sku, ok := r.records[id]
	if !ok {
		return nil, repository.ErrSKUNotFound
	}

	return sku, nil
}

func (r *fakeSKURepo) CreateSKU(_ context.Context, _ string, sku *entity.SKU) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	r.add(sku)

	return sku.ID, nil
}

func (r *fakeSKURepo) UpdateSKU(_ context.Context, _, id string, fields map[string]any) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrSKUNotFound
	}
	r.lastFields = fields

	return nil
}

func (r *fakeSKURepo) DeleteSKU(_ context.Context, _, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrSKUNotFound
	}
	delete(r.records, id)

	return nil
}

type fakeSaleRepo struct {
	records    map[string]*entity.Sale
	order      []string
	seq        int
	lastFields map[string]any
	err        error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{records: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) add(sale *entity.Sale) *entity.Sale {
	r.seq++
	sale.ID = fmt.Sprintf("sale-%d", r.seq)
	r.records[sale.ID] = sale
	r.order = append([]string{sale.ID}, r.order...)

	return sale
}

// ListSales returns sales newest first, matching the record store ordering.
func (r *fakeSaleRepo) ListSales(_ context.Context, _ string) ([]*entity.Sale, error) {
	if r.err != nil {
		return nil, r.err
	}

	sales := make([]*entity.Sale, 0, len(r.order))
	for _, id := range r.order {
		sales = append(sales, r.records[id])
	}

	return sales, nil
}

func (r *fakeSaleRepo) FindSaleByID(_ context.Context, _, id string) (*entity.Sale, error) {
	if r.err != nil {
		return nil, r.err
	}

	sale, ok := r.records[id]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}

	return sale, nil
}

func (r *fakeSaleRepo) CreateSale(_ context.Context, _ string, sale *entity.Sale) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	r.add(sale)

	return sale.ID, nil
}

func (r *fakeSaleRepo) UpdateSale(_ context.Context, _, id string, fields map[string]any) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrSaleNotFound
	}
	r.lastFields = fields

	return nil
}

func (r *fakeSaleRepo) DeleteSale(_ context.Context, _, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return repository.ErrSaleNotFound
	}
	delete(r.records, id)

	return nil
}

type fakeMovementRepo struct {
	entries map[string][]*entity.StockMovement
	seq     int
	err     error
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{entries: make(map[string][]*entity.StockMovement)}
}

func (r *fakeMovementRepo) AppendMovement(_ context.Context, _, skuID string, movement *entity.StockMovement) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	r.seq++
	movement.ID = fmt.Sprintf("mov-%d", r.seq)
	r.entries[skuID] = append([]*entity.StockMovement{movement}, r.entries[skuID]...)

	return movement.ID, nil
}

func (r *fakeMovementRepo) ListMovements(_ context.Context, _, skuID string) ([]*entity.StockMovement, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.entries[skuID], nil
}

type fakeAnalysisRepo struct {
	entries map[string][]*entity.SalesAnalysis
	seq     int
	err     error
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{entries: make(map[string][]*entity.SalesAnalysis)}
}

func (r *fakeAnalysisRepo) AppendAnalysis(_ context.Context, _, skuID string, analysis *entity.SalesAnalysis) (string, error) {
	if r.err != nil {
		return "", r.err
	}

	r.seq++
	analysis.ID = fmt.Sprintf("ana-%d", r.seq)
	r.entries[skuID] = append([]*entity.SalesAnalysis{analysis}, r.entries[skuID]...)

	return analysis.ID, nil
}

func (r *fakeAnalysisRepo) ListAnalyses(_ context.Context, _, skuID string) ([]*entity.SalesAnalysis, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.entries[skuID], nil
}

// fakeSnapshotStore is an in-memory SnapshotStore keyed by owner and
// collection.
type fakeSnapshotStore struct {
	payloads map[string][]byte
	err      error
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{payloads: make(map[string][]byte)}
}

func (s *fakeSnapshotStore) SaveSnapshot(_ context.Context, ownerUID, collection string, payload []byte, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.payloads[ownerUID+"/"+collection] = payload

	return nil
}

func (s *fakeSnapshotStore) LoadSnapshot(_ context.Context, ownerUID, collection string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	payload, ok := s.payloads[ownerUID+"/"+collection]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}

	return payload, nil
}

// fakeActionGate accepts the fixed test passphrases.
type fakeActionGate struct{}

func (fakeActionGate) AuthorizeDelete(passphrase string) error {
	if passphrase != testDeletePass {
		return domainerrors.ErrPassphraseRejected
	}

	return nil
}

func (fakeActionGate) AuthorizeStatusChange(passphrase string) error {
	if passphrase != testStatusChangePass {
		return domainerrors.ErrPassphraseRejected
	}

	return nil
}

// capturingPublisher records every published event.
type capturingPublisher struct {
	events []*service.RecordEvent
	err    error
}

func (p *capturingPublisher) PublishRecordEvent(_ context.Context, event *service.RecordEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error {
	return nil
}

func (p *capturingPublisher) last() *service.RecordEvent {
	if len(p.events) == 0 {
		return nil
	}

	return p.events[len(p.events)-1]
}

type fakeQRCodeService struct {
	err error
}

func (s *fakeQRCodeService) GenerateTrackingQR(saleID string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}

	return []byte("png:" + saleID), nil
}

func (s *fakeQRCodeService) ParseTrackingQR(qrData string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	return qrData, nil
}
