package posting

import (
	"context"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/id"
	"ventapos/internal/domain"
	"ventapos/internal/domain/documents/purchase"
	"ventapos/internal/domain/documents/sale"
)

// memStore backs all test fakes. The tx manager snapshots and restores it so
// rollback semantics hold without a database.
type memStore struct {
	products      map[id.ID]*memProduct
	clients       map[id.ID]bool
	suppliers     map[id.ID]bool
	sales         map[id.ID]sale.Sale
	saleLines     map[id.ID][]sale.Line
	purchases     map[id.ID]purchase.Purchase
	purchaseLines map[id.ID][]purchase.Line

	usedNumbers map[string]bool
}

type memProduct struct {
	name  string
	stock int64
}

func newMemStore() *memStore {
	return &memStore{
		products:      make(map[id.ID]*memProduct),
		clients:       make(map[id.ID]bool),
		suppliers:     make(map[id.ID]bool),
		sales:         make(map[id.ID]sale.Sale),
		saleLines:     make(map[id.ID][]sale.Line),
		purchases:     make(map[id.ID]purchase.Purchase),
		purchaseLines: make(map[id.ID][]purchase.Line),
		usedNumbers:   make(map[string]bool),
	}
}

func (s *memStore) addProduct(name string, stock int64) id.ID {
	pid := id.New()
	s.products[pid] = &memProduct{name: name, stock: stock}
	return pid
}

func (s *memStore) addClient() id.ID {
	cid := id.New()
	s.clients[cid] = true
	return cid
}

func (s *memStore) addSupplier() id.ID {
	sid := id.New()
	s.suppliers[sid] = true
	return sid
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.products {
		p := *v
		cp.products[k] = &p
	}
	for k, v := range s.clients {
		cp.clients[k] = v
	}
	for k, v := range s.suppliers {
		cp.suppliers[k] = v
	}
	for k, v := range s.sales {
		cp.sales[k] = v
	}
	for k, v := range s.saleLines {
		cp.saleLines[k] = append([]sale.Line(nil), v...)
	}
	for k, v := range s.purchases {
		cp.purchases[k] = v
	}
	for k, v := range s.purchaseLines {
		cp.purchaseLines[k] = append([]purchase.Line(nil), v...)
	}
	for k, v := range s.usedNumbers {
		cp.usedNumbers[k] = v
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.clients = from.clients
	s.suppliers = from.suppliers
	s.sales = from.sales
	s.saleLines = from.saleLines
	s.purchases = from.purchases
	s.purchaseLines = from.purchaseLines
	s.usedNumbers = from.usedNumbers
}

// --- tx manager ---

type memTxManager struct {
	store *memStore
	depth int
}

func (m *memTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.depth > 0 {
		return fn(ctx)
	}
	m.depth++
	defer func() { m.depth-- }()

	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

// --- product store ---

type memProductStore struct {
	store *memStore
}

func (r *memProductStore) Exists(ctx context.Context, pid id.ID) (bool, error) {
	_, ok := r.store.products[pid]
	return ok, nil
}

func (r *memProductStore) AdjustStock(ctx context.Context, pid id.ID, delta int64) (int64, error) {
	p, ok := r.store.products[pid]
	if !ok {
		return 0, apperror.NewReferenceNotFound("product", pid.String())
	}
	if p.stock+delta < 0 {
		return 0, apperror.NewInsufficientStock(p.name, -delta, p.stock)
	}
	p.stock += delta
	return p.stock, nil
}

// --- client / supplier stores ---

type memClientStore struct {
	store *memStore
	calls int
}

func (r *memClientStore) Exists(ctx context.Context, cid id.ID) (bool, error) {
	r.calls++
	return r.store.clients[cid], nil
}

type memSupplierStore struct {
	store *memStore
}

func (r *memSupplierStore) Exists(ctx context.Context, sid id.ID) (bool, error) {
	return r.store.suppliers[sid], nil
}

// --- sale repository ---

type memSaleRepo struct {
	store *memStore

	failCreate    error
	failSaveLines error

	// duplicateNumbers forces the first N Create calls to fail with a
	// number conflict, exercising the regenerate path.
	duplicateNumbers int

	createCalls int
}

func (r *memSaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	r.createCalls++
	if r.failCreate != nil {
		return r.failCreate
	}
	if r.duplicateNumbers > 0 {
		r.duplicateNumbers--
		return apperror.NewDuplicate("sale", "number", s.Number)
	}
	if r.store.usedNumbers[s.Number] {
		return apperror.NewDuplicate("sale", "number", s.Number)
	}
	r.store.usedNumbers[s.Number] = true
	r.store.sales[s.ID] = *s
	return nil
}

func (r *memSaleRepo) SaveLines(ctx context.Context, docID id.ID, lines []sale.Line) error {
	if r.failSaveLines != nil {
		return r.failSaveLines
	}
	r.store.saleLines[docID] = append([]sale.Line(nil), lines...)
	return nil
}

func (r *memSaleRepo) GetByID(ctx context.Context, docID id.ID) (*sale.Sale, error) {
	s, ok := r.store.sales[docID]
	if !ok {
		return nil, apperror.NewNotFound("sale", docID.String())
	}
	return &s, nil
}

func (r *memSaleRepo) GetLines(ctx context.Context, docID id.ID) ([]sale.Line, error) {
	return append([]sale.Line(nil), r.store.saleLines[docID]...), nil
}

func (r *memSaleRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*sale.Sale], error) {
	var res domain.ListResult[*sale.Sale]
	for _, s := range r.store.sales {
		cp := s
		res.Items = append(res.Items, &cp)
	}
	res.TotalCount = int64(len(res.Items))
	return res, nil
}

func (r *memSaleRepo) DeleteWithLines(ctx context.Context, docID id.ID) error {
	if _, ok := r.store.sales[docID]; !ok {
		return apperror.NewNotFound("sale", docID.String())
	}
	delete(r.store.saleLines, docID)
	delete(r.store.sales, docID)
	return nil
}

func (r *memSaleRepo) BulkDeleteWithLines(ctx context.Context, ids []id.ID) (int64, error) {
	var deleted int64
	for _, docID := range ids {
		if _, ok := r.store.sales[docID]; !ok {
			continue
		}
		delete(r.store.saleLines, docID)
		delete(r.store.sales, docID)
		deleted++
	}
	return deleted, nil
}

// --- purchase repository ---

type memPurchaseRepo struct {
	store *memStore

	failSaveLines error
}

func (r *memPurchaseRepo) Create(ctx context.Context, p *purchase.Purchase) error {
	if r.store.usedNumbers[p.Number] {
		return apperror.NewDuplicate("purchase", "number", p.Number)
	}
	r.store.usedNumbers[p.Number] = true
	r.store.purchases[p.ID] = *p
	return nil
}

func (r *memPurchaseRepo) SaveLines(ctx context.Context, docID id.ID, lines []purchase.Line) error {
	if r.failSaveLines != nil {
		return r.failSaveLines
	}
	r.store.purchaseLines[docID] = append([]purchase.Line(nil), lines...)
	return nil
}

func (r *memPurchaseRepo) GetByID(ctx context.Context, docID id.ID) (*purchase.Purchase, error) {
	p, ok := r.store.purchases[docID]
	if !ok {
		return nil, apperror.NewNotFound("purchase", docID.String())
	}
	return &p, nil
}

func (r *memPurchaseRepo) GetLines(ctx context.Context, docID id.ID) ([]purchase.Line, error) {
	return append([]purchase.Line(nil), r.store.purchaseLines[docID]...), nil
}

func (r *memPurchaseRepo) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*purchase.Purchase], error) {
	var res domain.ListResult[*purchase.Purchase]
	for _, p := range r.store.purchases {
		cp := p
		res.Items = append(res.Items, &cp)
	}
	res.TotalCount = int64(len(res.Items))
	return res, nil
}

func (r *memPurchaseRepo) DeleteWithLines(ctx context.Context, docID id.ID) error {
	if _, ok := r.store.purchases[docID]; !ok {
		return apperror.NewNotFound("purchase", docID.String())
	}
	delete(r.store.purchaseLines, docID)
	delete(r.store.purchases, docID)
	return nil
}

func (r *memPurchaseRepo) BulkDeleteWithLines(ctx context.Context, ids []id.ID) (int64, error) {
	var deleted int64
	for _, docID := range ids {
		if _, ok := r.store.purchases[docID]; !ok {
			continue
		}
		delete(r.store.purchaseLines, docID)
		delete(r.store.purchases, docID)
		deleted++
	}
	return deleted, nil
}

// --- harness ---

type engineHarness struct {
	store        *memStore
	engine       *Engine
	saleRepo     *memSaleRepo
	purchaseRepo *memPurchaseRepo
	clientStore  *memClientStore
}

func newEngineHarness() *engineHarness {
	store := newMemStore()
	saleRepo := &memSaleRepo{store: store}
	purchaseRepo := &memPurchaseRepo{store: store}
	clientStore := &memClientStore{store: store}

	eng := NewEngine(Config{
		Sales:     saleRepo,
		Purchases: purchaseRepo,
		Products:  &memProductStore{store: store},
		Clients:   clientStore,
		Suppliers: &memSupplierStore{store: store},
		TxManager: &memTxManager{store: store},
		Numbers:   newTestNumbers(),
	})

	return &engineHarness{
		store:        store,
		engine:       eng,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		clientStore:  clientStore,
	}
}
