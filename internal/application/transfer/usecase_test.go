package transfer_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptransfer "github.com/oams-ph/transfer-api/internal/application/transfer"
	"github.com/oams-ph/transfer-api/internal/domain"
	"github.com/oams-ph/transfer-api/internal/domain/entity"
	"github.com/oams-ph/transfer-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes. One shared store backs every repository; the fake TxRunner
// snapshots the store before the callback and restores it on error, so the
// rollback-on-failure contract is observable from the tests.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	transfers map[string]*entity.Transfer
	stocks    map[string]*entity.Stock
	assets    map[string]*entity.Asset
	counters  map[string]int
	schools   map[string]*entity.School
	divisions map[string]*entity.Division
	users     map[string]*entity.User
}

func newMemStore() *memStore {
	return &memStore{
		transfers: map[string]*entity.Transfer{},
		stocks:    map[string]*entity.Stock{},
		assets:    map[string]*entity.Asset{},
		counters:  map[string]int{},
		schools:   map[string]*entity.School{},
		divisions: map[string]*entity.Division{},
		users:     map[string]*entity.User{},
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTransfer(t *entity.Transfer) *entity.Transfer {
	c := *t
	c.Items = append([]entity.TransferItem(nil), t.Items...)
	for i := range c.Items {
		c.Items[i].Balance = clonePtr(c.Items[i].Balance)
	}
	c.SchoolID = clonePtr(t.SchoolID)
	c.ApprovedBy = clonePtr(t.ApprovedBy)
	c.ApprovedAt = clonePtr(t.ApprovedAt)
	c.IssuedBy = clonePtr(t.IssuedBy)
	c.CompletedAt = clonePtr(t.CompletedAt)
	return &c
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	for k, v := range s.transfers {
		snap.transfers[k] = cloneTransfer(v)
	}
	for k, v := range s.stocks {
		snap.stocks[k] = clonePtr(v)
	}
	for k, v := range s.assets {
		snap.assets[k] = clonePtr(v)
	}
	for k, v := range s.counters {
		snap.counters[k] = v
	}
	for k, v := range s.schools {
		c := *v
		c.DivisionID = clonePtr(v.DivisionID)
		snap.schools[k] = &c
	}
	for k, v := range s.divisions {
		snap.divisions[k] = clonePtr(v)
	}
	for k, v := range s.users {
		snap.users[k] = clonePtr(v)
	}
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.transfers = snap.transfers
	s.stocks = snap.stocks
	s.assets = snap.assets
	s.counters = snap.counters
	s.schools = snap.schools
	s.divisions = snap.divisions
	s.users = snap.users
}

type fakeTransferRepo struct{ s *memStore }

func (r *fakeTransferRepo) Create(t *entity.Transfer) error {
	if _, ok := r.s.transfers[t.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.transfers[t.ID] = cloneTransfer(t)
	return nil
}

func (r *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	t, ok := r.s.transfers[id]
	if !ok {
		return nil, nil
	}
	return cloneTransfer(t), nil
}

// Update writes header fields only; item rows are owned by ReplaceItems.
func (r *fakeTransferRepo) Update(t *entity.Transfer) error {
	stored, ok := r.s.transfers[t.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := cloneTransfer(t)
	c.Items = stored.Items
	r.s.transfers[t.ID] = c
	return nil
}

func (r *fakeTransferRepo) ReplaceItems(transferID string, items []entity.TransferItem) error {
	stored, ok := r.s.transfers[transferID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Items = append([]entity.TransferItem(nil), items...)
	return nil
}

func (r *fakeTransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	all := make([]*entity.Transfer, 0, len(r.s.transfers))
	for _, t := range r.s.transfers {
		all = append(all, cloneTransfer(t))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) GetByID(id string) (*entity.Stock, error) {
	return clonePtr(r.s.stocks[id]), nil
}

func (r *fakeStockRepo) MarkTransferred(id, itemNo, office string) error {
	stock, ok := r.s.stocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	stock.Condition = entity.StockConditionTransferred
	stock.ItemNo = itemNo
	stock.Office = office
	return nil
}

type fakeAssetRepo struct{ s *memStore }

func (r *fakeAssetRepo) GetByID(id string) (*entity.Asset, error) {
	return clonePtr(r.s.assets[id]), nil
}

func (r *fakeAssetRepo) DecrementQuantity(id string, amount int) error {
	asset, ok := r.s.assets[id]
	if !ok {
		return domain.ErrNotFound
	}
	asset.Quantity -= amount
	return nil
}

type fakeCounterRepo struct{ s *memStore }

func (r *fakeCounterRepo) Increment(transferType string) (int, error) {
	if _, ok := r.s.counters[transferType]; !ok {
		return 0, domain.ErrNotFound
	}
	r.s.counters[transferType]++
	return r.s.counters[transferType], nil
}

type fakeSchoolRepo struct{ s *memStore }

func (r *fakeSchoolRepo) Create(school *entity.School) error {
	for _, existing := range r.s.schools {
		if existing.Name == school.Name && !existing.Deleted {
			return domain.ErrDuplicate
		}
	}
	c := *school
	r.s.schools[school.ID] = &c
	return nil
}

func (r *fakeSchoolRepo) GetByID(id string) (*entity.School, error) {
	school, ok := r.s.schools[id]
	if !ok || school.Deleted {
		return nil, nil
	}
	c := *school
	return &c, nil
}

func (r *fakeSchoolRepo) GetByName(name string) (*entity.School, error) {
	for _, school := range r.s.schools {
		if school.Name == name && !school.Deleted {
			c := *school
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeSchoolRepo) Update(school *entity.School) error {
	if _, ok := r.s.schools[school.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *school
	r.s.schools[school.ID] = &c
	return nil
}

func (r *fakeSchoolRepo) List(limit, offset int) ([]*entity.School, error) { return nil, nil }

func (r *fakeSchoolRepo) Delete(id string) error {
	if school, ok := r.s.schools[id]; ok {
		school.Deleted = true
	}
	return nil
}

type fakeDivisionRepo struct{ s *memStore }

func (r *fakeDivisionRepo) Create(d *entity.Division) error {
	r.s.divisions[d.ID] = clonePtr(d)
	return nil
}

func (r *fakeDivisionRepo) GetByID(id string) (*entity.Division, error) {
	d, ok := r.s.divisions[id]
	if !ok || d.Deleted {
		return nil, nil
	}
	return clonePtr(d), nil
}

func (r *fakeDivisionRepo) Update(d *entity.Division) error { return nil }

func (r *fakeDivisionRepo) List(limit, offset int) ([]*entity.Division, error) { return nil, nil }

func (r *fakeDivisionRepo) Delete(id string) error { return nil }

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = clonePtr(u); return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return clonePtr(r.s.users[id]), nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(u *entity.User) error { return nil }

type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	transferRepo repository.TransferRepository,
	stockRepo repository.StockRepository,
	assetRepo repository.AssetRepository,
	counterRepo repository.CounterRepository,
	schoolRepo repository.SchoolRepository,
) error) error {
	snap := r.s.snapshot()
	err := fn(
		&fakeTransferRepo{r.s},
		&fakeStockRepo{r.s},
		&fakeAssetRepo{r.s},
		&fakeCounterRepo{r.s},
		&fakeSchoolRepo{r.s},
	)
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Test world
// ──────────────────────────────────────────────────────────────────────────────

const (
	testDivisionID = "div-1"
	testApproverID = "user-approver"
	testIssuerID   = "user-issuer"
)

var testOrg = apptransfer.OrgSnapshot{
	EntityName:     "Division Office of Laguna",
	FundClusterSEP: "101101",
	FundClusterPPE: "101",
}

type world struct {
	store *memStore
	uc    *apptransfer.WorkflowUseCase
}

func newWorld() *world {
	store := newMemStore()
	store.divisions[testDivisionID] = &entity.Division{ID: testDivisionID, Name: "Laguna"}
	store.users[testApproverID] = &entity.User{ID: testApproverID, Name: "Ana Reyes", Role: entity.RoleAdmin, Status: "active"}
	store.users[testIssuerID] = &entity.User{ID: testIssuerID, Name: "Ben Cruz", Role: entity.RoleCustodian, Status: "active"}
	store.counters[entity.TransferTypeInventory] = 0
	store.counters[entity.TransferTypeProperty] = 0

	uc := apptransfer.NewWorkflowUseCase(
		&fakeTxRunner{store},
		&fakeTransferRepo{store},
		&fakeDivisionRepo{store},
		&fakeUserRepo{store},
		testOrg,
	)
	return &world{store: store, uc: uc}
}

func (w *world) addAsset(id, name string, qty, initialQty int) {
	w.store.assets[id] = &entity.Asset{ID: id, Name: name, Quantity: qty, InitialQty: initialQty}
}

func (w *world) addStock(id, assetID, condition, itemNo string) {
	w.store.stocks[id] = &entity.Stock{ID: id, AssetID: assetID, Condition: condition, ItemNo: itemNo}
}

func (w *world) createTransfer(t *testing.T, transferType string, stockIDs ...string) string {
	t.Helper()
	id, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:           transferType,
		From:           "Supply Office",
		DivisionID:     testDivisionID,
		TransferReason: "deployment",
		TransferType:   "donation",
		StockIDs:       stockIDs,
	})
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AssignsNumberAndPersistsPending(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	w.addStock("stock-2", "asset-a", entity.StockConditionGood, "")

	id, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:           entity.TransferTypeInventory,
		From:           "Supply Office",
		DivisionID:     testDivisionID,
		School:         "San Isidro ES",
		TransferReason: "deployment",
		TransferType:   "donation",
		StockIDs:       []string{"stock-1", "stock-2"},
	})
	require.NoError(t, err)

	stored := w.store.transfers[id]
	require.NotNil(t, stored)

	assert.Equal(t, entity.TransferStatusPending, stored.Status)
	assert.Equal(t, testOrg.EntityName, stored.EntityName)
	assert.Equal(t, testOrg.FundClusterSEP, stored.FundCluster)
	assert.Equal(t, "San Isidro ES - Laguna", stored.To)
	assert.Equal(t, time.Now().Format("2006-01-02")+"-01", stored.TransferNo)

	// item rows are bare until completion and keep the request order
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "stock-1", stored.Items[0].StockID)
	assert.Equal(t, 0, stored.Items[0].Position)
	assert.Nil(t, stored.Items[0].Balance)
	assert.Equal(t, "stock-2", stored.Items[1].StockID)
	assert.Equal(t, 1, stored.Items[1].Position)

	// the school was auto-created under the division
	school, err := (&fakeSchoolRepo{w.store}).GetByName("San Isidro ES")
	require.NoError(t, err)
	require.NotNil(t, school)
	require.NotNil(t, school.DivisionID)
	assert.Equal(t, testDivisionID, *school.DivisionID)
	require.NotNil(t, stored.SchoolID)
	assert.Equal(t, school.ID, *stored.SchoolID)
}

// Counters are per transfer type; the second transfer of the same type on the
// same day gets the next suffix.
func TestCreate_CounterIsPerType(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")

	first := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")
	second := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")
	property := w.createTransfer(t, entity.TransferTypeProperty, "stock-1")

	day := time.Now().Format("2006-01-02")
	assert.Equal(t, day+"-01", w.store.transfers[first].TransferNo)
	assert.Equal(t, day+"-02", w.store.transfers[second].TransferNo)
	assert.Equal(t, day+"-01", w.store.transfers[property].TransferNo)
}

func TestCreate_PropertyTypeUsesPPEFundCluster(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Projector", 5, 5)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")

	id := w.createTransfer(t, entity.TransferTypeProperty, "stock-1")
	assert.Equal(t, testOrg.FundClusterPPE, w.store.transfers[id].FundCluster)
}

// Without a school the destination label is the division name alone.
func TestCreate_NoSchoolUsesDivisionLabel(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")

	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")
	stored := w.store.transfers[id]
	assert.Equal(t, "Laguna", stored.To)
	assert.Nil(t, stored.SchoolID)
}

func TestCreate_ResolvesSchoolByID(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	schoolID := "11111111-1111-1111-1111-111111111111"
	w.store.schools[schoolID] = &entity.School{ID: schoolID, Name: "Pagsanjan NHS"}

	id, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       entity.TransferTypeInventory,
		From:       "Supply Office",
		DivisionID: testDivisionID,
		School:     schoolID,
		StockIDs:   []string{"stock-1"},
	})
	require.NoError(t, err)

	stored := w.store.transfers[id]
	assert.Equal(t, "Pagsanjan NHS - Laguna", stored.To)
	require.NotNil(t, stored.SchoolID)
	assert.Equal(t, schoolID, *stored.SchoolID)
	assert.Len(t, w.store.schools, 1, "no duplicate school may be created")
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	w := newWorld()
	_, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       "donation-report",
		From:       "Supply Office",
		DivisionID: testDivisionID,
		StockIDs:   []string{"stock-1"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_RejectsEmptyItems(t *testing.T) {
	w := newWorld()
	_, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       entity.TransferTypeInventory,
		From:       "Supply Office",
		DivisionID: testDivisionID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_MissingOrgSettings(t *testing.T) {
	store := newMemStore()
	store.divisions[testDivisionID] = &entity.Division{ID: testDivisionID, Name: "Laguna"}
	uc := apptransfer.NewWorkflowUseCase(
		&fakeTxRunner{store}, &fakeTransferRepo{store}, &fakeDivisionRepo{store},
		&fakeUserRepo{store}, apptransfer.OrgSnapshot{},
	)

	_, err := uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       entity.TransferTypeInventory,
		From:       "Supply Office",
		DivisionID: testDivisionID,
		StockIDs:   []string{"stock-1"},
	})
	assert.ErrorIs(t, err, domain.ErrMissingSetting)
}

func TestCreate_UnknownDivision(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")

	_, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       entity.TransferTypeInventory,
		From:       "Supply Office",
		DivisionID: "div-missing",
		StockIDs:   []string{"stock-1"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, w.store.counters[entity.TransferTypeInventory], "counter must not advance")
}

// A good-condition unit whose asset has no balance left aborts the whole
// creation: no transfer row and no counter advance survive the rollback.
func TestCreate_InsufficientBalanceRollsBack(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addAsset("asset-b", "Printer", 0, 5)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	w.addStock("stock-2", "asset-b", entity.StockConditionGood, "")

	_, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       entity.TransferTypeInventory,
		From:       "Supply Office",
		DivisionID: testDivisionID,
		StockIDs:   []string{"stock-1", "stock-2"},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Contains(t, err.Error(), "Printer")

	assert.Empty(t, w.store.transfers)
	assert.Equal(t, 0, w.store.counters[entity.TransferTypeInventory])
}

// A reissued unit is not balance-checked: it was deducted at first issuance.
func TestCreate_ReissuedUnitSkipsBalanceCheck(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-b", "Printer", 0, 5)
	w.addStock("stock-1", "asset-b", entity.StockConditionReissued, "3")

	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")
	assert.NotEmpty(t, id)
}

func TestCreate_UnknownStock(t *testing.T) {
	w := newWorld()
	_, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       entity.TransferTypeInventory,
		From:       "Supply Office",
		DivisionID: testDivisionID,
		StockIDs:   []string{"stock-ghost"},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, w.store.counters[entity.TransferTypeInventory])
}

// Counters are provisioned out-of-band; a missing row is an error, never an
// implicit zero-seeded counter.
func TestCreate_MissingCounterRow(t *testing.T) {
	w := newWorld()
	delete(w.store.counters, entity.TransferTypeProperty)
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")

	_, err := w.uc.Create(context.Background(), apptransfer.CreateInputDTO{
		Type:       entity.TransferTypeProperty,
		From:       "Supply Office",
		DivisionID: testDivisionID,
		StockIDs:   []string{"stock-1"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, w.store.transfers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Approve / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_StampsApproverAndStatus(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")

	require.NoError(t, w.uc.Approve(context.Background(), id, testApproverID))

	stored := w.store.transfers[id]
	assert.Equal(t, entity.TransferStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, testApproverID, *stored.ApprovedBy)
	assert.NotNil(t, stored.ApprovedAt)
}

// There is no guard on the current status: a second approval re-stamps the
// approver and approval time.
func TestApprove_RepeatCallReStamps(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")

	require.NoError(t, w.uc.Approve(context.Background(), id, testApproverID))
	require.NoError(t, w.uc.Approve(context.Background(), id, testIssuerID))

	stored := w.store.transfers[id]
	assert.Equal(t, entity.TransferStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedBy)
	assert.Equal(t, testIssuerID, *stored.ApprovedBy)
}

func TestApprove_EmptyApprover(t *testing.T) {
	w := newWorld()
	err := w.uc.Approve(context.Background(), "some-id", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApprove_UnknownApprover(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")

	err := w.uc.Approve(context.Background(), id, "user-ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, entity.TransferStatusPending, w.store.transfers[id].Status)
}

func TestApprove_UnknownTransfer(t *testing.T) {
	w := newWorld()
	err := w.uc.Approve(context.Background(), "transfer-ghost", testApproverID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ReordersExistingItems(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	w.addStock("stock-2", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1", "stock-2")

	err := w.uc.Update(context.Background(), id, apptransfer.UpdateInputDTO{
		StockIDs: []string{"stock-2", "stock-1"},
	})
	require.NoError(t, err)

	items := w.store.transfers[id].Items
	require.Len(t, items, 2)
	assert.Equal(t, "stock-2", items[0].StockID)
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, "stock-1", items[1].StockID)
	assert.Equal(t, 1, items[1].Position)
}

// The patch path may only reorder items already on the transfer; a foreign
// stock id fails the whole patch.
func TestUpdate_RejectsForeignStockID(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	w.addStock("stock-2", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")

	err := w.uc.Update(context.Background(), id, apptransfer.UpdateInputDTO{
		StockIDs: []string{"stock-1", "stock-2"},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	items := w.store.transfers[id].Items
	require.Len(t, items, 1)
	assert.Equal(t, "stock-1", items[0].StockID)
}

func TestUpdate_PatchesHeaderFields(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")

	from := "Records Section"
	reason := "reorganization"
	err := w.uc.Update(context.Background(), id, apptransfer.UpdateInputDTO{
		From:           &from,
		TransferReason: &reason,
	})
	require.NoError(t, err)

	stored := w.store.transfers[id]
	assert.Equal(t, "Records Section", stored.From)
	assert.Equal(t, "reorganization", stored.TransferReason)
	assert.Equal(t, entity.TransferStatusPending, stored.Status, "a plain patch must not advance the status")
}

// ──────────────────────────────────────────────────────────────────────────────
// Complete — batch issuance
// ──────────────────────────────────────────────────────────────────────────────

func completeInput(id string) apptransfer.CompleteInputDTO {
	return apptransfer.CompleteInputDTO{
		TransferID:            id,
		IssuedBy:              testIssuerID,
		ReceivedByName:        "Carla Santos",
		ReceivedByDesignation: "School Principal",
	}
}

func TestComplete_RunsBatchIssuance(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	w.addStock("stock-2", "asset-a", entity.StockConditionGood, "")
	w.addStock("stock-3", "asset-a", entity.StockConditionReissued, "4")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1", "stock-2", "stock-3")
	require.NoError(t, w.uc.Approve(context.Background(), id, testApproverID))

	require.NoError(t, w.uc.Complete(context.Background(), completeInput(id)))

	stored := w.store.transfers[id]
	assert.Equal(t, entity.TransferStatusCompleted, stored.Status)
	require.NotNil(t, stored.IssuedBy)
	assert.Equal(t, testIssuerID, *stored.IssuedBy)
	assert.Equal(t, "Carla Santos", stored.ReceivedByName)
	assert.Equal(t, "School Principal", stored.ReceivedByDesignation)
	assert.NotNil(t, stored.CompletedAt)

	// enriched item rows in stored order
	require.Len(t, stored.Items, 3)

	first := stored.Items[0]
	assert.Equal(t, "1", first.ItemNo)
	require.NotNil(t, first.Balance)
	assert.Equal(t, 9, *first.Balance)
	assert.Equal(t, 1, first.Qty)
	assert.Equal(t, entity.StockConditionGood, first.InitialCondition)
	assert.Equal(t, entity.StockConditionTransferred, first.Condition)

	second := stored.Items[1]
	assert.Equal(t, "2", second.ItemNo)
	require.NotNil(t, second.Balance)
	assert.Equal(t, 8, *second.Balance)

	third := stored.Items[2]
	assert.Equal(t, "4", third.ItemNo, "reissued unit keeps its original number")
	require.NotNil(t, third.Balance)
	assert.Equal(t, 8, *third.Balance)
	assert.Equal(t, entity.StockConditionReissued, third.InitialCondition)

	// only the two good-condition units deduct from the asset balance
	assert.Equal(t, 8, w.store.assets["asset-a"].Quantity)

	// every stock unit is stamped with the destination office
	for _, stockID := range []string{"stock-1", "stock-2", "stock-3"} {
		stock := w.store.stocks[stockID]
		assert.Equal(t, entity.StockConditionTransferred, stock.Condition)
		assert.Equal(t, stored.To, stock.Office)
	}
	assert.Equal(t, "1", w.store.stocks["stock-1"].ItemNo)
	assert.Equal(t, "2", w.store.stocks["stock-2"].ItemNo)
	assert.Equal(t, "4", w.store.stocks["stock-3"].ItemNo)
}

func TestComplete_RequiresAllFields(t *testing.T) {
	w := newWorld()
	in := completeInput("some-id")
	in.ReceivedByDesignation = ""
	err := w.uc.Complete(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComplete_UnknownIssuer(t *testing.T) {
	w := newWorld()
	in := completeInput("some-id")
	in.IssuedBy = "user-ghost"
	err := w.uc.Complete(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestComplete_UnknownTransfer(t *testing.T) {
	w := newWorld()
	err := w.uc.Complete(context.Background(), completeInput("transfer-ghost"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// A stock unit that disappeared between creation and completion aborts the
// whole issuance: no stock stamp, no balance deduction, no status change.
func TestComplete_MissingStockRollsBackEverything(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	w.addStock("stock-2", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1", "stock-2")

	delete(w.store.stocks, "stock-2")

	err := w.uc.Complete(context.Background(), completeInput(id))
	require.ErrorIs(t, err, domain.ErrNotFound)

	stored := w.store.transfers[id]
	assert.Equal(t, entity.TransferStatusPending, stored.Status)
	assert.Nil(t, stored.CompletedAt)
	assert.Equal(t, 10, w.store.assets["asset-a"].Quantity)
	assert.Equal(t, entity.StockConditionGood, w.store.stocks["stock-1"].Condition)
	require.Len(t, stored.Items, 2)
	assert.Nil(t, stored.Items[0].Balance)
}

// ──────────────────────────────────────────────────────────────────────────────
// Read side
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_NilWhenAbsent(t *testing.T) {
	w := newWorld()
	resp, err := w.uc.GetByID("transfer-ghost")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetByID_ProjectsItems(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	id := w.createTransfer(t, entity.TransferTypeInventory, "stock-1")

	resp, err := w.uc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, id, resp.ID)
	require.Len(t, resp.ItemStocks, 1)
	assert.Equal(t, "stock-1", resp.ItemStocks[0].StockID)
}

func TestList_ReturnsPage(t *testing.T) {
	w := newWorld()
	w.addAsset("asset-a", "Laptop", 10, 10)
	w.addStock("stock-1", "asset-a", entity.StockConditionGood, "")
	w.createTransfer(t, entity.TransferTypeInventory, "stock-1")
	w.createTransfer(t, entity.TransferTypeInventory, "stock-1")

	resp, err := w.uc.List(10, 0)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 10, resp.Page.Limit)
}
