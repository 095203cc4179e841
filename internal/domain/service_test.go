package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventapos/internal/core/apperror"
	"ventapos/internal/core/entity"
	"ventapos/internal/core/id"
)

type thing struct {
	entity.Catalog
}

func newThing(name string) *thing {
	return &thing{Catalog: entity.NewCatalog("", name)}
}

type memThingRepo struct {
	byID map[id.ID]*thing
	txs  int
}

func newMemThingRepo() *memThingRepo {
	return &memThingRepo{byID: make(map[id.ID]*thing)}
}

func (r *memThingRepo) Create(_ context.Context, t *thing) error {
	r.byID[t.ID] = t
	return nil
}

func (r *memThingRepo) GetByID(_ context.Context, entityID id.ID) (*thing, error) {
	if t, ok := r.byID[entityID]; ok {
		return t, nil
	}
	return nil, apperror.NewNotFound("thing", entityID.String())
}

func (r *memThingRepo) GetByCode(_ context.Context, code string) (*thing, error) {
	for _, t := range r.byID {
		if t.Code == code {
			return t, nil
		}
	}
	return nil, apperror.NewNotFound("thing", code)
}

func (r *memThingRepo) Update(_ context.Context, t *thing) error {
	if _, ok := r.byID[t.ID]; !ok {
		return apperror.NewNotFound("thing", t.ID.String())
	}
	r.byID[t.ID] = t
	return nil
}

func (r *memThingRepo) SetDeletionMark(_ context.Context, entityID id.ID, marked bool) error {
	t, ok := r.byID[entityID]
	if !ok {
		return apperror.NewNotFound("thing", entityID.String())
	}
	t.DeletionMark = marked
	return nil
}

func (r *memThingRepo) List(_ context.Context, filter ListFilter) (ListResult[*thing], error) {
	result := ListResult[*thing]{Limit: filter.Limit, Offset: filter.Offset}
	for _, t := range r.byID {
		if t.DeletionMark && !filter.IncludeDeleted {
			continue
		}
		result.Items = append(result.Items, t)
	}
	result.TotalCount = int64(len(result.Items))
	return result, nil
}

func (r *memThingRepo) Exists(_ context.Context, entityID id.ID) (bool, error) {
	t, ok := r.byID[entityID]
	return ok && !t.DeletionMark, nil
}

func (r *memThingRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, t := range r.byID {
		if t.Code == code && !t.DeletionMark {
			return true, nil
		}
	}
	return false, nil
}

type countingTxManager struct {
	calls int
}

func (m *countingTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func newThingService(repo *memThingRepo, txm *countingTxManager) *CatalogService[*thing] {
	return NewCatalogService(CatalogServiceConfig[*thing]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "thing",
	})
}

func TestCatalogServiceCreateRunsInTransaction(t *testing.T) {
	repo := newMemThingRepo()
	txm := &countingTxManager{}
	svc := newThingService(repo, txm)

	th := newThing("Widget")
	require.NoError(t, svc.Create(context.Background(), th))

	assert.Equal(t, 1, txm.calls)
	assert.Contains(t, repo.byID, th.ID)
}

func TestCatalogServiceCreateRejectsInvalid(t *testing.T) {
	repo := newMemThingRepo()
	svc := newThingService(repo, &countingTxManager{})

	err := svc.Create(context.Background(), newThing(""))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Empty(t, repo.byID)
}

func TestCatalogServiceBeforeCreateHookAborts(t *testing.T) {
	repo := newMemThingRepo()
	svc := newThingService(repo, &countingTxManager{})

	hookErr := errors.New("nope")
	svc.Hooks().On(BeforeCreate, func(_ context.Context, _ *thing) error {
		return hookErr
	})

	err := svc.Create(context.Background(), newThing("Widget"))
	assert.ErrorIs(t, err, hookErr)
	assert.Empty(t, repo.byID)
}

func TestCatalogServiceHookCanMutateEntity(t *testing.T) {
	repo := newMemThingRepo()
	svc := newThingService(repo, &countingTxManager{})

	svc.Hooks().On(BeforeCreate, func(_ context.Context, th *thing) error {
		if th.Code == "" {
			th.Code = "THG-001"
		}
		return nil
	})

	th := newThing("Widget")
	require.NoError(t, svc.Create(context.Background(), th))
	assert.Equal(t, "THG-001", th.Code)
}

func TestCatalogServiceGetByIDNotFound(t *testing.T) {
	svc := newThingService(newMemThingRepo(), &countingTxManager{})

	_, err := svc.GetByID(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCatalogServiceDeleteMarksEntity(t *testing.T) {
	repo := newMemThingRepo()
	svc := newThingService(repo, &countingTxManager{})

	th := newThing("Widget")
	require.NoError(t, svc.Create(context.Background(), th))
	require.NoError(t, svc.Delete(context.Background(), th.ID))

	assert.True(t, repo.byID[th.ID].DeletionMark)

	// Deleted entities disappear from default listings.
	result, err := svc.List(context.Background(), DefaultListFilter())
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestCatalogServiceDeleteUnknown(t *testing.T) {
	svc := newThingService(newMemThingRepo(), &countingTxManager{})

	err := svc.Delete(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}
