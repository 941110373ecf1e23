package company

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reestr-app/reestr-backend-go/internal/domain/company"
	"github.com/reestr-app/reestr-backend-go/internal/pkg/validator"
)

// fakeCompanyRepository mirrors the storage semantics: one row per INN across
// active and soft-deleted records, enforced the way the unique index would.
type fakeCompanyRepository struct {
	companies []company.Company
}

func (f *fakeCompanyRepository) ListByOwner(_ context.Context, ownerID int64) ([]company.Company, error) {
	var result []company.Company
	for _, c := range f.companies {
		if c.UserID == ownerID && !c.Deleted() {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCompanyRepository) GetByID(_ context.Context, id string) (company.Company, error) {
	for _, c := range f.companies {
		if c.ID == id && !c.Deleted() {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepository) GetByINN(_ context.Context, inn string) (company.Company, error) {
	for _, c := range f.companies {
		if c.INN == inn {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepository) Create(_ context.Context, newCompany company.Company) (company.Company, error) {
	for _, c := range f.companies {
		if c.INN == newCompany.INN {
			return company.Company{}, company.ErrINNExists
		}
	}
	now := time.Now()
	created := newCompany
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now
	f.companies = append(f.companies, created)
	return created, nil
}

func (f *fakeCompanyRepository) Restore(_ context.Context, id string, title string) (company.Company, error) {
	for i, c := range f.companies {
		if c.ID == id && c.Deleted() {
			f.companies[i].DeletedAt = nil
			f.companies[i].Title = title
			f.companies[i].UpdatedAt = time.Now()
			return f.companies[i], nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepository) UpdateTitle(_ context.Context, id string, title string) (company.Company, error) {
	for i, c := range f.companies {
		if c.ID == id && !c.Deleted() {
			f.companies[i].Title = title
			f.companies[i].UpdatedAt = time.Now()
			return f.companies[i], nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepository) SoftDelete(_ context.Context, id string) error {
	for i, c := range f.companies {
		if c.ID == id && !c.Deleted() {
			now := time.Now()
			f.companies[i].DeletedAt = &now
			return nil
		}
	}
	return company.ErrCompanyNotFound
}

var _ company.CompanyRepository = (*fakeCompanyRepository)(nil)

const testINN = "123456789012"

func newTestService() (*fakeCompanyRepository, company.CompanyService) {
	repo := &fakeCompanyRepository{}
	return repo, NewCompanyService(repo)
}

func TestCompanyService_Create_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, testINN, created.INN)
	assert.Equal(t, "Acme", created.Title)
	assert.Equal(t, int64(1), created.UserID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
}

func TestCompanyService_Create_DuplicateActiveINN(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, service := newTestService()

	_, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)

	// Same INN by another user conflicts and creates nothing
	_, err = service.Create(ctx, 2, company.CreateCompanyRequest{INN: testINN, Title: "Copycat"})
	assert.ErrorIs(t, err, company.ErrINNExists)
	assert.Len(t, repo.companies, 1)
	assert.Equal(t, "Acme", repo.companies[0].Title)
}

func TestCompanyService_Create_RestoresSoftDeleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)
	require.NoError(t, service.Delete(ctx, created.ID, 1))

	// A different user re-creates the same INN: the original record comes
	// back with its id and owner intact, only the title changes.
	restored, err := service.Create(ctx, 2, company.CreateCompanyRequest{INN: testINN, Title: "Acme Reborn"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, restored.ID)
	assert.Equal(t, int64(1), restored.UserID)
	assert.Equal(t, "Acme Reborn", restored.Title)

	// The restored record is visible to its original owner again
	mine, err := service.ListMine(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Acme Reborn", mine[0].Title)
}

// racingRepository simulates a concurrent restore between the INN lookup and
// the restore statement.
type racingRepository struct {
	fakeCompanyRepository
}

func (r *racingRepository) Restore(_ context.Context, _ string, _ string) (company.Company, error) {
	return company.Company{}, company.ErrCompanyNotFound
}

func TestCompanyService_Create_RestoreRaceReportsConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &racingRepository{}
	service := NewCompanyService(repo)

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)
	require.NoError(t, service.Delete(ctx, created.ID, 1))

	_, err = service.Create(ctx, 2, company.CreateCompanyRequest{INN: testINN, Title: "Racer"})
	assert.ErrorIs(t, err, company.ErrINNExists)
}

func TestCompanyService_Create_ValidationRunsBeforeLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, service := newTestService()

	_, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: "123", Title: ""})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "inn")
	assert.Contains(t, details, "title")
	assert.Empty(t, repo.companies)
}

func TestCompanyService_ListMine_FiltersOwnerAndDeleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	mineActive, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: "111111111111", Title: "Mine"})
	require.NoError(t, err)
	mineDeleted, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: "222222222222", Title: "Mine, deleted"})
	require.NoError(t, err)
	_, err = service.Create(ctx, 2, company.CreateCompanyRequest{INN: "333333333333", Title: "Someone else's"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, mineDeleted.ID, 1))

	mine, err := service.ListMine(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, mineActive.ID, mine[0].ID)
}

func TestCompanyService_ListMine_EmptyIsNotNil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	mine, err := service.ListMine(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, mine)
	assert.Empty(t, mine)
}

func TestCompanyService_Update_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, 1, company.UpdateCompanyRequest{Title: "Acme v2"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme v2", updated.Title)
	assert.Equal(t, testINN, updated.INN)
}

func TestCompanyService_Update_NotOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, 2, company.UpdateCompanyRequest{Title: "Hijacked"})
	assert.ErrorIs(t, err, company.ErrNotCompanyOwner)
	assert.Equal(t, "Acme", repo.companies[0].Title)
}

func TestCompanyService_Update_OwnershipCheckedBeforeValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)

	// Non-owner with an invalid payload still gets the authorization error
	_, err = service.Update(ctx, created.ID, 2, company.UpdateCompanyRequest{Title: ""})
	assert.ErrorIs(t, err, company.ErrNotCompanyOwner)
}

func TestCompanyService_Update_InvalidTitle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, 1, company.UpdateCompanyRequest{Title: ""})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestCompanyService_Update_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	_, err := service.Update(ctx, uuid.NewString(), 1, company.UpdateCompanyRequest{Title: "Anything"})
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCompanyService_Delete_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID, 1))

	// Gone from the active list, still present in storage by INN
	mine, err := service.ListMine(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, mine)

	stored, err := repo.GetByINN(context.Background(), testINN)
	require.NoError(t, err)
	assert.True(t, stored.Deleted())
}

func TestCompanyService_Delete_NotOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)

	err = service.Delete(ctx, created.ID, 2)
	assert.ErrorIs(t, err, company.ErrNotCompanyOwner)
	assert.False(t, repo.companies[0].Deleted())
}

func TestCompanyService_Delete_AlreadyDeleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	_, service := newTestService()

	created, err := service.Create(ctx, 1, company.CreateCompanyRequest{INN: testINN, Title: "Acme"})
	require.NoError(t, err)
	require.NoError(t, service.Delete(ctx, created.ID, 1))

	// The soft-deleted record no longer resolves by id
	err = service.Delete(ctx, created.ID, 1)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}
