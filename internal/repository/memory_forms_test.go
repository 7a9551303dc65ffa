package repository

import (
	"context"
	"testing"
	"time"

	"banyan-data/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func newOutreach(facility, createdBy string, sno int) *domain.Outreach {
	o := &domain.Outreach{
		SNo:      intp(sno),
		District: "Chennai",
		Name:     "Test",
		Gender:   "Male",
	}
	o.Facility = facility
	o.CreatedBy = createdBy
	return o
}

func TestMemoryFormRepo_InsertAssignsMeta(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFormRepo[domain.Outreach]()

	rec := newOutreach("adyar", "user-1", 1)
	require.NoError(t, repo.Insert(ctx, rec))

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestMemoryFormRepo_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFormRepo[domain.Outreach]()

	first := newOutreach("adyar", "user-1", 1)
	require.NoError(t, repo.Insert(ctx, first))
	time.Sleep(2 * time.Millisecond)
	second := newOutreach("adyar", "user-1", 2)
	require.NoError(t, repo.Insert(ctx, second))

	out, err := repo.List(ctx, FormFilter{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, second.ID, out[0].ID)
	assert.Equal(t, first.ID, out[1].ID)
}

func TestMemoryFormRepo_FilterByFacilityAndCreator(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFormRepo[domain.Outreach]()

	require.NoError(t, repo.Insert(ctx, newOutreach("adyar", "user-1", 1)))
	require.NoError(t, repo.Insert(ctx, newOutreach("guindy", "user-1", 2)))
	require.NoError(t, repo.Insert(ctx, newOutreach("adyar", "user-2", 3)))

	byFacility, err := repo.List(ctx, FormFilter{Facility: "adyar"})
	require.NoError(t, err)
	assert.Len(t, byFacility, 2)
	for _, rec := range byFacility {
		assert.Equal(t, "adyar", rec.Facility)
	}

	byCreator, err := repo.List(ctx, FormFilter{CreatedBy: "user-1"})
	require.NoError(t, err)
	assert.Len(t, byCreator, 2)

	both, err := repo.List(ctx, FormFilter{Facility: "adyar", CreatedBy: "user-2"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, 3, *both[0].SNo)
}

// No uniqueness is enforced on any business field: the same sno inserted
// twice yields two records with distinct generated ids.
func TestMemoryFormRepo_DuplicateSnoAccepted(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFormRepo[domain.Outreach]()

	a := newOutreach("adyar", "user-1", 1)
	b := newOutreach("adyar", "user-1", 1)
	require.NoError(t, repo.Insert(ctx, a))
	require.NoError(t, repo.Insert(ctx, b))

	out, err := repo.List(ctx, FormFilter{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.NotEqual(t, out[0].ID, out[1].ID)
}

func TestMemoryUsersRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUsersRepo()

	u := &domain.User{Name: "A", Email: "a@example.org", Facility: "adyar", Role: domain.RoleUser}
	require.NoError(t, repo.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)

	byEmail, err := repo.GetUserByEmail(ctx, "a@example.org")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", byID.Name)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.org")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
