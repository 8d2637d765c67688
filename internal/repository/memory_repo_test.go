package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewMemoryUserRepository()

	user := &models.User{Username: "alice", Password: "x", Name: "Alice", Role: models.RoleUser}
	require.NoError(t, repo.Create(user))
	assert.Equal(t, uint(1), user.ID)

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	got, err = repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Create(&models.User{Username: "alice", Password: "x"}))
	err := repo.Create(&models.User{Username: "alice", Password: "y"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryUserRepositoryConcurrentCreate(t *testing.T) {
	repo := NewMemoryUserRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(&models.User{Username: fmt.Sprintf("user-%d", i), Password: "x"})
		}(i)
	}
	wg.Wait()

	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 50)

	seen := make(map[uint]bool)
	for _, u := range users {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestMemoryScrapbookRepositoryCRUD(t *testing.T) {
	repo := NewMemoryScrapbookRepository()

	entry := &models.ScrapbookEntry{OwnerID: 1, Title: "Temple visit", Location: "Lingaraj Temple", IsPublic: true}
	require.NoError(t, repo.Create(entry))
	assert.Equal(t, uint(1), entry.ID)

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Temple visit", got.Title)

	got.Title = "Updated title"
	require.NoError(t, repo.Update(got))
	got, err = repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)

	require.NoError(t, repo.Delete(1))
	_, err = repo.GetByID(1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(1), ErrNotFound)
	assert.ErrorIs(t, repo.Update(&models.ScrapbookEntry{ID: 1}), ErrNotFound)
}

func TestMemoryScrapbookRepositoryListing(t *testing.T) {
	repo := NewMemoryScrapbookRepository()

	require.NoError(t, repo.Create(&models.ScrapbookEntry{OwnerID: 1, Title: "Public one", Location: "Park", IsPublic: true}))
	require.NoError(t, repo.Create(&models.ScrapbookEntry{OwnerID: 1, Title: "Private one", Location: "Home"}))
	require.NoError(t, repo.Create(&models.ScrapbookEntry{OwnerID: 2, Title: "Other owner", Location: "Lake", IsPublic: true}))

	public, err := repo.ListPublic()
	require.NoError(t, err)
	assert.Len(t, public, 2)

	mine, err := repo.ListByOwner(1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Public one", mine[0].Title)
	assert.Equal(t, "Private one", mine[1].Title)

	total, publicCount, err := repo.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(2), publicCount)
}

func TestMemoryScrapbookRepositoryCopiesOnRead(t *testing.T) {
	repo := NewMemoryScrapbookRepository()

	require.NoError(t, repo.Create(&models.ScrapbookEntry{
		OwnerID:  1,
		Title:    "Tagged",
		Location: "Museum",
		Tags:     []string{"history"},
	}))

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	got.Tags[0] = "mutated"
	got.Title = "mutated"

	again, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Tagged", again.Title)
	assert.Equal(t, []string{"history"}, again.Tags)
}
