package service

import (
	"strings"
	"testing"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScrapbookService(t *testing.T) *ScrapbookService {
	t.Helper()
	return NewScrapbookService(repository.NewMemoryScrapbookRepository())
}

func TestScrapbookCreate(t *testing.T) {
	svc := newScrapbookService(t)

	rating := 5
	entry, err := svc.Create(1, models.ScrapbookInput{
		Title:    "Temple visit",
		Location: "Lingaraj Temple",
		Tags:     []string{"heritage", "temple"},
		Rating:   &rating,
		IsPublic: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, uint(1), entry.OwnerID)
}

func TestScrapbookCreateValidation(t *testing.T) {
	svc := newScrapbookService(t)

	tests := []struct {
		name  string
		input models.ScrapbookInput
		field string
	}{
		{"title too short", models.ScrapbookInput{Title: "ab", Location: "Park"}, "title"},
		{"title too long", models.ScrapbookInput{Title: strings.Repeat("x", 101), Location: "Park"}, "title"},
		{"multibyte title too short", models.ScrapbookInput{Title: "寺院", Location: "Park"}, "title"},
		{"multibyte title too long", models.ScrapbookInput{Title: strings.Repeat("寺", 101), Location: "Park"}, "title"},
		{"location too short", models.ScrapbookInput{Title: "Valid title", Location: "ふた"}, "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(1, tt.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.field)
		})
	}

	// boundary: exactly 3 characters passes
	_, err := svc.Create(1, models.ScrapbookInput{Title: "abc", Location: "abc"})
	assert.NoError(t, err)

	// bounds count characters, not bytes: 3 multibyte runes pass, and a
	// 100-rune title over 100 bytes still passes
	_, err = svc.Create(1, models.ScrapbookInput{Title: "寺院巡", Location: "大塔の丘"})
	assert.NoError(t, err)
	_, err = svc.Create(1, models.ScrapbookInput{Title: strings.Repeat("寺", 100), Location: "Park"})
	assert.NoError(t, err)

	// rating out of bounds
	rating := 6
	_, err = svc.Create(1, models.ScrapbookInput{Title: "Valid title", Location: "Park", Rating: &rating})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "rating")
}

func TestScrapbookVisibility(t *testing.T) {
	svc := newScrapbookService(t)

	private, err := svc.Create(1, models.ScrapbookInput{Title: "Private note", Location: "Home"})
	require.NoError(t, err)
	public, err := svc.Create(1, models.ScrapbookInput{Title: "Public note", Location: "Park", IsPublic: true})
	require.NoError(t, err)

	// owner sees both
	_, err = svc.Get(private.ID, 1, true)
	assert.NoError(t, err)

	// other users and anonymous callers see only the public one
	_, err = svc.Get(private.ID, 2, true)
	assert.ErrorIs(t, err, ErrNotEntryOwner)
	_, err = svc.Get(private.ID, 0, false)
	assert.ErrorIs(t, err, ErrNotEntryOwner)
	_, err = svc.Get(public.ID, 0, false)
	assert.NoError(t, err)

	// missing id is not-found, not forbidden
	_, err = svc.Get(99, 1, true)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	listed, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, public.ID, listed[0].ID)

	mine, err := svc.ListByOwner(1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestScrapbookUpdate(t *testing.T) {
	svc := newScrapbookService(t)

	entry, err := svc.Create(1, models.ScrapbookInput{Title: "Original", Location: "Park", Description: "before"})
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.Update(entry.ID, 1, models.ScrapbookPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	// untouched fields survive a partial update
	assert.Equal(t, "before", updated.Description)
	assert.Equal(t, "Park", updated.Location)

	// non-owner is rejected
	_, err = svc.Update(entry.ID, 2, models.ScrapbookPatch{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotEntryOwner)

	// missing entry
	_, err = svc.Update(99, 1, models.ScrapbookPatch{Title: &newTitle})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// patch that breaks validation is rejected
	bad := "ab"
	_, err = svc.Update(entry.ID, 1, models.ScrapbookPatch{Title: &bad})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestScrapbookDelete(t *testing.T) {
	svc := newScrapbookService(t)

	entry, err := svc.Create(1, models.ScrapbookInput{Title: "Doomed entry", Location: "Park"})
	require.NoError(t, err)

	// ownership mismatch is forbidden, not a silent no-op
	assert.ErrorIs(t, svc.Delete(entry.ID, 2), ErrNotEntryOwner)
	_, err = svc.Get(entry.ID, 1, true)
	assert.NoError(t, err)

	require.NoError(t, svc.Delete(entry.ID, 1))
	_, err = svc.Get(entry.ID, 1, true)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	assert.ErrorIs(t, svc.Delete(entry.ID, 1), ErrEntryNotFound)
}
