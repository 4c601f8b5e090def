package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusconnect/portal-be/internal/models"
)

func TestLostFoundService_CreateThenList(t *testing.T) {
	t.Parallel()

	svc := NewLostFoundService(newTestDB(t))

	created, err := svc.Create(models.LostFoundItem{ItemName: "umbrella", Status: "lost", Location: "library"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, created.ID, items[0].ID)
	require.Equal(t, "umbrella", items[0].ItemName)
	require.Equal(t, "lost", items[0].Status)
	require.Equal(t, "library", items[0].Location)
}

func TestMarketplaceService_CreateThenList(t *testing.T) {
	t.Parallel()

	svc := NewMarketplaceService(newTestDB(t))

	created, err := svc.Create(models.MarketplaceItem{
		ItemName:    "calculus textbook",
		Price:       12.5,
		Description: "second edition",
		Condition:   "used",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "calculus textbook", items[0].ItemName)
	require.Equal(t, 12.5, items[0].Price)
	require.Equal(t, "second edition", items[0].Description)
	require.Equal(t, "used", items[0].Condition)
}

func TestRideService_CreateThenList(t *testing.T) {
	t.Parallel()

	svc := NewRideService(newTestDB(t))

	created, err := svc.Create(models.Ride{Departure: "A", Destination: "B", Time: "9am"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	rides, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rides, 1)
	require.Equal(t, "A", rides[0].Departure)
	require.Equal(t, "B", rides[0].Destination)
	require.Equal(t, "9am", rides[0].Time)
}

func TestExchangeService_CreateThenList(t *testing.T) {
	t.Parallel()

	svc := NewExchangeService(newTestDB(t))

	created, err := svc.Create(models.ExchangePost{Title: "guitar lessons", Type: "skill", Description: "beginner friendly"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	posts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "guitar lessons", posts[0].Title)
	require.Equal(t, "skill", posts[0].Type)
	require.Equal(t, "beginner friendly", posts[0].Description)
}

func TestResourceService_ListEmpty(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	rides, err := NewRideService(db).List()
	require.NoError(t, err)
	require.NotNil(t, rides)
	require.Empty(t, rides)
}
