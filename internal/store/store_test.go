package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftflow-app/backend/internal/models"
)

func TestCreateUserAssignsMonotonicIDs(t *testing.T) {
	s := New()

	a, err := s.CreateUser("A", "a@x.com", "pa")
	require.NoError(t, err)
	b, err := s.CreateUser("B", "b@x.com", "pb")
	require.NoError(t, err)

	assert.Equal(t, "u_1", a.ID)
	assert.Equal(t, "u_2", b.ID)
	assert.Equal(t, 2, s.UserCount())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := New()

	_, err := s.CreateUser("A", "a@x.com", "pa")
	require.NoError(t, err)

	_, err = s.CreateUser("Other", "a@x.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, s.UserCount())

	u, ok := s.UserByEmail("a@x.com")
	require.True(t, ok)
	assert.Equal(t, "A", u.Name, "first record must be untouched")
}

func TestTokenForEmailFirstInsertedWins(t *testing.T) {
	s := New()

	s.PutToken("tok_first", "a@x.com")
	s.PutToken("tok_second", "a@x.com")

	tok, ok := s.TokenForEmail("a@x.com")
	require.True(t, ok)
	assert.Equal(t, "tok_first", tok)
}

func TestPutTokenOverwriteKeepsInsertionOrder(t *testing.T) {
	s := New()

	s.PutToken("tok_a", "a@x.com")
	s.PutToken("tok_b", "b@x.com")
	// remap tok_a; it stays first in iteration order
	s.PutToken("tok_a", "b@x.com")

	email, ok := s.EmailForToken("tok_a")
	require.True(t, ok)
	assert.Equal(t, "b@x.com", email)

	tok, ok := s.TokenForEmail("b@x.com")
	require.True(t, ok)
	assert.Equal(t, "tok_a", tok)
}

func TestEmailForTokenUnknown(t *testing.T) {
	s := New()
	_, ok := s.EmailForToken("nope")
	assert.False(t, ok)
}

func TestAddEventAssignsMonotonicIDs(t *testing.T) {
	s := New()

	e1 := s.AddEvent(models.Event{Name: "One", OwnerID: "u_1"})
	e2 := s.AddEvent(models.Event{Name: "Two", OwnerID: "u_1"})

	assert.Equal(t, "evt_1", e1.ID)
	assert.Equal(t, "evt_2", e2.ID)
}

func TestEventsByOwnerScopesAndOrders(t *testing.T) {
	s := New()

	s.AddEvent(models.Event{Name: "A1", OwnerID: "u_1"})
	s.AddEvent(models.Event{Name: "B1", OwnerID: "u_2"})
	s.AddEvent(models.Event{Name: "A2", OwnerID: "u_1"})

	owned := s.EventsByOwner("u_1")
	require.Len(t, owned, 2)
	assert.Equal(t, "A1", owned[0].Name)
	assert.Equal(t, "A2", owned[1].Name)

	none := s.EventsByOwner("u_3")
	require.NotNil(t, none, "empty listing must serialize as [], not null")
	assert.Empty(t, none)
}

func TestNewSeededFixture(t *testing.T) {
	s := NewSeeded()

	u, ok := s.UserByEmail("demo@giftflow.app")
	require.True(t, ok)
	assert.Equal(t, "u_demo_1", u.ID)
	assert.Equal(t, "Demo User", u.Name)
	assert.Equal(t, "demo123", u.Password)

	// no token is seeded; login mints one on first use
	_, ok = s.TokenForEmail("demo@giftflow.app")
	assert.False(t, ok)

	events := s.EventsByOwner("u_demo_1")
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, "evt_1", e.ID)
	assert.Equal(t, "Holiday Gift Swap", e.Name)
	assert.Equal(t, models.DefaultEventType, e.EventType)
	assert.Equal(t, models.StatusDraft, e.Status)
	require.NotNil(t, e.Budget)
	assert.Equal(t, 40.0, *e.Budget)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, e.Participants)
}
