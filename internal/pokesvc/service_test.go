package pokesvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IsaacDSC/pokedex/pkg/listcache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStorage is an in-memory Storage that counts invocations so tests can
// prove whether the cache or the store answered a query.
type stubStorage struct {
	rows []Pokemon

	findPageCalls int
	insertCalls   int
	deleteCalls   int

	findPageErr error
	insertErr   error
	deleteErr   error
}

func (s *stubStorage) FindPage(_ context.Context, limit, offset int64) ([]PokemonSummary, int64, error) {
	s.findPageCalls++
	if s.findPageErr != nil {
		return nil, 0, s.findPageErr
	}

	items := []PokemonSummary{}
	for i := offset; i < int64(len(s.rows)) && i < offset+limit; i++ {
		row := s.rows[i]
		items = append(items, PokemonSummary{ID: row.ID, Name: row.Name, Type: row.Type})
	}

	return items, int64(len(s.rows)), nil
}

func (s *stubStorage) Insert(_ context.Context, pokemon Pokemon) error {
	s.insertCalls++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.rows = append(s.rows, pokemon)
	return nil
}

func (s *stubStorage) DeleteAll(context.Context) error {
	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.rows = nil
	return nil
}

func (s *stubStorage) FindByName(_ context.Context, name string) (Pokemon, error) {
	for _, row := range s.rows {
		if row.Name == name {
			return row, nil
		}
	}
	return Pokemon{}, ErrNotFound
}

func (s *stubStorage) Count(context.Context) (int64, error) {
	return int64(len(s.rows)), nil
}

func seedRows(n int) []Pokemon {
	rows := make([]Pokemon, 0, n)
	names := []string{"Pikachu", "Charmander", "Squirtle", "Bulbasaur", "Eevee"}
	types := []string{"Electric", "Fire", "Water", "Grass", "Normal"}
	for i := 0; i < n; i++ {
		rows = append(rows, Pokemon{ID: uuid.New(), Name: names[i%len(names)], Type: types[i%len(types)]})
	}
	return rows
}

// newTestService wires a service against a fake clock; advancing *current
// moves cache time without sleeping.
func newTestService(store Storage, ttl time.Duration, current *time.Time) *Service {
	cache := listcache.New(ttl, listcache.WithNowFunc[ListPayload](func() time.Time { return *current }))
	return NewService(store, cache)
}

func TestListPokemonCachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3)}
	svc := newTestService(store, 10*time.Second, &current)

	first, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, store.findPageCalls)
	assert.Len(t, first.Items, 3)
	assert.Equal(t, int64(3), first.Total)
	assert.Equal(t, 50, first.Limit)
	assert.Equal(t, 0, first.Offset)

	current = current.Add(5 * time.Second)

	second, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, store.findPageCalls, "second call inside the TTL must not reach storage")
	assert.Equal(t, first, second)
}

func TestListPokemonRefreshesAfterTTL(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3)}
	svc := newTestService(store, 10*time.Second, &current)

	_, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, store.findPageCalls)

	current = current.Add(11 * time.Second)

	_, err = svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 2, store.findPageCalls, "expired entry must be recomputed")

	// The refresh restarted the TTL window.
	current = current.Add(9 * time.Second)
	_, err = svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 2, store.findPageCalls)
}

func TestListPokemonDistinctWindows(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(5)}
	svc := newTestService(store, 10*time.Second, &current)

	first, err := svc.ListPokemon(ctx, "2", "0")
	require.NoError(t, err)

	second, err := svc.ListPokemon(ctx, "2", "2")
	require.NoError(t, err)

	assert.Equal(t, 2, store.findPageCalls, "each window is cached independently")
	assert.NotEqual(t, first.Items, second.Items)
	assert.Equal(t, 0, first.Offset)
	assert.Equal(t, 2, second.Offset)
}

func TestCreatePokemonInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3)}
	svc := newTestService(store, 10*time.Second, &current)

	first, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Total)
	assert.Equal(t, 1, store.findPageCalls)

	created, err := svc.CreatePokemon(ctx, CreatePokemonDto{Name: "Bulbasaur", Type: "Grass"})
	require.NoError(t, err)
	assert.Equal(t, 1, store.insertCalls)
	assert.NotEqual(t, uuid.Nil, created.ID)

	second, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 2, store.findPageCalls, "create must force the next list back to storage")
	assert.Equal(t, int64(4), second.Total)
	assert.Len(t, second.Items, 4)
}

func TestDeleteAllPokemonInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3)}
	svc := newTestService(store, 10*time.Second, &current)

	_, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, store.findPageCalls)

	require.NoError(t, svc.DeleteAllPokemon(ctx))
	assert.Equal(t, 1, store.deleteCalls)

	payload, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 2, store.findPageCalls)
	assert.Equal(t, int64(0), payload.Total)
	assert.Empty(t, payload.Items)
}

func TestListPokemonStorageErrorNotCached(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3), findPageErr: errors.New("connection reset")}
	svc := newTestService(store, 10*time.Second, &current)

	_, err := svc.ListPokemon(ctx, "50", "0")
	assert.Error(t, err)
	assert.Equal(t, 1, store.findPageCalls)

	// Once storage recovers the next call must query it, not replay a failure.
	store.findPageErr = nil

	payload, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 2, store.findPageCalls)
	assert.Equal(t, int64(3), payload.Total)
}

func TestCreatePokemonStorageErrorLeavesCache(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3)}
	svc := newTestService(store, 10*time.Second, &current)

	_, err := svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, store.findPageCalls)

	store.insertErr = errors.New("write concern failed")
	_, err = svc.CreatePokemon(ctx, CreatePokemonDto{Name: "Mewtwo", Type: "Psychic"})
	assert.Error(t, err)

	_, err = svc.ListPokemon(ctx, "50", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, store.findPageCalls, "failed create must not invalidate the cache")
}

func TestCreatePokemonValidation(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{}
	svc := newTestService(store, 10*time.Second, &current)

	_, err := svc.CreatePokemon(ctx, CreatePokemonDto{Name: "", Type: "Grass"})
	assert.Error(t, err)

	_, err = svc.CreatePokemon(ctx, CreatePokemonDto{Name: "Bulbasaur", Type: ""})
	assert.Error(t, err)

	assert.Equal(t, 0, store.insertCalls)
}

func TestGetPokemonByName(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3)}
	svc := newTestService(store, 10*time.Second, &current)

	pokemon, err := svc.GetPokemonByName(ctx, "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", pokemon.Name)

	_, err = svc.GetPokemonByName(ctx, "Missingno")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name           string
		limitRaw       string
		offsetRaw      string
		expectedLimit  int
		expectedOffset int
	}{
		{name: "both empty", limitRaw: "", offsetRaw: "", expectedLimit: 50, expectedOffset: 0},
		{name: "non-numeric limit", limitRaw: "abc", offsetRaw: "0", expectedLimit: 50, expectedOffset: 0},
		{name: "limit above cap", limitRaw: "9999", offsetRaw: "0", expectedLimit: 200, expectedOffset: 0},
		{name: "limit at cap", limitRaw: "200", offsetRaw: "0", expectedLimit: 200, expectedOffset: 0},
		{name: "zero limit falls back to default", limitRaw: "0", offsetRaw: "10", expectedLimit: 50, expectedOffset: 10},
		{name: "negative limit falls back to default", limitRaw: "-3", offsetRaw: "0", expectedLimit: 50, expectedOffset: 0},
		{name: "negative offset floored", limitRaw: "50", offsetRaw: "-5", expectedLimit: 50, expectedOffset: 0},
		{name: "non-numeric offset floored", limitRaw: "50", offsetRaw: "abc", expectedLimit: 50, expectedOffset: 0},
		{name: "plain window", limitRaw: "5", offsetRaw: "15", expectedLimit: 5, expectedOffset: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := normalizePage(tt.limitRaw, tt.offsetRaw)
			assert.Equal(t, tt.expectedLimit, limit)
			assert.Equal(t, tt.expectedOffset, offset)
		})
	}
}

func TestNormalizedWindowsShareCacheEntry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := &stubStorage{rows: seedRows(3)}
	svc := newTestService(store, 10*time.Second, &current)

	_, err := svc.ListPokemon(ctx, "abc", "-5")
	require.NoError(t, err)

	// Normalizes to the same (50, 0) window, so the cache answers.
	_, err = svc.ListPokemon(ctx, "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, store.findPageCalls)
}
