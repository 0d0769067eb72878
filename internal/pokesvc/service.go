package pokesvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/IsaacDSC/pokedex/pkg/listcache"
	"golang.org/x/sync/singleflight"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// ErrNotFound reports that no pokemon matched a single-item lookup.
var ErrNotFound = errors.New("pokemon not found")

type Storage interface {
	FindPage(ctx context.Context, limit, offset int64) ([]PokemonSummary, int64, error)
	Insert(ctx context.Context, pokemon Pokemon) error
	DeleteAll(ctx context.Context) error
	FindByName(ctx context.Context, name string) (Pokemon, error)
	Count(ctx context.Context) (int64, error)
}

// Service answers list queries through the cache and owns its invalidation:
// every mutating operation clears the cache here, so no handler can forget to.
type Service struct {
	store Storage
	cache *listcache.Cache[ListPayload]
	sf    singleflight.Group
}

func NewService(store Storage, cache *listcache.Cache[ListPayload]) *Service {
	return &Service{store: store, cache: cache}
}

// ListPokemon resolves one pagination window, read-through: a valid cache
// entry short-circuits storage entirely. Concurrent misses for the same
// window are collapsed into a single storage query.
func (s *Service) ListPokemon(ctx context.Context, limitRaw, offsetRaw string) (ListPayload, error) {
	limit, offset := normalizePage(limitRaw, offsetRaw)
	key := listcache.PageKey(limit, offset)

	if payload, ok := s.cache.Get(key); ok {
		return payload, nil
	}

	v, err, _ := s.sf.Do(key.String(), func() (any, error) {
		items, total, err := s.store.FindPage(ctx, int64(limit), int64(offset))
		if err != nil {
			// A failed query must not leave anything behind in the cache.
			return ListPayload{}, fmt.Errorf("unable to list pokemon: %w", err)
		}

		payload := ListPayload{Items: items, Total: total, Limit: limit, Offset: offset}
		s.cache.Put(key, payload)

		return payload, nil
	})
	if err != nil {
		return ListPayload{}, err
	}

	return v.(ListPayload), nil
}

func (s *Service) CreatePokemon(ctx context.Context, input CreatePokemonDto) (Pokemon, error) {
	if input.Name == "" || input.Type == "" {
		return Pokemon{}, errors.New("name and type are required")
	}

	model := input.ToPokemon()
	if err := s.store.Insert(ctx, model); err != nil {
		return Pokemon{}, fmt.Errorf("unable to create pokemon: %w", err)
	}

	// A new row changes the total for every pagination window.
	s.cache.Clear()

	return model, nil
}

func (s *Service) DeleteAllPokemon(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return fmt.Errorf("unable to delete pokemon: %w", err)
	}

	s.cache.Clear()

	return nil
}

// GetPokemonByName is an uncached single-item lookup.
func (s *Service) GetPokemonByName(ctx context.Context, name string) (Pokemon, error) {
	pokemon, err := s.store.FindByName(ctx, name)
	if err != nil {
		return Pokemon{}, fmt.Errorf("unable to get pokemon %q: %w", name, err)
	}

	return pokemon, nil
}

func (s *Service) CountPokemon(ctx context.Context) (int64, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("unable to count pokemon: %w", err)
	}

	return count, nil
}

// normalizePage resolves raw query parameters to a usable window without ever
// signaling an error. A limit that does not parse to a positive number falls
// back to the default rather than being clamped to 1; only the upper bound is
// enforced. Offsets are floored at zero.
func normalizePage(limitRaw, offsetRaw string) (limit, offset int) {
	limit, err := strconv.Atoi(limitRaw)
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset, err = strconv.Atoi(offsetRaw)
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}
