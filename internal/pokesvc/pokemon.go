package pokesvc

import (
	"time"

	"github.com/google/uuid"
)

type CreatePokemonDto struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (dto CreatePokemonDto) ToPokemon() Pokemon {
	return Pokemon{
		ID:        uuid.New(),
		Name:      dto.Name,
		Type:      dto.Type,
		CreatedAt: time.Now(),
	}
}

type Pokemon struct {
	ID        uuid.UUID `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// PokemonSummary is the projection served by the list view; the full document
// stays in storage.
type PokemonSummary struct {
	ID   uuid.UUID `bson:"id" json:"id"`
	Name string    `bson:"name" json:"name"`
	Type string    `bson:"type" json:"type"`
}

// ListPayload is one pagination window of the collection plus the total count,
// echoing back the window it was built for.
type ListPayload struct {
	Items  []PokemonSummary `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// CountPayload carries the bare collection size for the count endpoint.
type CountPayload struct {
	Count int64 `json:"count"`
}
