package pokeweb

import (
	"context"
	"net/http"

	"github.com/IsaacDSC/pokedex/internal/pokesvc"
)

type Service interface {
	ListPokemon(ctx context.Context, limitRaw, offsetRaw string) (pokesvc.ListPayload, error)
	CreatePokemon(ctx context.Context, input pokesvc.CreatePokemonDto) (pokesvc.Pokemon, error)
	DeleteAllPokemon(ctx context.Context) error
	GetPokemonByName(ctx context.Context, name string) (pokesvc.Pokemon, error)
	CountPokemon(ctx context.Context) (int64, error)
}

// dataEnvelope wraps every successful response body.
type dataEnvelope struct {
	Data any `json:"data"`
}

type Handler struct {
	routes map[string]func(http.ResponseWriter, *http.Request)
}

func NewHandler(service Service) *Handler {
	h := &Handler{}

	h.routes = map[string]func(http.ResponseWriter, *http.Request){
		"GET /pokemon":        GetListHandle(service.ListPokemon),
		"POST /pokemon":       GetCreateHandle(service.CreatePokemon),
		"DELETE /pokemon":     GetDeleteAllHandle(service.DeleteAllPokemon),
		"GET /pokemon/count":  GetCountHandle(service.CountPokemon),
		"GET /pokemon/{name}": GetByNameHandle(service.GetPokemonByName),
	}

	return h
}

func (h Handler) GetRoutes() map[string]func(http.ResponseWriter, *http.Request) {
	return h.routes
}
