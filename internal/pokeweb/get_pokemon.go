package pokeweb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IsaacDSC/pokedex/internal/pokesvc"
	"github.com/IsaacDSC/pokedex/pkg/ctxlogger"
)

type GetPokemonByNameFunc func(ctx context.Context, name string) (pokesvc.Pokemon, error)

func GetByNameHandle(getPokemonByName GetPokemonByNameFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")

		pokemon, err := getPokemonByName(r.Context(), name)
		if err != nil {
			if errors.Is(err, pokesvc.ErrNotFound) {
				http.Error(w, "Pokemon not found", http.StatusNotFound)
				return
			}
			ctxlogger.GetLogger(r.Context()).Error("failed to get pokemon", "name", name, "error", err)
			http.Error(w, "Failed to get pokemon", http.StatusInternalServerError)
			return
		}

		if err := json.NewEncoder(w).Encode(dataEnvelope{Data: pokemon}); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}
