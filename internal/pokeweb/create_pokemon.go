package pokeweb

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/pokedex/internal/pokesvc"
	"github.com/IsaacDSC/pokedex/pkg/ctxlogger"
)

type CreatePokemonFunc func(ctx context.Context, input pokesvc.CreatePokemonDto) (pokesvc.Pokemon, error)

func GetCreateHandle(createPokemon CreatePokemonFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var body pokesvc.CreatePokemonDto

		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		pokemon, err := createPokemon(r.Context(), body)
		if err != nil {
			ctxlogger.GetLogger(r.Context()).Error("failed to create pokemon", "error", err)
			http.Error(w, "Failed to create pokemon", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(dataEnvelope{Data: pokemon}); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}
