package pokeweb

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/pokedex/internal/pokesvc"
	"github.com/IsaacDSC/pokedex/pkg/ctxlogger"
)

type CountPokemonFunc func(ctx context.Context) (int64, error)

func GetCountHandle(countPokemon CountPokemonFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := countPokemon(r.Context())
		if err != nil {
			ctxlogger.GetLogger(r.Context()).Error("failed to count pokemon", "error", err)
			http.Error(w, "Failed to count pokemon", http.StatusInternalServerError)
			return
		}

		if err := json.NewEncoder(w).Encode(dataEnvelope{Data: pokesvc.CountPayload{Count: count}}); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}
