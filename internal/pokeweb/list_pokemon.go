package pokeweb

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/pokedex/internal/pokesvc"
	"github.com/IsaacDSC/pokedex/pkg/ctxlogger"
)

type ListPokemonFunc func(ctx context.Context, limitRaw, offsetRaw string) (pokesvc.ListPayload, error)

// GetListHandle serves the paginated list. Pagination parameters travel as
// raw strings; normalization happens in the service, never here.
func GetListHandle(listPokemon ListPokemonFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		payload, err := listPokemon(r.Context(), query.Get("limit"), query.Get("offset"))
		if err != nil {
			ctxlogger.GetLogger(r.Context()).Error("failed to list pokemon", "error", err)
			http.Error(w, "Failed to list pokemon", http.StatusInternalServerError)
			return
		}

		if err := json.NewEncoder(w).Encode(dataEnvelope{Data: payload}); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}
