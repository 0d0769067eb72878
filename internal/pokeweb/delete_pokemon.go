package pokeweb

import (
	"context"
	"net/http"

	"github.com/IsaacDSC/pokedex/pkg/ctxlogger"
)

type DeleteAllPokemonFunc func(ctx context.Context) error

func GetDeleteAllHandle(deleteAllPokemon DeleteAllPokemonFunc) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deleteAllPokemon(r.Context()); err != nil {
			ctxlogger.GetLogger(r.Context()).Error("failed to delete pokemon", "error", err)
			http.Error(w, "Failed to delete pokemon", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
