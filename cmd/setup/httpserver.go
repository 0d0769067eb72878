package setup

import (
	"net/http"

	"github.com/IsaacDSC/pokedex/internal/cfg"
	"github.com/IsaacDSC/pokedex/internal/pokestore"
	"github.com/IsaacDSC/pokedex/internal/pokesvc"
	"github.com/IsaacDSC/pokedex/internal/pokeweb"
	"github.com/IsaacDSC/pokedex/pkg/listcache"
	"github.com/IsaacDSC/pokedex/pkg/logs"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// StartServer wires the storage, cache and service layers together and blocks
// serving HTTP. The cache is constructed once here and handed to the service;
// nothing else holds a reference to it.
func StartServer(client *mongo.Client) {
	conf := cfg.Get()

	cache := listcache.New(
		conf.ListCache.TTL,
		listcache.WithMaxEntries[pokesvc.ListPayload](conf.ListCache.MaxEntries),
	)
	store := pokestore.NewMongoStore(client)
	svc := pokesvc.NewService(store, cache)
	handlers := pokeweb.NewHandler(svc)

	mux := http.NewServeMux()
	for p, h := range handlers.GetRoutes() {
		mux.HandleFunc(p, h)
	}

	handler := RequestLogger(mux)

	logs.Info("starting HTTP server", "addr", conf.HTTP.Addr, "list_cache_ttl", conf.ListCache.TTL)
	if err := http.ListenAndServe(conf.HTTP.Addr, handler); err != nil {
		panic(err)
	}
}
