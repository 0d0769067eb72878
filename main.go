package main

import (
	"context"

	"github.com/IsaacDSC/pokedex/cmd/setup"
	"github.com/IsaacDSC/pokedex/internal/cfg"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func main() {
	conf := cfg.Get()

	client, err := mongo.Connect(options.Client().ApplyURI(conf.ConfigDatabase.DbConn))
	if err != nil {
		panic(err)
	}

	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	setup.StartServer(client)
}
