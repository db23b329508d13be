package main

import (
	"context"
	"eventbook-client/config"
	c "eventbook-client/context"
	"eventbook-client/devserver"
	"eventbook-client/logger"
	"flag"
	"fmt"
	l "log"

	"github.com/codegangsta/negroni"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const defaultCorrelationID = "00000000.00000000"

var ctx context.Context

func init() {
	ctx = c.SetContextWithValue(context.Background(), c.ContextKeyCorrelationID, defaultCorrelationID)
}

func main() {
	cfgPath := flag.String("CONFIG_PATH", "./config.yaml", "Path to config file")
	flag.Parse()

	viper.SetConfigFile(*cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		l.Fatalln("error reading config")
	}
	logger.SetLevel(viper.GetString(config.LogLevel))

	secret := viper.GetString(config.Secret)
	if secret == "" {
		// Development only: sessions do not survive a restart.
		secret = uuid.NewString()
		logger.Warnf(ctx, "no signing secret configured, generated an ephemeral one")
	}

	store := devserver.NewStore()
	if email := viper.GetString(config.AdminEmail); email != "" {
		_, err := store.SeedAdmin(
			viper.GetString(config.AdminName),
			email,
			viper.GetString(config.AdminPassword),
		)
		if err != nil {
			logger.Fatalf(ctx, "seeding admin: %v", err)
		}
		logger.Infof(ctx, "seeded admin account %s", email)
	}

	muxRouter := devserver.Router(store, secret, viper.GetDuration(config.SessionTTL))

	n := negroni.New()
	n.UseHandler(muxRouter)
	n.Run(fmt.Sprintf(":%s", viper.GetString(config.Port)))
}
