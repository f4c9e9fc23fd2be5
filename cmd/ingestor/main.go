package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/cache"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/config"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/database"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/logger"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/repository"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/service"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Setup(config.LogLevel(), config.LogFormat())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if config.ApplySchema() {
		if err := database.ApplySchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("schema apply failed")
		}
		log.Info().Msg("schema applied")
	}

	rdb := cache.NewRedisClient(config.RedisAddr(), config.RedisDB())
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable; datapoint cache disabled until it returns")
	}

	prefix := config.TopicPrefix()
	svcs := service.New(db, rdb, prefix, config.DataPointCacheTTL())

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		msgCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		err := svcs.Readings.FromMQTT(msgCtx, msg.Topic(), msg.Payload())
		switch {
		case err == nil:
		case errors.Is(err, service.ErrBadMessage):
			log.Warn().Err(err).Str("topic", msg.Topic()).Msg("message rejected")
		case errors.Is(err, repository.ErrConstraintViolation):
			log.Warn().Err(err).Str("topic", msg.Topic()).Msg("reading not stored")
		default:
			log.Error().Err(err).Str("topic", msg.Topic()).Msg("ingest failed")
		}
	}

	qos := config.MQTTQoS()
	filters := map[string]byte{
		prefix + "/readings/+/+":       qos,
		service.DataPointTopic(prefix): qos,
	}

	opts := mqtt.NewClientOptions().
		AddBroker(config.MQTTBroker()).
		SetClientID(config.MQTTClientID()).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(c mqtt.Client) {
			// Subscriptions are lost with the session; renew them on every connect.
			if token := c.SubscribeMultiple(filters, handler); token.Wait() && token.Error() != nil {
				log.Error().Err(token.Error()).Msg("subscribe failed")
				return
			}
			log.Info().Str("prefix", prefix).Msg("subscribed")
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn().Err(err).Msg("mqtt connection lost")
		})
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	log.Info().Msg("ingestor running; Ctrl+C to stop")
	<-ctx.Done()
	log.Info().Msg("ingestor stopping")
}
