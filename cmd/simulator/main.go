package main

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/config"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/domain"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/logger"
	"github.com/ANIKETSHETTY47/hvac-equipment-db/internal/service"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	count := flag.Int("count", 100, "rounds of readings to publish")
	interval := flag.Duration("interval", 500*time.Millisecond, "pause between rounds")
	id := flag.Int64("id", 1, "equipment id every reading is published for")
	flag.Parse()

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Setup(config.LogLevel(), config.LogFormat())

	opts := mqtt.NewClientOptions().
		AddBroker(config.MQTTBroker()).
		SetClientID(config.MQTTClientID() + "-simulator")
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	prefix := config.TopicPrefix()
	publish := func(topic string, v any) {
		payload, err := json.Marshal(v)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("encode failed")
			return
		}
		token := client.Publish(topic, config.MQTTQoS(), false, payload)
		token.Wait()
		if err := token.Error(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("publish failed")
		}
	}

	publish(service.DataPointTopic(prefix), domain.DataPoint{
		Path:     "/Site/AHU1/ZoneTemp",
		Server:   ptr("S1"),
		Location: ptr("Bldg-A"),
		Point:    ptr("ZN-T"),
	})

	for i := 0; i < *count; i++ {
		now := time.Now().UTC().Truncate(time.Second)
		for kind, rd := range readings(now) {
			publish(service.ReadingTopic(prefix, kind, *id), rd)
		}
		time.Sleep(*interval)
	}
	log.Info().Int("rounds", *count).Msg("simulation done")
}

// readings returns one plausible reading per equipment kind.
func readings(ts time.Time) map[domain.ReadingKind]any {
	return map[domain.ReadingKind]any{
		domain.KindAHU: domain.AHUReading{
			TimeStamp:            ts,
			ZoneTemperature:      ptr(70 + rand.Float64()*4),
			SupplyAirTemperature: ptr(54 + rand.Float64()*3),
			ReturnAirTemperature: ptr(72 + rand.Float64()*3),
			StaticPressure:       ptr(1 + rand.Float64()*0.5),
			SmokeDetector:        ptr(false),
		},
		domain.KindFilter: domain.FilterReading{
			TimeStamp:          ts,
			FilterType:         ptr("pleated"),
			DifferencePressure: ptr(0.3 + rand.Float64()*0.4),
		},
		domain.KindFan: domain.FanReading{
			TimeStamp: ts,
			VFDSpeed:  ptr(40 + rand.Float64()*50),
			FanStatus: ptr(true),
			VFDFault:  ptr(rand.Intn(100) == 0),
		},
		domain.KindDamper: domain.DamperReading{
			TimeStamp:               ts,
			DamperOpeningPercentage: ptr(rand.Float64() * 100),
		},
		domain.KindHEC: domain.HECReading{
			TimeStamp:              ts,
			IsHotWaterSupply:       ptr(true),
			WaterTemperature:       ptr(120 + rand.Float64()*40),
			ValveOpeningPercentage: ptr(rand.Float64() * 100),
		},
		domain.KindVAV: domain.VAVReading{
			TimeStamp:       ts,
			ZoneTemperature: ptr(69 + rand.Float64()*5),
			FlowInput:       ptr(200 + rand.Float64()*600),
			DamperPosition:  ptr(rand.Float64() * 100),
		},
		domain.KindSAV: domain.SAVReading{
			TimeStamp:             ts,
			ZoneTemperature:       ptr(69 + rand.Float64()*5),
			ValveOutputPercentage: ptr(rand.Float64() * 100),
		},
		domain.KindThermafuser: domain.ThermafuserReading{
			TimeStamp:       ts,
			RoomOccupied:    ptr(rand.Intn(2) == 0),
			ZoneTemperature: ptr(69 + rand.Float64()*5),
		},
	}
}

func ptr[T any](v T) *T { return &v }
