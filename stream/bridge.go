package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/pmnm-iot/ml-service/classify"
	"github.com/pmnm-iot/ml-service/config"
	"github.com/pmnm-iot/ml-service/models"
)

// Bridge consumes sensor readings from a Kafka topic, classifies them and
// publishes predictions to another topic. It carries no state between
// messages; malformed or invalid readings are logged and skipped so a
// poison message cannot stall the consumer group.
type Bridge struct {
	reader *kafka.Reader
	writer *kafka.Writer
	log    *slog.Logger
}

// New wires a group reader and a writer from the service configuration.
func New(cfg config.Config, log *slog.Logger) *Bridge {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.KafkaBrokers,
		GroupID:     cfg.KafkaGroupID,
		GroupTopics: []string{cfg.KafkaReadingsTopic},
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers...),
		Topic:    cfg.KafkaPredictionsTopic,
		Balancer: &kafka.Hash{},
	}
	return &Bridge{
		reader: reader,
		writer: writer,
		log:    log.With(slog.String("component", "stream")),
	}
}

// Run consumes until the context is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	defer b.close()

	b.log.Info("bridge started")
	for {
		msg, err := b.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				b.log.Info("bridge stopped")
				return nil
			}
			b.log.Error("read failed", "err", err)
			return err
		}

		out, err := toMessage(msg)
		if err != nil {
			b.log.Warn("reading skipped", "err", err, "offset", msg.Offset)
			continue
		}

		if err := b.writer.WriteMessages(ctx, out); err != nil {
			b.log.Error("publish failed", "err", err, "offset", msg.Offset)
			return err
		}
	}
}

// toMessage maps a consumed reading to the prediction message to publish.
// The consumed key is carried over so predictions land on the same
// partition as the readings they answer.
func toMessage(in kafka.Message) (kafka.Message, error) {
	payload, err := process(in.Value)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Key: in.Key, Value: payload, Time: time.Now()}, nil
}

// process decodes and validates a reading, classifies it and encodes the
// prediction payload. Pure over its input; shared with tests.
func process(value []byte) ([]byte, error) {
	var reading models.SensorReading
	if err := json.Unmarshal(value, &reading); err != nil {
		return nil, err
	}
	if err := reading.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	label, confidence := classify.Classify(*reading.Temperature, *reading.CO2Level)
	elapsed := time.Since(start)

	return json.Marshal(models.Prediction{
		Label:            label,
		Confidence:       confidence,
		Temperature:      *reading.Temperature,
		CO2Level:         *reading.CO2Level,
		ProcessingTimeMS: models.RoundMillis(elapsed),
	})
}

func (b *Bridge) close() {
	if err := b.reader.Close(); err != nil {
		b.log.Error("reader close failed", "err", err)
	}
	if err := b.writer.Close(); err != nil {
		b.log.Error("writer close failed", "err", err)
	}
}
