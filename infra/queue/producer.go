package queue

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Producer struct {
	writer *kafka.Writer
}

// NewProducer broker kosong menghasilkan nil; PublishMessage pada nil
// producer hanya di-skip.
func NewProducer(broker, topic, username, password string) *Producer {
	if broker == "" {
		log.Println("[KAFKA] KAFKA_BROKER kosong, event project tidak dipublish")
		return nil
	}

	var transport *kafka.Transport
	if username != "" {
		transport = &kafka.Transport{
			SASL: plain.Mechanism{
				Username: username,
				Password: password,
			},
			TLS: &tls.Config{},
		}
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
	}
	if transport != nil {
		w.Transport = transport
	}

	return &Producer{writer: w}
}

// PublishMessage key = project id supaya event satu project masuk partisi yang sama.
// ctx tanpa deadline dibatasi 5 detik.
func (p *Producer) PublishMessage(ctx context.Context, key, value []byte) error {
	if p == nil || p.writer == nil {
		log.Println("[KAFKA] producer belum siap - skip publish")
		return nil
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
