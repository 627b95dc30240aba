// Package messaging provides a broker-agnostic publish/consume
// abstraction with NATS, NSQ and Kafka implementations.
package messaging
