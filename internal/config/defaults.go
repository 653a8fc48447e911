package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultDelivery = Delivery{
	OptionsTTL:      20 * time.Minute,
	ProviderTimeout: 5 * time.Second,
}

var defaultProviderRetry = ProviderRetry{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    400 * time.Millisecond,
}

var defaultKafka = Kafka{
	GroupID:       "service-checkout-delivery",
	CheckoutTopic: "checkout.lifecycle",
	EventsTopic:   "checkout.events",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultDelivery returns the default delivery settings.
func DefaultDelivery() Delivery {
	return defaultDelivery
}

// DefaultProviderRetry returns the default provider retry settings.
func DefaultProviderRetry() ProviderRetry {
	return defaultProviderRetry
}
