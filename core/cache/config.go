package cache

// Config holds configuration for the Redis cache.
type Config struct {
	// Addr is the Redis host:port address.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is the default time-to-live for cached entries in seconds.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"3600"`
	// DiscountTTLSeconds is the time-to-live for discount overlay entries.
	// Zero means the entry persists until it is explicitly superseded.
	DiscountTTLSeconds int `mapstructure:"discount_ttl_seconds" default:"0"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
