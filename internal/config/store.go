package config

// Supported role assignment store drivers.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMySQL  = "mysql"
	StoreGorm   = "gorm"
)

// Store configures where explicit role assignments are kept.
type Store struct {
	Driver string // memory, redis, mysql or gorm
	Prefix string // key prefix for redis
	Table  string // table name for the mysql key-value driver
	Redis  Redis
	DB     DB // connection for the mysql and gorm drivers
}

// Redis connection settings.
type Redis struct {
	Host     string
	Port     int
	Password string
	DB       int
}
