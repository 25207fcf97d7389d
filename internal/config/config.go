package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		MaxConns           int    `env:"MAX_CONNS" envDefault:"10"`
		MinConns           int    `env:"MIN_CONNS" envDefault:"2"`
		MaxConnIdleTime    int    `env:"MAX_CONN_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	InitialAdmin struct {
		Code       string `env:"CODE" envDefault:"admin"`
		Password   string `env:"PASSWORD,required"`
		FullName   string `env:"FULL_NAME" envDefault:"管理员"`
		Department string `env:"DEPARTMENT" envDefault:"人事部"`
		Email      string `env:"EMAIL,required"`
	} `envPrefix:"INITIAL_ADMIN_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"28800"` // 8 小时
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Redis struct {
		Host                 string `env:"HOST" envDefault:"localhost"`
		Port                 int    `env:"PORT" envDefault:"6379"`
		Password             string `env:"PASSWORD" envDefault:""`
		OperationTimeout     int    `env:"OPERATION_TIMEOUT" envDefault:"10"`
		ShiftCacheExpiration int    `env:"SHIFT_CACHE_EXPIRATION" envDefault:"3600"`
	} `envPrefix:"REDIS_"`
	NewEmployee struct {
		DefaultPassword string `env:"DEFAULT_PASSWORD" envDefault:"1"`
	} `envPrefix:"NEW_EMPLOYEE_"`
	Seed struct {
		Employee struct {
			Password string `env:"PASSWORD" envDefault:"1"`
		} `envPrefix:"EMPLOYEE_"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
