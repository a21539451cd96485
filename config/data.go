package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data represents the data layer configuration.
type Data struct {
	Database *DBNode
	Redis    *Redis
}

// DBNode represents a database node.
type DBNode struct {
	Driver          string
	Source          string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime time.Duration
}

// Redis represents the optional cache configuration. An empty Addr
// disables caching entirely.
type Redis struct {
	Addr         string
	Username     string
	Password     string
	Db           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		Database: &DBNode{
			Driver:          v.GetString("data.database.driver"),
			Source:          v.GetString("data.database.source"),
			MaxIdleConn:     v.GetInt("data.database.max_idle_conn"),
			MaxOpenConn:     v.GetInt("data.database.max_open_conn"),
			ConnMaxLifetime: v.GetDuration("data.database.conn_max_lifetime"),
		},
		Redis: &Redis{
			Addr:         v.GetString("data.redis.addr"),
			Username:     v.GetString("data.redis.username"),
			Password:     v.GetString("data.redis.password"),
			Db:           v.GetInt("data.redis.db"),
			DialTimeout:  v.GetDuration("data.redis.dial_timeout"),
			ReadTimeout:  v.GetDuration("data.redis.read_timeout"),
			WriteTimeout: v.GetDuration("data.redis.write_timeout"),
		},
	}
}
