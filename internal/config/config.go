package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	TotalRounds   int `yaml:"total_rounds"`   // 每场比赛回合数
	MaxPlayers    int `yaml:"max_players"`    // 房间最大人数
	GuesserBudget int `yaml:"guesser_budget"` // 猜词者每回合基础分
	DrawerBudget  int `yaml:"drawer_budget"`  // 画家每回合基础分
	RoomTimeout   int `yaml:"room_timeout"`   // 空房间回收超时（分钟）
}

// RoomTimeoutDuration 返回空房间回收超时时长
func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1780
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.TotalRounds == 0 {
		cfg.Game.TotalRounds = 4
	}
	if cfg.Game.MaxPlayers == 0 {
		cfg.Game.MaxPlayers = 10
	}
	if cfg.Game.GuesserBudget == 0 {
		cfg.Game.GuesserBudget = 300
	}
	if cfg.Game.DrawerBudget == 0 {
		cfg.Game.DrawerBudget = 90
	}
	if cfg.Game.RoomTimeout == 0 {
		cfg.Game.RoomTimeout = 10
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 1780,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Game: GameConfig{
			TotalRounds:   4,
			MaxPlayers:    10,
			GuesserBudget: 300,
			DrawerBudget:  90,
			RoomTimeout:   10,
		},
	}
}
