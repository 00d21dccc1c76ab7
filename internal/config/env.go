package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	EnvStorePath = "TURRET_STORE_PATH"
	EnvSeed      = "TURRET_SEED"
	EnvMute      = "TURRET_MUTE"
	EnvPprof     = "TURRET_PPROF"

	DefaultStorePath = "highscore.json"
)

// Settings — параметры запуска, которые можно переопределить через окружение.
type Settings struct {
	StorePath string
	Seed      int64 // 0 — сид от текущего времени
	Mute      bool
	PprofAddr string // адрес net/http/pprof, пусто — выключен
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load читает настройки из окружения. Некорректные значения заменяются
// значениями по умолчанию.
func Load() Settings {
	s := Settings{
		StorePath: GetEnv(EnvStorePath, DefaultStorePath),
		PprofAddr: strings.TrimSpace(GetEnv(EnvPprof, "")),
	}

	if raw := GetEnv(EnvSeed, ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("config: ignoring %s=%q: %v", EnvSeed, raw, err)
		} else {
			s.Seed = seed
		}
	}

	switch strings.ToLower(strings.TrimSpace(GetEnv(EnvMute, ""))) {
	case "1", "true", "yes", "on":
		s.Mute = true
	}

	if strings.TrimSpace(s.StorePath) == "" {
		s.StorePath = DefaultStorePath
	}
	return s
}
