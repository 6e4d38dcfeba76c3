package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Rutas candidatas del archivo de datos cuando DATA_FILE no está definido
// (se ejecuta desde la raíz del repo o desde un subdirectorio como build/).
var defaultDataPaths = []string{"data/employees.csv", "../data/employees.csv"}

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Data   DataConfig
	HTTP   HTTPConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DataConfig archivo plano donde se persiste el roster.
type DataConfig struct {
	File string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReportConfig parámetros de reportes.
type ReportConfig struct {
	BirthdayWindowDays int
	Title              string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, DATA_FILE, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia de Viper ya poblada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "nomina"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			File: getString(v, "DATA_FILE", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Report: ReportConfig{
			BirthdayWindowDays: getInt(v, "BIRTHDAY_WINDOW_DAYS", 7),
			Title:              getString(v, "REPORT_TITLE", "Nómina mensual"),
		},
	}
	if cfg.Data.File == "" {
		cfg.Data.File = ResolveDataFile(defaultDataPaths)
	}
	if cfg.Report.BirthdayWindowDays < 0 {
		return nil, fmt.Errorf("config: BIRTHDAY_WINDOW_DAYS no puede ser negativo (%d)", cfg.Report.BirthdayWindowDays)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT fuera de rango (%d)", cfg.HTTP.Port)
	}
	return cfg, nil
}

// ResolveDataFile devuelve la primera ruta existente; si ninguna existe, la primera
// (el archivo se creará al guardar).
func ResolveDataFile(candidates []string) string {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
