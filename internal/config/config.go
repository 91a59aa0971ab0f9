package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultGNSSPort       = "/dev/ttyACM0"
	defaultGNSSBaudRate   = 9600
	defaultGNSSTimeout    = time.Second
	defaultGNSSProtocol   = "UBX"
	defaultGNSSEnableRTCM = true
	defaultGNSSEnableNMEA = true
	defaultGNSSUBXRate    = 1
	defaultGNSSNavRate    = 1

	defaultWebHost           = "0.0.0.0"
	defaultWebPort           = 5000
	defaultWebDebug          = false
	defaultWebSecretKey      = "dev-secret-key-change-in-production"
	defaultWebCORSOrigins    = "*"
	defaultWebSessionTimeout = 3600 * time.Second
	defaultWebRateLimit      = "100 per minute"

	defaultMapTileProvider    = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	defaultMapTileAttribution = `© <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	defaultMapSatelliteLayer  = true
	defaultMapSatelliteURL    = "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}"

	defaultLogLevel       = "INFO"
	defaultLogFileEnabled = true
	defaultLogFilePath    = "data/logs/gnss_viewer.log"
	defaultLogMaxFileSize = 10485760
	defaultLogBackupCount = 5

	defaultDataEnableLogging   = true
	defaultDataLogDirectory    = "data/logs"
	defaultDataExportDirectory = "data/exports"
	defaultDataMaxHistory      = 10000
	defaultDataExportFormats   = "csv,json,kml"
	defaultDataCacheEnabled    = true
	defaultDataCacheTTL        = 300 * time.Second
)

// Fixed values not read from the environment.
const (
	mapDefaultZoom = 2
	mapMaxZoom     = 18

	logTimestampFormat = "2006-01-02 15:04:05"
)

type GNSSConfig struct {
	Port       string
	BaudRate   int
	Timeout    time.Duration
	Protocol   string
	EnableRTCM bool
	EnableNMEA bool
	UBXRate    int
	NavRate    int
}

type WebConfig struct {
	Host           string
	Port           int
	Debug          bool
	SecretKey      string
	CORSOrigins    []string
	SessionTimeout time.Duration
	RateLimit      string
}

type MapConfig struct {
	TileProvider    string
	TileAttribution string
	SatelliteLayer  bool
	SatelliteURL    string
	DefaultCenter   [2]float64
	DefaultZoom     int
	MaxZoom         int
}

type LoggingConfig struct {
	Level           string
	FileEnabled     bool
	FilePath        string
	MaxFileSize     int64
	BackupCount     int
	TimestampFormat string
}

type DataConfig struct {
	EnableLogging    bool
	LogDirectory     string
	ExportDirectory  string
	MaxHistoryPoints int
	ExportFormats    []string
	CacheEnabled     bool
	CacheTTL         time.Duration
}

// Settings is the complete application configuration. It is assembled once by
// Load and handed to consumers unchanged for the lifetime of the process.
type Settings struct {
	GNSS       GNSSConfig
	Web        WebConfig
	Map        MapConfig
	Logging    LoggingConfig
	Data       DataConfig
	Satellites SatelliteConfig
}

func Load() (*Settings, error) {
	gnss, err := loadGNSS()
	if err != nil {
		return nil, fmt.Errorf("loading gnss settings: %w", err)
	}

	web, err := loadWeb()
	if err != nil {
		return nil, fmt.Errorf("loading web settings: %w", err)
	}

	logging, err := loadLogging()
	if err != nil {
		return nil, fmt.Errorf("loading logging settings: %w", err)
	}

	data, err := loadData()
	if err != nil {
		return nil, fmt.Errorf("loading data settings: %w", err)
	}

	return &Settings{
		GNSS:       gnss,
		Web:        web,
		Map:        loadMap(),
		Logging:    logging,
		Data:       data,
		Satellites: loadSatellites(),
	}, nil
}

func loadGNSS() (GNSSConfig, error) {
	cfg := GNSSConfig{
		Port:       getEnv("GNSS_PORT", defaultGNSSPort),
		Protocol:   getEnv("GNSS_PROTOCOL", defaultGNSSProtocol),
		EnableRTCM: getEnvBool("GNSS_ENABLE_RTCM", defaultGNSSEnableRTCM),
		EnableNMEA: getEnvBool("GNSS_ENABLE_NMEA", defaultGNSSEnableNMEA),
	}

	var err error
	if cfg.BaudRate, err = getEnvInt("GNSS_BAUDRATE", defaultGNSSBaudRate); err != nil {
		return GNSSConfig{}, err
	}
	if cfg.Timeout, err = getEnvFloatSeconds("GNSS_TIMEOUT", defaultGNSSTimeout); err != nil {
		return GNSSConfig{}, err
	}
	if cfg.UBXRate, err = getEnvInt("GNSS_UBX_RATE", defaultGNSSUBXRate); err != nil {
		return GNSSConfig{}, err
	}
	if cfg.NavRate, err = getEnvInt("GNSS_NAV_RATE", defaultGNSSNavRate); err != nil {
		return GNSSConfig{}, err
	}
	return cfg, nil
}

func loadWeb() (WebConfig, error) {
	cfg := WebConfig{
		Host:        getEnv("WEB_HOST", defaultWebHost),
		Debug:       getEnvBool("WEB_DEBUG", defaultWebDebug),
		SecretKey:   getEnv("WEB_SECRET_KEY", defaultWebSecretKey),
		CORSOrigins: getEnvList("WEB_CORS_ORIGINS", defaultWebCORSOrigins),
		RateLimit:   getEnv("WEB_RATE_LIMIT", defaultWebRateLimit),
	}

	var err error
	if cfg.Port, err = getEnvInt("WEB_PORT", defaultWebPort); err != nil {
		return WebConfig{}, err
	}
	if cfg.SessionTimeout, err = getEnvSeconds("WEB_SESSION_TIMEOUT", defaultWebSessionTimeout); err != nil {
		return WebConfig{}, err
	}
	return cfg, nil
}

func loadMap() MapConfig {
	return MapConfig{
		TileProvider:    getEnv("MAP_TILE_PROVIDER", defaultMapTileProvider),
		TileAttribution: getEnv("MAP_TILE_ATTRIBUTION", defaultMapTileAttribution),
		SatelliteLayer:  getEnvBool("MAP_SATELLITE_LAYER", defaultMapSatelliteLayer),
		SatelliteURL:    getEnv("MAP_SATELLITE_URL", defaultMapSatelliteURL),
		DefaultCenter:   [2]float64{0, 0},
		DefaultZoom:     mapDefaultZoom,
		MaxZoom:         mapMaxZoom,
	}
}

func loadLogging() (LoggingConfig, error) {
	cfg := LoggingConfig{
		Level:           strings.ToUpper(getEnv("LOG_LEVEL", defaultLogLevel)),
		FileEnabled:     getEnvBool("LOG_FILE_ENABLED", defaultLogFileEnabled),
		FilePath:        getEnv("LOG_FILE_PATH", defaultLogFilePath),
		TimestampFormat: logTimestampFormat,
	}

	var err error
	if cfg.MaxFileSize, err = getEnvInt64("LOG_MAX_FILE_SIZE", defaultLogMaxFileSize); err != nil {
		return LoggingConfig{}, err
	}
	if cfg.BackupCount, err = getEnvInt("LOG_BACKUP_COUNT", defaultLogBackupCount); err != nil {
		return LoggingConfig{}, err
	}
	return cfg, nil
}

func loadData() (DataConfig, error) {
	cfg := DataConfig{
		EnableLogging:   getEnvBool("DATA_ENABLE_LOGGING", defaultDataEnableLogging),
		LogDirectory:    getEnv("DATA_LOG_DIRECTORY", defaultDataLogDirectory),
		ExportDirectory: getEnv("DATA_EXPORT_DIRECTORY", defaultDataExportDirectory),
		ExportFormats:   getEnvList("DATA_EXPORT_FORMATS", defaultDataExportFormats),
		CacheEnabled:    getEnvBool("DATA_CACHE_ENABLED", defaultDataCacheEnabled),
	}

	var err error
	if cfg.MaxHistoryPoints, err = getEnvInt("DATA_MAX_HISTORY", defaultDataMaxHistory); err != nil {
		return DataConfig{}, err
	}
	if cfg.CacheTTL, err = getEnvSeconds("DATA_CACHE_TTL", defaultDataCacheTTL); err != nil {
		return DataConfig{}, err
	}
	return cfg, nil
}

// Addr joins host and port for the web server listener.
func (c WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (d DataConfig) TrackDBPath() string {
	return d.LogDirectory + "/track.db"
}

func (d DataConfig) ExportFormatSupported(format string) bool {
	for _, f := range d.ExportFormats {
		if f == format {
			return true
		}
	}
	return false
}

// EnsureDirectories creates the directories the application writes into.
func (s *Settings) EnsureDirectories() error {
	dirs := []string{s.Data.LogDirectory, s.Data.ExportDirectory}
	if s.Logging.FileEnabled {
		dirs = append(dirs, filepath.Dir(s.Logging.FilePath))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}
