package store

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"factorygate.in/factorygate/core"
	"factorygate.in/factorygate/model"
)

const (
	defaultRadiusM       = 80
	defaultTimezone      = "Asia/Kolkata"
	defaultSupervisorPIN = "4321"
)

// MySQLStore backs the attendance log with MySQL through GORM. All reads are
// fresh queries; nothing is cached in process.
type MySQLStore struct {
	db *gorm.DB
}

// Open creates the connection pool. dsn must include parseTime=true.
func Open(dsn string, maxConnection int) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB exposes the underlying handle for operator tooling (seed, import).
func (s *MySQLStore) DB() *gorm.DB {
	return s.db
}

// AutoMigrate creates the row tables. Only operator tools call this; the
// server assumes the schema exists.
func (s *MySQLStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.SettingRow{},
		&model.Location{},
		&model.Worker{},
		&model.Employee{},
		&model.PunchEvent{},
		&model.UnauthorizedAttempt{},
	)
}

func (s *MySQLStore) GetSettings(ctx context.Context) (core.Settings, error) {
	var rows []model.SettingRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return core.Settings{}, fmt.Errorf("load settings rows: %w", err)
	}

	kv := make(map[string]string, len(rows))
	for _, row := range rows {
		kv[row.Key] = row.Value
	}

	return core.Settings{
		FactoryLat:      parseCoordinate(kv["FACTORY_LAT"]),
		FactoryLng:      parseCoordinate(kv["FACTORY_LNG"]),
		GeofenceRadiusM: parseRadius(kv["GEOFENCE_RADIUS_M"]),
		Timezone:        orDefault(kv["TIMEZONE"], defaultTimezone),
		SupervisorPIN:   orDefault(kv["SUPERVISOR_PIN"], defaultSupervisorPIN),
	}, nil
}

func (s *MySQLStore) GetLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := s.db.WithContext(ctx).Order("id").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	return locations, nil
}

func (s *MySQLStore) GetActiveWorkers(ctx context.Context) ([]model.Worker, error) {
	var workers []model.Worker
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&workers).Error; err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}
	return workers, nil
}

func (s *MySQLStore) GetActiveEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return employees, nil
}

func (s *MySQLStore) AppendEvent(ctx context.Context, event *model.PunchEvent) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("append punch event: %w", err)
	}
	return nil
}

func (s *MySQLStore) AppendUnauthorized(ctx context.Context, attempt *model.UnauthorizedAttempt) error {
	if err := s.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("append unauthorized attempt: %w", err)
	}
	return nil
}

func (s *MySQLStore) GetAllEvents(ctx context.Context) ([]model.PunchEvent, error) {
	var events []model.PunchEvent
	if err := s.db.WithContext(ctx).Order("created_at").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return events, nil
}

func (s *MySQLStore) GetUnauthorized(ctx context.Context) ([]model.UnauthorizedAttempt, error) {
	var attempts []model.UnauthorizedAttempt
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("load unauthorized attempts: %w", err)
	}
	return attempts, nil
}

// parseCoordinate returns NaN for absent or garbage values; the resolver
// treats NaN fallback coordinates as "no fallback configured".
func parseCoordinate(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func parseRadius(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || !(f > 0) {
		return defaultRadiusM
	}
	return f
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
