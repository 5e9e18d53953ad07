package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/pkg/metrics"
)

// document is the single-table layout used by the SQL flavour of the
// gateway: one JSON blob per record, exactly mirroring the document shape
// the mongo driver stores.
type document struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:64"`
	Data       []byte `gorm:"not null"`
	UpdatedAt  time.Time
}

func (document) TableName() string { return "documents" }

type sqlStore struct {
	broadcaster

	db *gorm.DB
}

func connectSQL(driver string) (*sqlStore, error) {
	dialector, err := buildDialector(driver, config.DatabaseDSN())
	if err != nil {
		return nil, wrap("connect", "", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // pkg/logger owns output
	})
	if err != nil {
		return nil, wrap("connect", "", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, wrap("connect", "", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, wrap("migrate", "", err)
	}

	return &sqlStore{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// DB exposes the underlying gorm handle so boot code can share the
// connection with other SQL-backed concerns (the failed-jobs table).
func (s *sqlStore) DB() *gorm.DB { return s.db }

func (s *sqlStore) List(ctx context.Context, collection string, out interface{}) error {
	defer metrics.ObserveGateway("list", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	var docs []document
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id").
		Find(&docs).Error
	if err != nil {
		return wrap("list", collection, err)
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, d := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(d.Data)
	}
	buf.WriteByte(']')

	return wrap("list", collection, json.Unmarshal(buf.Bytes(), out))
}

func (s *sqlStore) Get(ctx context.Context, collection, id string, out interface{}) error {
	defer metrics.ObserveGateway("get", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	var doc document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return wrap("get", collection, err)
	}
	return wrap("get", collection, json.Unmarshal(doc.Data, out))
}

func (s *sqlStore) Create(ctx context.Context, collection, id string, record interface{}) error {
	defer metrics.ObserveGateway("create", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	data, err := json.Marshal(record)
	if err != nil {
		return wrap("create", collection, err)
	}

	doc := document{Collection: collection, ID: id, Data: data, UpdatedAt: time.Now()}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return wrap("create", collection, err)
	}

	s.notify(collection)
	return nil
}

func (s *sqlStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	defer metrics.ObserveGateway("update", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	var doc document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return wrap("update", collection, err)
	}

	var merged map[string]interface{}
	if err := json.Unmarshal(doc.Data, &merged); err != nil {
		return wrap("update", collection, err)
	}
	for k, v := range fields {
		merged[k] = v
	}
	data, err := json.Marshal(merged)
	if err != nil {
		return wrap("update", collection, err)
	}

	err = s.db.WithContext(ctx).
		Model(&document{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]interface{}{"data": data, "updated_at": time.Now()}).Error
	if err != nil {
		return wrap("update", collection, err)
	}

	s.notify(collection)
	return nil
}

func (s *sqlStore) Delete(ctx context.Context, collection, id string) error {
	defer metrics.ObserveGateway("delete", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&document{}).Error
	if err != nil {
		return wrap("delete", collection, err)
	}

	s.notify(collection)
	return nil
}

func (s *sqlStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
