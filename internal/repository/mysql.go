package repository

import (
	"context"
	"time"

	"relink/internal/config"
	"relink/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Link{}, &model.ClickEvent{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateLink inserts a new link. A short code collision surfaces as
// gorm.ErrDuplicatedKey via the unique index on short_code.
func (r *MySQLRepository) CreateLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetLinkByCode retrieves a link by short code. Validity is not filtered
// here; the resolver evaluates it against the returned snapshot.
func (r *MySQLRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkByID retrieves a link by primary key
func (r *MySQLRepository) GetLinkByID(ctx context.Context, id int64) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).First(&link, id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateLinkFields applies a partial update and returns the fresh row
func (r *MySQLRepository) UpdateLinkFields(ctx context.Context, id int64, fields map[string]interface{}) (*model.Link, error) {
	if err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetLinkByID(ctx, id)
}

// IncrementVisits atomically increments the visit counter in the store
// and returns the new count. The increment is a single UPDATE expression,
// never an application-side read-modify-write.
func (r *MySQLRepository) IncrementVisits(ctx context.Context, shortCode string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("short_code = ?", shortCode).
		UpdateColumn("visits", gorm.Expr("visits + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var visits int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("short_code = ?", shortCode).
		Pluck("visits", &visits).Error
	return visits, err
}

// RecentLinks retrieves the newest links for an owner
func (r *MySQLRepository) RecentLinks(ctx context.Context, ownerID int64, limit int) ([]model.Link, error) {
	var links []model.Link
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&links).Error
	return links, err
}

// SaveClickEvent saves a click event to MySQL
func (r *MySQLRepository) SaveClickEvent(ctx context.Context, event *model.ClickEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetClickEvents retrieves click events for a short code
func (r *MySQLRepository) GetClickEvents(ctx context.Context, shortCode string, limit int) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		Order("clicked_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error
	return events, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
