package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"relink/internal/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

func linkColumns() []string {
	return []string{"id", "short_code", "original_url", "owner_id", "active", "expires_at", "max_clicks", "visits", "created_at"}
}

func TestMySQLRepository_CreateLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("create link successfully", func(t *testing.T) {
		link := &model.Link{
			ShortCode:   "abc12345",
			OriginalURL: "https://example.com",
			OwnerID:     7,
			Active:      true,
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateLink(ctx, link)
		assert.NoError(t, err)
	})

	t.Run("duplicate short code surfaces as ErrDuplicatedKey", func(t *testing.T) {
		link := &model.Link{
			ShortCode:   "abc12345",
			OriginalURL: "https://example.com",
			OwnerID:     7,
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'abc12345' for key 'idx_links_short_code'"})
		mock.ExpectRollback()

		err := repo.CreateLink(ctx, link)
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
	})
}

func TestMySQLRepository_GetLinkByCode(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("get existing link", func(t *testing.T) {
		rows := sqlmock.NewRows(linkColumns()).
			AddRow(1, "abc12345", "https://example.com", 7, true, nil, nil, 3, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE short_code = ?")).
			WillReturnRows(rows)

		link, err := repo.GetLinkByCode(ctx, "abc12345")
		require.NoError(t, err)
		assert.Equal(t, "abc12345", link.ShortCode)
		assert.Equal(t, "https://example.com", link.OriginalURL)
		assert.Equal(t, int64(3), link.Visits)
	})

	t.Run("unknown code", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE short_code = ?")).
			WillReturnRows(sqlmock.NewRows(linkColumns()))

		_, err := repo.GetLinkByCode(ctx, "missing")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestMySQLRepository_IncrementVisits(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("increments and returns the new count", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `visits`=visits + ?")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT `visits` FROM `links` WHERE short_code = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"visits"}).AddRow(4))

		visits, err := repo.IncrementVisits(ctx, "abc12345")
		require.NoError(t, err)
		assert.Equal(t, int64(4), visits)
	})

	t.Run("unknown code", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `visits`=visits + ?")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		_, err := repo.IncrementVisits(ctx, "missing")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestMySQLRepository_UpdateLinkFields(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows := sqlmock.NewRows(linkColumns()).
		AddRow(1, "abc12345", "https://example.com", 7, false, nil, nil, 3, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE `links`.`id` = ?")).
		WillReturnRows(rows)

	link, err := repo.UpdateLinkFields(ctx, 1, map[string]interface{}{"active": false})
	require.NoError(t, err)
	assert.False(t, link.Active)
}

func TestMySQLRepository_RecentLinks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows(linkColumns()).
		AddRow(2, "newer123", "https://example.com/b", 7, true, nil, nil, 0, time.Now()).
		AddRow(1, "older123", "https://example.com/a", 7, true, nil, nil, 5, time.Now().Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE owner_id = ?")).
		WillReturnRows(rows)

	links, err := repo.RecentLinks(ctx, 7, 5)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "newer123", links[0].ShortCode)
}

func TestMySQLRepository_SaveClickEvent(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `click_events`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveClickEvent(ctx, &model.ClickEvent{
		EventID:   "5f3c1a2e-0000-0000-0000-000000000000",
		ShortCode: "abc12345",
		ClientIP:  "1.2.3.4",
	})
	assert.NoError(t, err)
}
