package session

import (
	"context"

	"tabletalk-backend/entities"

	"gorm.io/gorm"
)

type (
	SessionRepository interface {
		GetTableByQRCode(ctx context.Context, qrCode string) (*entities.Table, error)
		GetTables(ctx context.Context) ([]*entities.Table, error)
		CreateSession(ctx context.Context, session *entities.Session) error
		GetSessionByID(ctx context.Context, id uint) (*entities.Session, error)
		GetSessionIDsByTable(ctx context.Context, tableID uint) ([]uint, error)
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) GetTableByQRCode(ctx context.Context, qrCode string) (*entities.Table, error) {
	var table entities.Table
	if err := r.db.WithContext(ctx).Where("qr_code = ?", qrCode).First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *sessionRepository) GetTables(ctx context.Context) ([]*entities.Table, error) {
	var tables []*entities.Table
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entities.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id uint) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).Preload("Table").Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetSessionIDsByTable(ctx context.Context, tableID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entities.Session{}).
		Where("table_id = ?", tableID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
