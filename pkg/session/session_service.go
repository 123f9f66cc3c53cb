package session

import (
	"context"
	"errors"
	"time"

	"tabletalk-backend/domain"
	"tabletalk-backend/entities"

	"gorm.io/gorm"
)

// SessionWindow is how long a table session stays valid for placing orders.
// Sessions are never closed explicitly, only time-expired.
const SessionWindow = 30 * time.Minute

type (
	SessionService interface {
		CreateSession(ctx context.Context, req domain.CreateSessionRequest) (domain.SessionResponse, error)
		GetSession(ctx context.Context, id uint) (domain.SessionResponse, error)
		GetTables(ctx context.Context) ([]domain.TableResponse, error)
	}

	sessionService struct {
		sessionRepository SessionRepository
	}
)

func NewSessionService(sessionRepository SessionRepository) SessionService {
	return &sessionService{sessionRepository: sessionRepository}
}

func (s *sessionService) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (domain.SessionResponse, error) {
	table, err := s.sessionRepository.GetTableByQRCode(ctx, req.QRCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SessionResponse{}, domain.ErrTableNotFound
		}
		return domain.SessionResponse{}, err
	}

	now := time.Now()
	session := &entities.Session{
		TableID:   table.ID,
		StartedAt: now,
		ExpiresAt: now.Add(SessionWindow),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return domain.SessionResponse{}, err
	}

	return domain.SessionResponse{
		ID:        session.ID,
		TableID:   table.ID,
		TableName: table.Name,
		StartedAt: session.StartedAt,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *sessionService) GetSession(ctx context.Context, id uint) (domain.SessionResponse, error) {
	session, err := s.sessionRepository.GetSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SessionResponse{}, domain.ErrSessionNotFound
		}
		return domain.SessionResponse{}, err
	}

	res := domain.SessionResponse{
		ID:        session.ID,
		TableID:   session.TableID,
		StartedAt: session.StartedAt,
		ExpiresAt: session.ExpiresAt,
	}
	if session.Table != nil {
		res.TableName = session.Table.Name
	}
	return res, nil
}

func (s *sessionService) GetTables(ctx context.Context) ([]domain.TableResponse, error) {
	tables, err := s.sessionRepository.GetTables(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TableResponse, 0, len(tables))
	for _, table := range tables {
		result = append(result, domain.TableResponse{
			ID:     table.ID,
			Name:   table.Name,
			QRCode: table.QRCode,
		})
	}
	return result, nil
}
