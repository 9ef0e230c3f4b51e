package application

import (
	"context"

	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

// compareService implements CompareService on top of a session store and the catalog.
// 比較対象は ID で受け取り、カタログから完全なレコードを引いて保持する。
type compareService struct {
	catalog  *Catalog
	sessions CompareSessionStore
}

// NewCompareService creates a new CompareService.
func NewCompareService(catalog *Catalog, sessions CompareSessionStore) CompareService {
	return &compareService{catalog: catalog, sessions: sessions}
}

func (s *compareService) Start(ctx context.Context) (CompareSession, error) {
	return s.sessions.Create(ctx)
}

func (s *compareService) Snapshot(ctx context.Context, sessionID string) (domain.CompareSnapshot, error) {
	return s.sessions.Get(ctx, sessionID)
}

func (s *compareService) Add(ctx context.Context, sessionID string, businessID int) (CompareResult, error) {
	business, ok := s.catalog.Find(businessID)
	if !ok {
		return CompareResult{}, ErrBusinessNotFound
	}
	return s.apply(ctx, sessionID, func(sel *domain.CompareSelection) bool {
		return sel.Add(business)
	})
}

func (s *compareService) Remove(ctx context.Context, sessionID string, businessID int) (CompareResult, error) {
	return s.apply(ctx, sessionID, func(sel *domain.CompareSelection) bool {
		return sel.Remove(businessID)
	})
}

func (s *compareService) Toggle(ctx context.Context, sessionID string, businessID int) (CompareResult, error) {
	business, ok := s.catalog.Find(businessID)
	if !ok {
		return CompareResult{}, ErrBusinessNotFound
	}
	return s.apply(ctx, sessionID, func(sel *domain.CompareSelection) bool {
		return sel.Toggle(business)
	})
}

func (s *compareService) Clear(ctx context.Context, sessionID string) (CompareResult, error) {
	return s.apply(ctx, sessionID, func(sel *domain.CompareSelection) bool {
		changed := sel.Len() > 0 || sel.ModalOpen()
		sel.Clear()
		return changed
	})
}

func (s *compareService) OpenModal(ctx context.Context, sessionID string) (CompareResult, error) {
	return s.apply(ctx, sessionID, func(sel *domain.CompareSelection) bool {
		return sel.OpenModal()
	})
}

func (s *compareService) CloseModal(ctx context.Context, sessionID string) (CompareResult, error) {
	return s.apply(ctx, sessionID, func(sel *domain.CompareSelection) bool {
		return sel.CloseModal()
	})
}

func (s *compareService) End(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *compareService) apply(ctx context.Context, sessionID string, op func(sel *domain.CompareSelection) bool) (CompareResult, error) {
	var changed bool
	snapshot, err := s.sessions.Update(ctx, sessionID, func(sel *domain.CompareSelection) {
		changed = op(sel)
	})
	if err != nil {
		return CompareResult{}, err
	}
	return CompareResult{Snapshot: snapshot, Changed: changed}, nil
}
