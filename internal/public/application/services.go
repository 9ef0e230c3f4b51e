package application

import (
	"context"
	"errors"
	"time"

	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

var (
	// ErrBusinessNotFound is returned when an id lookup misses. It is distinct
	// from an empty listing result.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrCompareSessionNotFound is returned for unknown or expired compare sessions.
	ErrCompareSessionNotFound = errors.New("compare session not found")
)

// BusinessLoader abstracts the dataset source read once at start-up.
// BusinessLoader はデータセット(ファイル/MongoDB)から事業者一覧を読み込むためのポート。
type BusinessLoader interface {
	Load(ctx context.Context) ([]domain.Business, error)
}

// CompareSession identifies one server-side compare selection.
type CompareSession struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// CompareSessionStore keeps an independent CompareSelection per session.
// Update must serialise fn per session.
type CompareSessionStore interface {
	Create(ctx context.Context) (CompareSession, error)
	Get(ctx context.Context, id string) (domain.CompareSnapshot, error)
	Update(ctx context.Context, id string, fn func(sel *domain.CompareSelection)) (domain.CompareSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// ListResult is a filtered listing plus the counts needed for "N of M" displays.
type ListResult struct {
	Items []domain.Business
	Count int
	Total int
}

// BusinessQueryService describes read use-cases over the loaded catalog.
// BusinessQueryService は一覧・詳細・サジェスト・メタデータ参照を提供するリーダーモデル。
type BusinessQueryService interface {
	List(criteria domain.FilterCriteria) ListResult
	Detail(id int) (domain.Business, error)
	Suggest(term string) []string
	Categories() []string
	Services() []string
	Vibes() []string
	PriceBounds() domain.PriceRange
}

// CompareResult reports the selection after an operation and whether the
// operation changed it. Guarded no-ops report Changed=false.
type CompareResult struct {
	Snapshot domain.CompareSnapshot
	Changed  bool
}

// CompareService handles compare-selection use-cases for one session at a time.
type CompareService interface {
	Start(ctx context.Context) (CompareSession, error)
	Snapshot(ctx context.Context, sessionID string) (domain.CompareSnapshot, error)
	Add(ctx context.Context, sessionID string, businessID int) (CompareResult, error)
	Remove(ctx context.Context, sessionID string, businessID int) (CompareResult, error)
	Toggle(ctx context.Context, sessionID string, businessID int) (CompareResult, error)
	Clear(ctx context.Context, sessionID string) (CompareResult, error)
	OpenModal(ctx context.Context, sessionID string) (CompareResult, error)
	CloseModal(ctx context.Context, sessionID string) (CompareResult, error)
	End(ctx context.Context, sessionID string) error
}
