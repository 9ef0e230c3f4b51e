package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/fitness-directory/api/internal/infrastructure/memory"
	"github.com/sngm3741/fitness-directory/api/internal/public/application"
)

func newCompareService(t *testing.T) (application.CompareService, string) {
	t.Helper()
	catalog := application.NewCatalog(testBusinesses())
	svc := application.NewCompareService(catalog, memory.NewCompareSessionStore(time.Hour))
	session, err := svc.Start(context.Background())
	require.NoError(t, err)
	return svc, session.ID
}

func itemIDs(result application.CompareResult) []int {
	out := make([]int, 0, len(result.Snapshot.Items))
	for _, item := range result.Snapshot.Items {
		out = append(out, item.ID)
	}
	return out
}

func TestCompareService_AddResolvesFullRecord(t *testing.T) {
	ctx := context.Background()
	svc, sid := newCompareService(t)

	result, err := svc.Add(ctx, sid, 2)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	require.Len(t, result.Snapshot.Items, 1)
	assert.Equal(t, "Zen Flow Yoga Studio", result.Snapshot.Items[0].Name)
	assert.Equal(t, []string{"Hot Yoga"}, result.Snapshot.Items[0].Services)
}

func TestCompareService_Guards(t *testing.T) {
	ctx := context.Background()
	svc, sid := newCompareService(t)

	_, err := svc.Add(ctx, sid, 1)
	require.NoError(t, err)

	result, err := svc.Add(ctx, sid, 1)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	result, err = svc.OpenModal(ctx, sid)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, result.Snapshot.ModalOpen)

	_, err = svc.Add(ctx, sid, 2)
	require.NoError(t, err)
	result, err = svc.Add(ctx, sid, 3)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, []int{1, 2}, itemIDs(result))
}

func TestCompareService_ModalLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, sid := newCompareService(t)

	_, _ = svc.Add(ctx, sid, 1)
	_, _ = svc.Add(ctx, sid, 2)

	result, err := svc.OpenModal(ctx, sid)
	require.NoError(t, err)
	assert.True(t, result.Snapshot.ModalOpen)

	result, err = svc.Remove(ctx, sid, 1)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.False(t, result.Snapshot.ModalOpen)
	assert.Equal(t, []int{2}, itemIDs(result))

	_, _ = svc.Add(ctx, sid, 3)
	_, _ = svc.OpenModal(ctx, sid)
	result, err = svc.CloseModal(ctx, sid)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.False(t, result.Snapshot.ModalOpen)
	assert.Equal(t, []int{2, 3}, itemIDs(result))
}

func TestCompareService_ToggleAndClear(t *testing.T) {
	ctx := context.Background()
	svc, sid := newCompareService(t)

	result, err := svc.Toggle(ctx, sid, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, itemIDs(result))

	result, err = svc.Toggle(ctx, sid, 1)
	require.NoError(t, err)
	assert.Empty(t, result.Snapshot.Items)

	result, err = svc.Clear(ctx, sid)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	_, _ = svc.Add(ctx, sid, 3)
	result, err = svc.Clear(ctx, sid)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Empty(t, result.Snapshot.Items)
}

func TestCompareService_Errors(t *testing.T) {
	ctx := context.Background()
	svc, sid := newCompareService(t)

	_, err := svc.Add(ctx, sid, 999)
	assert.ErrorIs(t, err, application.ErrBusinessNotFound)

	_, err = svc.Toggle(ctx, sid, 999)
	assert.ErrorIs(t, err, application.ErrBusinessNotFound)

	_, err = svc.Add(ctx, "nope", 1)
	assert.ErrorIs(t, err, application.ErrCompareSessionNotFound)

	require.NoError(t, svc.End(ctx, sid))
	_, err = svc.Snapshot(ctx, sid)
	assert.ErrorIs(t, err, application.ErrCompareSessionNotFound)
}
