package service

import (
	"context"
	"testing"

	"leafscan/internal/assistant"
	"leafscan/internal/repository/memrepo"
	"leafscan/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestKnowledgeService_ReloadEmptyStoreUsesBuiltin(t *testing.T) {
	engine := assistant.NewEngine(nil)
	m := metrics.New()
	svc := NewKnowledgeService(&memrepo.KnowledgeStore{}, engine, m, zap.NewNop())

	n, source, err := svc.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, KnowledgeSourceBuiltin, source)
	assert.Equal(t, assistant.DefaultKnowledgeBase().Len(), n)
	assert.Equal(t, n, engine.KnowledgeBase().Len())
	assert.Equal(t, float64(n), testutil.ToFloat64(m.KnowledgeSize))
}

func TestKnowledgeService_SeedAndReload(t *testing.T) {
	store := &memrepo.KnowledgeStore{}
	engine := assistant.NewEngine(assistant.DefaultKnowledgeBase())
	svc := NewKnowledgeService(store, engine, metrics.New(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.SeedPack(ctx, assistant.DefaultPack()))
	require.NoError(t, svc.SeedPack(ctx, &assistant.KnowledgePack{
		Name:     "orchard",
		Priority: 10,
		Entries: []assistant.KnowledgeEntry{
			{Keywords: []string{"apple scab"}, Response: "Scab answer"},
		},
	}))

	n, source, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, KnowledgeSourceDatabase, source)
	assert.Equal(t, assistant.DefaultKnowledgeBase().Len()+1, n)

	// lower priority comes first
	assert.Equal(t, "Scab answer", engine.KnowledgeBase().Entries()[0].Response)
	assert.Equal(t, assistant.SourceKB, engine.Respond("apple scab on leaves").Source)
}

func TestKnowledgeService_SeedPackReplacesPack(t *testing.T) {
	store := &memrepo.KnowledgeStore{}
	svc := NewKnowledgeService(store, assistant.NewEngine(nil), metrics.New(), zap.NewNop())
	ctx := context.Background()

	pack := &assistant.KnowledgePack{Name: "orchard", Entries: []assistant.KnowledgeEntry{
		{Keywords: []string{"apple scab"}, Response: "one"},
		{Keywords: []string{"pear rust"}, Response: "two"},
	}}
	require.NoError(t, svc.SeedPack(ctx, pack))
	pack.Entries = pack.Entries[:1]
	require.NoError(t, svc.SeedPack(ctx, pack))

	assert.Len(t, store.Rows, 1)
}

func TestKnowledgeService_SeedPackInvalid(t *testing.T) {
	svc := NewKnowledgeService(&memrepo.KnowledgeStore{}, assistant.NewEngine(nil), metrics.New(), zap.NewNop())

	err := svc.SeedPack(context.Background(), &assistant.KnowledgePack{Name: "empty"})
	assert.ErrorIs(t, err, assistant.ErrEmptyPack)
}

func TestKnowledgeService_ReloadErrorKeepsCurrentBase(t *testing.T) {
	engine := assistant.NewEngine(assistant.DefaultKnowledgeBase())
	before := engine.KnowledgeBase()
	svc := NewKnowledgeService(&memrepo.KnowledgeStore{ListErr: errBoom}, engine, metrics.New(), zap.NewNop())

	_, _, err := svc.Reload(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Same(t, before, engine.KnowledgeBase())
}

var _ KnowledgeStore = (*memrepo.KnowledgeStore)(nil)
