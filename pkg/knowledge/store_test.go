package knowledge

import (
	"context"
	"path/filepath"
	"testing"

	"ai-dialogue-be/internal/model"
	"ai-dialogue-be/internal/pkg/logger"
	"ai-dialogue-be/internal/repository/unitofwork"
	"ai-dialogue-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	gormDB, err := database.NewSqliteDB(filepath.Join(dir, "knowledge.db"))
	require.NoError(t, err)

	err = gormDB.AutoMigrate(&model.KnowledgeFact{})
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	log := logger.NewIsolatedLogger(filepath.Join(dir, "test.log"))

	closeFn := func() error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	store := NewStore(uowFactory, DefaultClassification(), log, closeFn)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSeedOnFreshlyMigratedDatabase(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	gormDB, err := database.NewSqliteDB(filepath.Join(dir, "fresh.db"))
	require.NoError(t, err)

	// Same provisioning path the server runs at bootstrap.
	require.NoError(t, model.Migrate(gormDB))

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	log := logger.NewIsolatedLogger(filepath.Join(dir, "test.log"))
	store := NewStore(uowFactory, DefaultClassification(), log, nil)

	require.NoError(t, store.Seed(ctx, DefaultConstants))

	facts, err := store.Query(ctx, "france", "capital")
	require.NoError(t, err)
	assert.Equal(t, []string{"paris"}, facts)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Seed(ctx, DefaultConstants))
	require.NoError(t, store.Seed(ctx, DefaultConstants))

	facts, err := store.Query(ctx, "ball", "shape")
	require.NoError(t, err)
	assert.Equal(t, []string{"round"}, facts)

	actions, err := store.Query(ctx, "ball", "can_be_action")
	require.NoError(t, err)
	assert.Equal(t, []string{"thrown", "caught"}, actions)
}

func TestLearnNewFact(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	outcome, err := store.Learn(ctx, "sky", "color", "blue", SourceUser)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLearned, outcome)

	facts, err := store.Query(ctx, "sky", "color")
	require.NoError(t, err)
	assert.Equal(t, []string{"blue"}, facts)
}

func TestLearnImmutableConflictLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Seed(ctx, DefaultConstants))

	outcome, err := store.Learn(ctx, "ball", "shape", "square", SourceUser)
	require.NoError(t, err)
	assert.Equal(t, OutcomeConflictWithConstant, outcome)

	facts, err := store.Query(ctx, "ball", "shape")
	require.NoError(t, err)
	assert.Equal(t, []string{"round"}, facts)
}

func TestLearnSingularMutableUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	outcome, err := store.Learn(ctx, "texas", "state", "big", SourceUser)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLearned, outcome)

	outcome, err = store.Learn(ctx, "texas", "state", "huge", SourceUser)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	facts, err := store.Query(ctx, "texas", "state")
	require.NoError(t, err)
	assert.Equal(t, []string{"huge"}, facts)
}

func TestLearnPluralDeduplicatesCaseInsensitively(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	outcome, err := store.Learn(ctx, "car", "has_part", "engine", SourceUser)
	require.NoError(t, err)
	assert.Equal(t, OutcomeLearned, outcome)

	outcome, err = store.Learn(ctx, "car", "has_part", "Engine", SourceUser)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyKnown, outcome)

	facts, err := store.Query(ctx, "car", "has_part")
	require.NoError(t, err)
	assert.Equal(t, []string{"engine"}, facts)
}

func TestLearnPluralPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, part := range []string{"engine", "wheel", "door"} {
		outcome, err := store.Learn(ctx, "car", "has_part", part, SourceUser)
		require.NoError(t, err)
		assert.Equal(t, OutcomeLearned, outcome)
	}

	facts, err := store.Query(ctx, "car", "has_part")
	require.NoError(t, err)
	assert.Equal(t, []string{"engine", "wheel", "door"}, facts)
}

func TestQueryUnknownKeyReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	facts, err := store.Query(ctx, "unicorn", "habitat")
	require.NoError(t, err)
	assert.Empty(t, facts)
}

func TestQueryIsCaseInsensitiveOnKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Seed(ctx, DefaultConstants))

	facts, err := store.Query(ctx, "France", "Capital")
	require.NoError(t, err)
	assert.Equal(t, []string{"paris"}, facts)
}

func TestCloseIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
