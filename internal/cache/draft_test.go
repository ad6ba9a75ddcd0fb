package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FindrHealth/config"
	"FindrHealth/internal/model"
	"FindrHealth/internal/wizard"
	"FindrHealth/pkg/logger"
)

// An oversized snapshot must be dropped before any write is attempted; no
// Redis client is wired up here, so reaching the write would panic.
func TestDraftStoreSaveDropsOversizedSnapshot(t *testing.T) {
	logger.Logger = zap.NewNop()

	draft := model.NewDraftRecord()
	draft.PracticeName = strings.Repeat("x", config.Cfg.DraftSnapshotMaxBytes+1)
	snap := &wizard.Snapshot{Draft: draft, StepIndex: 2}

	err := DraftStore{}.Save(context.Background(), "sess-1", snap)
	require.NoError(t, err, "oversized snapshots are skipped, not failed")
}

func TestDraftStoreSaveHonorsConfiguredCap(t *testing.T) {
	logger.Logger = zap.NewNop()

	orig := config.Cfg.DraftSnapshotMaxBytes
	config.Cfg.DraftSnapshotMaxBytes = 16
	t.Cleanup(func() { config.Cfg.DraftSnapshotMaxBytes = orig })

	draft := model.NewDraftRecord()
	draft.PracticeName = "Acme Clinic"
	snap := &wizard.Snapshot{Draft: draft}

	assert.NoError(t, DraftStore{}.Save(context.Background(), "sess-1", snap))
}
