package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/config"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/extract"
)

func testOrchestrator(t *testing.T, queueSize int) *Orchestrator {
	t.Helper()
	cfg := config.Load()
	cfg.WorkerCount = 2
	cfg.MaxQueueSize = queueSize
	return NewOrchestrator(cfg, extract.NewExtractor(nil, 6), testLogger())
}

func TestOrchestratorProcessesJob(t *testing.T) {
	o := testOrchestrator(t, 10)
	o.Start(context.Background())
	defer o.Stop()

	job := &Job{ID: "job-1", Filename: "recibo.txt", Status: StatusQueued, UpdatedAt: time.Now()}
	job.SetFileData([]byte(alfaReceipt))
	require.NoError(t, o.Submit(job))

	deadline := time.After(5 * time.Second)
	for {
		snap := o.GetJob("job-1").Snapshot()
		if snap.Status == StatusCompleted || snap.Status == StatusFailed {
			assert.Equal(t, StatusCompleted, snap.Status)
			assert.Equal(t, "DISTRIBUIDORA_ALFA_LTDA - 150,00.txt", snap.FinalName)
			return
		}
		select {
		case <-deadline:
			t.Fatalf("job did not finish, status %s", snap.Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestOrchestratorQueueFull(t *testing.T) {
	// Workers never started, so the queue fills up.
	o := testOrchestrator(t, 1)

	first := &Job{ID: "a", UpdatedAt: time.Now()}
	second := &Job{ID: "b", UpdatedAt: time.Now()}

	require.NoError(t, o.Submit(first))
	err := o.Submit(second)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, second.Snapshot().Status)
}

func TestOrchestratorGetJobUnknown(t *testing.T) {
	o := testOrchestrator(t, 1)
	assert.Nil(t, o.GetJob("missing"))
}
