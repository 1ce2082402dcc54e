package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/emrgen/cataviz/internal/pipeline"
	"github.com/emrgen/cataviz/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPatterns = pipeline.Patterns{
	Authority: "P1486_*.UTF8",
	Pre1970:   "P1187_*.UTF8",
	Post1970:  "P174_*.UTF8",
}

type fakeLoader struct {
	loads  [][]string
	orders int
	err    error
}

func (f *fakeLoader) Load(_ context.Context, sources []pipeline.Source) (pipeline.Report, error) {
	var names []string
	for _, src := range sources {
		names = append(names, src.Name())
	}
	f.loads = append(f.loads, names)
	return pipeline.Report{Files: len(sources)}, f.err
}

func (f *fakeLoader) Order(context.Context) (int64, error) {
	f.orders++
	return 0, nil
}

func TestScanTask(t *testing.T) {
	loader := &fakeLoader{}
	dir := tester.WriteFile(t, "", "P1486_1.UTF8", nil)
	task := NewScanTask(context.Background(), "@every 1m", dir, testPatterns, func() (Loader, error) { return loader, nil })

	task.Run()
	require.Len(t, loader.loads, 1)
	assert.Equal(t, []string{"P1486_1.UTF8"}, loader.loads[0])
	assert.Equal(t, 0, loader.orders)

	// nothing new
	task.Run()
	assert.Len(t, loader.loads, 1)

	tester.WriteFile(t, dir, "P174_1.UTF8", nil)
	task.Run()
	require.Len(t, loader.loads, 2)
	assert.Equal(t, []string{"P174_1.UTF8"}, loader.loads[1])
	assert.Equal(t, 1, loader.orders)
}

func TestScanTask_FailedFilesNotRetried(t *testing.T) {
	loader := &fakeLoader{err: errors.New("disk full")}
	dir := tester.WriteFile(t, "", "P174_1.UTF8", nil)
	task := NewScanTask(context.Background(), "@every 1m", dir, testPatterns, func() (Loader, error) { return loader, nil })

	task.Run()
	task.Run()
	assert.Len(t, loader.loads, 1)
	assert.Equal(t, 0, loader.orders)
}

type blockingJob struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	runs    int
}

func (b *blockingJob) Name() string     { return "blocking" }
func (b *blockingJob) Schedule() string { return "@every 1h" }
func (b *blockingJob) Run() {
	b.mu.Lock()
	b.runs++
	b.mu.Unlock()
	b.started <- struct{}{}
	<-b.release
}

func TestTaskExecutor_SkipsOverlappingRuns(t *testing.T) {
	job := &blockingJob{started: make(chan struct{}), release: make(chan struct{})}
	executor := NewTaskExecutor(job)

	done := make(chan bool)
	go func() { done <- executor.trigger(job) }()
	<-job.started

	assert.False(t, executor.trigger(job))

	close(job.release)
	assert.True(t, <-done)

	go func() { done <- executor.trigger(job) }()
	<-job.started
	assert.True(t, <-done)
	assert.Equal(t, 2, job.runs)
}

func TestTaskExecutor_BadSchedule(t *testing.T) {
	task := NewScanTask(context.Background(), "every now and then", t.TempDir(), testPatterns, nil)
	executor := NewTaskExecutor(task)
	assert.Error(t, executor.Run())
}
