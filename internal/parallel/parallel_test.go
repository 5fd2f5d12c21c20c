package parallel

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_Sequential(t *testing.T) {
	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, Sequential())

	assert.Equal(t, int64(100), counter)
}

// TestForChunks_CoversRange checks chunks are disjoint and cover [0, n).
func TestForChunks_CoversRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 4}

	var mu sync.Mutex
	var chunks [][2]int
	ForChunks(50, func(start, end int) {
		mu.Lock()
		chunks = append(chunks, [2]int{start, end})
		mu.Unlock()
	}, cfg)

	require.Greater(t, len(chunks), 1)
	sort.Slice(chunks, func(i, j int) bool { return chunks[i][0] < chunks[j][0] })

	next := 0
	for _, c := range chunks {
		assert.Equal(t, next, c[0])
		assert.Greater(t, c[1], c[0])
		next = c[1]
	}
	assert.Equal(t, 50, next)
}

func TestForChunks_SmallInputRunsOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 16}

	calls := 0
	ForChunks(20, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 20, end)
	}, cfg)

	assert.Equal(t, 1, calls)
}

func TestForChunks_Empty(t *testing.T) {
	ForChunks(0, func(_, _ int) {
		t.Fatal("f must not be called for n == 0")
	}, DefaultConfig())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.NumWorkers)
	assert.Positive(t, cfg.MinChunkSize)
}
