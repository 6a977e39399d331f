package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opsdash/opsdash/pkg/models"
	"github.com/opsdash/opsdash/pkg/upstream"
)

func snapAt(cpu float64, ts time.Time) models.MetricsSnapshot {
	return models.MetricsSnapshot{
		CPUPercent:    cpu,
		MemoryPercent: 50,
		DiskPercent:   40,
		NetworkMBs:    1.5,
		Timestamp:     ts,
	}
}

func TestBufferEmpty(t *testing.T) {
	b := NewBuffer(4)

	assert.Empty(t, b.GetPoints())
	assert.Nil(t, b.GetLastPoint())
}

func TestBufferPartialFill(t *testing.T) {
	b := NewBuffer(4)
	now := time.Now()

	b.Add(snapAt(10, now))
	b.Add(snapAt(20, now.Add(time.Second)))

	points := b.GetPoints()
	require.Len(t, points, 2)
	assert.InDelta(t, 20, points[0].CPUPercent, 0.001)
	assert.InDelta(t, 10, points[1].CPUPercent, 0.001)

	last := b.GetLastPoint()
	require.NotNil(t, last)
	assert.InDelta(t, 20, last.CPUPercent, 0.001)
}

func TestBufferEvictsOldest(t *testing.T) {
	b := NewBuffer(3)
	now := time.Now()

	for i := 0; i < 5; i++ {
		b.Add(snapAt(float64(i), now.Add(time.Duration(i)*time.Second)))
	}

	points := b.GetPoints()
	require.Len(t, points, 3)

	// Newest first; 0 and 1 evicted.
	assert.InDelta(t, 4, points[0].CPUPercent, 0.001)
	assert.InDelta(t, 3, points[1].CPUPercent, 0.001)
	assert.InDelta(t, 2, points[2].CPUPercent, 0.001)
}

func TestBufferGetPointsReturnsCopy(t *testing.T) {
	b := NewBuffer(2)
	b.Add(snapAt(10, time.Now()))

	points := b.GetPoints()
	points[0].CPUPercent = 99

	again := b.GetPoints()
	assert.InDelta(t, 10, again[0].CPUPercent, 0.001)
}

func TestBufferConcurrentAccess(t *testing.T) {
	b := NewBuffer(8)

	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				b.Add(snapAt(float64(n), time.Now()))
				_ = b.GetPoints()
				_ = b.GetLastPoint()
			}
		}(i)
	}

	wg.Wait()

	assert.Len(t, b.GetPoints(), 8)
}

func TestRecorderSampleAppendsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := upstream.NewMockMetricsSource(ctrl)

	first := snapAt(10, time.Now())
	second := snapAt(20, time.Now().Add(time.Second))

	gomock.InOrder(
		source.EXPECT().Sample(gomock.Any()).Return(&first, nil),
		source.EXPECT().Sample(gomock.Any()).Return(&second, nil),
	)

	r := NewRecorder(source, 4)

	got, err := r.Sample(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 10, got.CPUPercent, 0.001)

	_, err = r.Sample(context.Background())
	require.NoError(t, err)

	history := r.History()
	require.Len(t, history, 2)
	assert.InDelta(t, 20, history[0].CPUPercent, 0.001)
	assert.InDelta(t, 10, history[1].CPUPercent, 0.001)
}

func TestRecorderSampleFailureLeavesHistoryIntact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := upstream.NewMockMetricsSource(ctrl)

	good := snapAt(10, time.Now())

	gomock.InOrder(
		source.EXPECT().Sample(gomock.Any()).Return(&good, nil),
		source.EXPECT().Sample(gomock.Any()).Return(nil, errors.New("upstream down")),
	)

	r := NewRecorder(source, 4)

	_, err := r.Sample(context.Background())
	require.NoError(t, err)

	_, err = r.Sample(context.Background())
	require.Error(t, err)

	assert.Len(t, r.History(), 1)
}
