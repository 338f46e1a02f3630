package hittest

import (
	"testing"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestStrokeInfoWeights(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	info := newStrokeInfo(mustStroke(t, inkhit.P(0, 0), inkhit.P(4, 0), inkhit.P(4, 6)))
	assert.InDelta(t, 2.1, info.weights[0], 1e-12)
	assert.InDelta(t, 5.0, info.weights[1], 1e-12)
	assert.InDelta(t, 3.1, info.weights[2], 1e-12)
	assert.InDelta(t, 10.2, info.total, 1e-12)
	assert.True(t, info.dirty)
}

func TestStrokeInfoClampSnapsNoise(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	info := newStrokeInfo(mustStroke(t, inkhit.P(0, 0), inkhit.P(10, 0)))
	info.hitWeight = info.total - 1e-14
	info.clamp()
	assert.Equal(t, info.total, info.hitWeight)
	assert.True(t, info.meets(100))
	info.hitWeight = 1e-14
	info.clamp()
	assert.Equal(t, 0.0, info.hitWeight)
	info.hitWeight = -3
	info.clamp()
	assert.Equal(t, 0.0, info.hitWeight)
	info.hitWeight = info.total + 3
	info.clamp()
	assert.Equal(t, info.total, info.hitWeight)
	info.hitWeight = info.total / 2
	info.clamp()
	assert.Equal(t, info.total/2, info.hitWeight)
	assert.True(t, info.meets(50))
	assert.False(t, info.meets(51))
}
