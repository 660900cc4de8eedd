// SPDX-License-Identifier: MIT

package canny_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/canny"
	"github.com/katalvlaran/ndcanny/flood"
	"github.com/katalvlaran/ndcanny/internal/logging"
	"github.com/katalvlaran/ndcanny/ndarray"
)

func TestDetect_StepEdgeWithoutSmoothing(t *testing.T) {
	t.Parallel()

	res, err := canny.Detect(stepEdge(t), canny.WithSigma(0), canny.WithThresholds(2, 2))
	require.NoError(t, err)
	assert.True(t, ndarray.Equal[bool](res.Candidates, res.Edges))
	assert.Equal(t, 12, res.Count())

	comps, err := res.Components()
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Contains(t, comps[0], 0)
	assert.Len(t, comps[0], 6)
	assert.Len(t, comps[1], 6)

	labels, n, err := res.Labels()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 0, 2, 2, 0, 1}, labels.Select(1, 0).ToSlice())

	res, err = canny.Detect(stepEdge(t), canny.WithSigma(0), canny.WithThresholds(1, 3))
	require.NoError(t, err)
	assert.Zero(t, res.Count(), "no score is at or below lower")
}

// near reports whether v lies on the boundary band of the block [4, 12).
func near(v int) bool { return v == 3 || v == 4 || v == 11 || v == 12 }

func TestDetect_Block(t *testing.T) {
	t.Parallel()

	in := square(t, 16, 4, 12)
	for _, fused := range []bool{true, false} {
		for _, workers := range []int{1, 4} {
			res, err := canny.Detect(in, canny.WithSigma(1), canny.WithThresholds(5, 20),
				canny.WithFused(fused), canny.WithWorkers(workers))
			require.NoError(t, err)

			assert.Positive(t, res.Count())
			for idx, e := range res.Edges.All() {
				if !e {
					continue
				}
				c, _ := res.Candidates.At(idx...)
				require.True(t, c, "edge %v is not a candidate", idx)
				require.True(t, near(idx[0]) || near(idx[1]), "edge %v away from the block boundary", idx)
			}
			centre, _ := res.Edges.At(8, 8)
			corner, _ := res.Edges.At(0, 0)
			assert.False(t, centre)
			assert.False(t, corner)

			// Every side of the block carries an edge on the middle line.
			row := res.Edges.Select(1, 8).ToSlice()
			col := res.Edges.Select(0, 8).ToSlice()
			assert.True(t, row[3] || row[4], "left side")
			assert.True(t, row[11] || row[12], "right side")
			assert.True(t, col[3] || col[4], "top side")
			assert.True(t, col[11] || col[12], "bottom side")

			comps, err := res.Components()
			require.NoError(t, err)
			assert.NotEmpty(t, comps)
		}
	}
}

func TestDetect_Float32AndRank3(t *testing.T) {
	t.Parallel()

	cube := ndarray.Must(ndarray.New[float32](12, 12, 12))
	for z := 3; z < 9; z++ {
		for y := 3; y < 9; y++ {
			for x := 3; x < 9; x++ {
				require.NoError(t, cube.Set(1, x, y, z))
			}
		}
	}
	res, err := canny.Detect(cube, canny.WithSigma(0.8), canny.WithThresholds(5, 20), canny.WithConnectivity(flood.Axial))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{12, 12, 12, 4}, res.Field.Array().Shape())
	assert.Positive(t, res.Count())
	centre, _ := res.Edges.At(5, 5, 5)
	assert.False(t, centre)
}

func TestDetect_LogsStages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := canny.Detect(stepEdge(t), canny.WithLogger(logging.New(&buf, true)))
	require.NoError(t, err)
	out := buf.String()
	for _, stage := range []string{"gradient field", "thinning", "hysteresis"} {
		assert.True(t, strings.Contains(out, stage), "missing %q in %s", stage, out)
	}
}

func TestDetect_Errors(t *testing.T) {
	t.Parallel()

	_, err := canny.Detect[float64](nil)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
	assert.Panics(t, func() { canny.WithSigma(-1) })
	assert.Panics(t, func() { canny.WithWorkers(-1) })
	assert.Panics(t, func() { canny.WithHalfWidth(-2) })
}
