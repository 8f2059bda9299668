package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBoxSize(t *testing.T) {
	b := BoundingBox{XMin: 10, YMin: 20, XMax: 18, YMax: 26}
	require.Equal(t, 8.0, b.Width())
	require.Equal(t, 6.0, b.Height())
}
