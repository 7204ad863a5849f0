package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
)

func TestObserveQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveQuery(campus.OutcomeFound, 3*time.Millisecond)
	m.ObserveQuery(campus.OutcomeFound, time.Millisecond)
	m.ObserveQuery(campus.OutcomeInvalidNode, time.Microsecond)
	m.SetMap(6, 5)

	require.Equal(t, 2.0, testutil.ToFloat64(m.RouteQueries.WithLabelValues(campus.OutcomeFound)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RouteQueries.WithLabelValues(campus.OutcomeInvalidNode)))
	require.Equal(t, 2, testutil.CollectAndCount(m.RouteDuration))
	require.Equal(t, 6.0, testutil.ToFloat64(m.MapLocations))
	require.Equal(t, 5.0, testutil.ToFloat64(m.MapRoads))
}

func TestNew_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}

func TestRouterObserver(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	r, err := campus.NewRouter(campus.Reference(), campus.WithObserver(m))
	require.NoError(t, err)
	_, err = r.Route(context.Background(), "NHSRCL", "SportsComplex")
	require.NoError(t, err)
	_, err = r.Route(context.Background(), "NHSRCL", "NHSRCL")
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.RouteQueries.WithLabelValues(campus.OutcomeFound)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RouteQueries.WithLabelValues(campus.OutcomeInvalidQuery)))
}
