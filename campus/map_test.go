package campus_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/matrix"
)

func TestLoadFile_YAMLMatchesReference(t *testing.T) {
	t.Parallel()

	m, err := campus.LoadFile(filepath.Join("testdata", "campus.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(campus.Reference(), m); diff != "" {
		t.Errorf("campus.yaml differs from Reference() (-want +got):\n%s", diff)
	}
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	m, err := campus.LoadFile(filepath.Join("testdata", "islands.json"))
	require.NoError(t, err)
	require.Equal(t, "Islands", m.Name)
	require.Equal(t, []string{"Library", "Hostel", "Lake"}, m.Names())

	comps, err := m.Components()
	require.NoError(t, err)
	want := [][]string{{"Library", "Hostel"}, {"Lake"}}
	if diff := cmp.Diff(want, comps); diff != "" {
		t.Errorf("components (-want +got):\n%s", diff)
	}
}

func TestLoad_DetectsFormat(t *testing.T) {
	t.Parallel()

	yml := []byte("name: Tiny\nlocations:\n  - {name: A}\n  - {name: B}\nroads:\n  - {from: A, to: B, weight: 3}\n")
	m, err := campus.Load(yml, "")
	require.NoError(t, err)
	require.Len(t, m.Roads, 1)

	js := []byte(`{"name":"Tiny","locations":[{"name":"A"},{"name":"B"}],"roads":[]}`)
	m, err = campus.Load(js, "")
	require.NoError(t, err)
	require.Empty(t, m.Roads)

	_, err = campus.Load(yml, ".toml")
	require.ErrorIs(t, err, campus.ErrInvalidMap)

	_, err = campus.Load([]byte("{not json"), ".json")
	require.Error(t, err)

	_, err = campus.LoadFile(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestMap_Validate(t *testing.T) {
	t.Parallel()

	locs := []campus.Location{{Name: "A"}, {Name: "B"}}
	tests := []struct {
		name string
		m    campus.Map
	}{
		{"no locations", campus.Map{}},
		{"empty name", campus.Map{Locations: []campus.Location{{Name: " "}}}},
		{"duplicate name", campus.Map{Locations: []campus.Location{{Name: "A"}, {Name: "a"}}}},
		{"unknown from", campus.Map{Locations: locs, Roads: []campus.Road{{From: "Z", To: "B", Weight: 1}}}},
		{"unknown to", campus.Map{Locations: locs, Roads: []campus.Road{{From: "A", To: "Z", Weight: 1}}}},
		{"self road", campus.Map{Locations: locs, Roads: []campus.Road{{From: "A", To: "A", Weight: 1}}}},
		{"zero weight", campus.Map{Locations: locs, Roads: []campus.Road{{From: "A", To: "B"}}}},
		{"negative weight", campus.Map{Locations: locs, Roads: []campus.Road{{From: "A", To: "B", Weight: -2}}}},
		{"duplicate road", campus.Map{Locations: locs, Roads: []campus.Road{
			{From: "A", To: "B", Weight: 1}, {From: "B", To: "A", Weight: 2},
		}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.m.Validate(), campus.ErrInvalidMap)
		})
	}
}

func TestMap_WeightsTooLarge(t *testing.T) {
	t.Parallel()

	m := campus.Map{
		Locations: []campus.Location{{Name: "A"}, {Name: "B"}},
		Roads:     []campus.Road{{From: "A", To: "B", Weight: matrix.MaxWeight + 1}},
	}
	_, err := m.Weights()
	require.ErrorIs(t, err, campus.ErrInvalidMap)
	require.ErrorIs(t, err, matrix.ErrWeightTooLarge)
}

func TestMap_WeightsReference(t *testing.T) {
	t.Parallel()

	w, err := campus.Reference().Weights()
	require.NoError(t, err)
	want := [][]int64{
		{0, 10, 0, 0, 0, 0},
		{10, 0, 0, 12, 0, 0},
		{0, 0, 0, 10, 0, 0},
		{0, 12, 10, 0, 2, 0},
		{0, 0, 0, 2, 0, 8},
		{0, 0, 0, 0, 8, 0},
	}
	require.Equal(t, want, w.Rows())
}

func TestMap_Resolve(t *testing.T) {
	t.Parallel()

	m := campus.Reference()
	for id, want := range map[string]int{
		"NHSRCL":        0,
		"sportscomplex": 5,
		"  AcadBlock  ": 3,
		"2":             2,
		"0":             0,
	} {
		got, err := m.Resolve(id)
		require.NoError(t, err, id)
		require.Equal(t, want, got, id)
	}

	for _, id := range []string{"", "Nowhere", "6", "-1", "99"} {
		_, err := m.Resolve(id)
		require.ErrorIs(t, err, campus.ErrUnknownLocation, id)
		require.ErrorIs(t, err, dijkstra.ErrInvalidNode, id)
	}
}

func TestMap_Diameter(t *testing.T) {
	t.Parallel()

	d, err := campus.Reference().Diameter()
	require.NoError(t, err)
	require.Equal(t, int64(32), d)

	m, err := campus.LoadFile(filepath.Join("testdata", "islands.json"))
	require.NoError(t, err)
	d, err = m.Diameter()
	require.NoError(t, err)
	require.Equal(t, int64(4), d)

	_, err = (&campus.Map{}).Diameter()
	require.ErrorIs(t, err, campus.ErrInvalidMap)
}
