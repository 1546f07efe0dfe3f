package encoding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toonlab/toonbench/internal/dataset"
)

// assertRoundTrip encodes ds in the given notation, decodes it back, and
// checks semantic equality (numeric types are normalized through JSON, since
// decoders return float64 where the source held int).
func assertRoundTrip(t *testing.T, ds dataset.Dataset, kind Kind) {
	t.Helper()

	p, err := Encode(ds, kind)
	require.NoError(t, err)
	require.Equal(t, kind, p.Kind)
	require.NotEmpty(t, p.Text)

	got, err := Decode(p)
	require.NoError(t, err)

	wantJSON, err := json.Marshal(ds)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestEncodeRoundTripSample(t *testing.T) {
	ds := dataset.Sample()
	assertRoundTrip(t, ds, KindJSON)
	assertRoundTrip(t, ds, KindTOON)
}

func TestEncodeRoundTripEmptySequenceAndNull(t *testing.T) {
	ds := dataset.Dataset{
		"items":   []any{},
		"missing": nil,
		"name":    "boundary",
	}
	assertRoundTrip(t, ds, KindJSON)
	assertRoundTrip(t, ds, KindTOON)
}

func TestEncodeDeterministic(t *testing.T) {
	ds := dataset.Sample()

	for _, kind := range []Kind{KindJSON, KindTOON} {
		first, err := Encode(ds, kind)
		require.NoError(t, err)
		second, err := Encode(ds, kind)
		require.NoError(t, err)
		assert.Equal(t, first.Text, second.Text, "%s output should be byte-identical across calls", kind)
	}
}

func TestEncodeJSONIndented(t *testing.T) {
	p, err := Encode(dataset.Dataset{"a": 1}, KindJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", p.Text)
}

func TestEncodeUnsupportedValue(t *testing.T) {
	ds := dataset.Dataset{
		"listings": []any{
			map[string]any{"callback": func() {}},
		},
	}

	for _, kind := range []Kind{KindJSON, KindTOON} {
		_, err := Encode(ds, kind)
		require.Error(t, err)

		var encErr *EncodeError
		require.ErrorAs(t, err, &encErr)
		assert.Equal(t, kind, encErr.Kind)
		assert.Equal(t, "$.listings[0].callback", encErr.Path)
	}
}

func TestEncodeNonStringMapKey(t *testing.T) {
	ds := dataset.Dataset{"scores": map[int]any{1: "a"}}

	_, err := Encode(ds, KindJSON)
	require.Error(t, err)

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "$.scores", encErr.Path)
}

func TestEncodeUnknownKind(t *testing.T) {
	_, err := Encode(dataset.Dataset{}, Kind("xml"))
	assert.Error(t, err)

	_, err = Decode(Payload{Kind: Kind("xml"), Text: "<a/>"})
	assert.Error(t, err)
}

func TestToonMoreCompactThanJSON(t *testing.T) {
	ds := dataset.Sample()

	jsonP, err := Encode(ds, KindJSON)
	require.NoError(t, err)
	toonP, err := Encode(ds, KindTOON)
	require.NoError(t, err)

	// Uniform arrays of objects are TOON's best case; the sample dataset
	// holds four listing rows with identical fields.
	assert.Less(t, len(toonP.Text), len(jsonP.Text))
}
