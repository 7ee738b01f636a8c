package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSearch_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		shape Shape
		ids   []string
	}{
		{
			name:  "provider wrapped",
			body:  `{"ticketmaster":{"_embedded":{"events":[{"id":"A"},{"id":"B"}]},"page":{"totalElements":2}}}`,
			shape: ShapeProviderWrapped,
			ids:   []string{"A", "B"},
		},
		{
			name:  "flat",
			body:  `{"_embedded":{"events":[{"id":"C"}]}}`,
			shape: ShapeFlat,
			ids:   []string{"C"},
		},
		{
			name:  "zero count page marker",
			body:  `{"ticketmaster":{"page":{"size":20,"totalElements":0,"totalPages":0,"number":0}}}`,
			shape: ShapeEmptyPage,
			ids:   []string{},
		},
		{
			name:  "provider list wins over flat list",
			body:  `{"ticketmaster":{"_embedded":{"events":[{"id":"P"}]}},"_embedded":{"events":[{"id":"F"}]}}`,
			shape: ShapeProviderWrapped,
			ids:   []string{"P"},
		},
		{
			name:  "non array provider events falls through to flat",
			body:  `{"ticketmaster":{"_embedded":{"events":null}},"_embedded":{"events":[{"id":"F"}]}}`,
			shape: ShapeFlat,
			ids:   []string{"F"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSearch([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.shape, got.Shape)
			ids := []string{}
			for _, e := range got.Events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestDecodeSearch_Unrecognized(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"ticketmaster":{"page":{"totalElements":3}}}`,
		`{"ticketmaster":"down"}`,
		`{"events":{"not":"a list"}}`,
	} {
		_, err := DecodeSearch([]byte(body))
		assert.ErrorIs(t, err, ErrUnrecognizedPayload, body)
		assert.NotErrorIs(t, err, ErrMalformedPayload, body)
	}
}

func TestDecodeSearch_Malformed(t *testing.T) {
	for _, body := range []string{
		``,
		`[]`,
		`"text"`,
		`<html>gateway</html>`,
		`{"a":`,
	} {
		_, err := DecodeSearch([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedPayload, body)
		assert.NotErrorIs(t, err, ErrUnrecognizedPayload, body)
	}
}

func TestDecodeSearch_EmptyPageIgnoresMistypedSize(t *testing.T) {
	res, err := DecodeSearch([]byte(`{"ticketmaster":{"page":{"size":"20","totalElements":0}}}`))
	require.NoError(t, err)
	assert.Equal(t, ShapeEmptyPage, res.Shape)
	assert.Empty(t, res.Events)
}

func TestDecodeSearch_MistypedFieldDegrades(t *testing.T) {
	body := `{"_embedded":{"events":[{"id":"A","name":42,"url":"https://t/a"}]}}`
	got, err := DecodeSearch([]byte(body))
	require.NoError(t, err)
	require.Len(t, got.Events, 1)
	assert.True(t, got.Degraded)
	assert.Equal(t, "A", got.Events[0].ID)
	assert.Equal(t, "", got.Events[0].Name)
}

func TestDecodeEvent_WrappedAndFlat(t *testing.T) {
	wrapped, err := DecodeEvent([]byte(`{"ticketmaster":{"id":"E1","name":"Wrapped"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Wrapped", wrapped.Name)

	flat, err := DecodeEvent([]byte(`{"id":"E2","name":"Flat","seatmap":{"staticUrl":"https://maps/s.png"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Flat", flat.Name)
	assert.Equal(t, "https://maps/s.png", flat.Seatmap.StaticURL)

	_, err = DecodeEvent([]byte(`[1,2]`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestDecodeVenue_Layouts(t *testing.T) {
	direct, err := DecodeVenue([]byte(`{"name":"Blue Note","city":{"name":"New York"}}`))
	require.NoError(t, err)
	assert.Equal(t, "New York", direct.City.Name)

	wrapped, err := DecodeVenue([]byte(`{"ticketmaster":{"name":"Blue Note"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Blue Note", wrapped.Name)

	page, err := DecodeVenue([]byte(`{"ticketmaster":{"_embedded":{"venues":[{"name":"First"},{"name":"Second"}]}}}`))
	require.NoError(t, err)
	assert.Equal(t, "First", page.Name)

	_, err = DecodeVenue([]byte(`{"ticketmaster":{"_embedded":{"venues":[]}}}`))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = DecodeVenue([]byte(`{"ticketmaster":{"page":{"totalElements":0}}}`))
	assert.ErrorIs(t, err, ErrNotFound)
}
