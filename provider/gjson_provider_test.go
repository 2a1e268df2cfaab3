package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mikeschinkel/jsonpath/provider"
)

func TestGJSONProvider_ParseAndReadFields(t *testing.T) {
	p := provider.NewGJSON()
	v, err := p.Parse([]byte(`{"store":{"name":"Acme","count":3}}`))
	require.NoError(t, err)

	store, present := p.GetProperty(v, "store")
	require.True(t, present)

	name, present := p.GetProperty(store, "name")
	require.True(t, present)
	assert.Equal(t, "Acme", name.(gjson.Result).String())
}

func TestGJSONProvider_KeysPreserveOrder(t *testing.T) {
	p := provider.NewGJSON()
	v, err := p.Parse([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)

	keys, err := p.Keys(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestGJSONProvider_ArrayLengthAndIndex(t *testing.T) {
	p := provider.NewGJSON()
	v, err := p.Parse([]byte(`[10,20,30]`))
	require.NoError(t, err)

	n, err := p.Length(v)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, present := p.GetIndex(v, -1)
	assert.True(t, present)

	_, present = p.GetIndex(v, 10)
	assert.False(t, present)
}

func TestGJSONProvider_InvalidJSON(t *testing.T) {
	p := provider.NewGJSON()
	_, err := p.Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestGJSONProvider_MutationsAreReadOnly(t *testing.T) {
	p := provider.NewGJSON()
	v, err := p.Parse([]byte(`{"a":1}`))
	require.NoError(t, err)

	err = p.SetProperty(v, "a", 2)
	assert.ErrorIs(t, err, provider.ErrReadOnly)
}

func TestGJSONProvider_SerializeReturnsRawText(t *testing.T) {
	p := provider.NewGJSON()
	src := []byte(`{"a":1,"b":[1,2,3]}`)
	v, err := p.Parse(src)
	require.NoError(t, err)

	out, err := p.Serialize(v)
	require.NoError(t, err)
	assert.JSONEq(t, string(src), string(out))
}

func TestGJSONProvider_ArrayAccumulatorRoundTrips(t *testing.T) {
	p := provider.NewGJSON()
	v, err := p.Parse([]byte(`{"books":[{"author":"A"},{"author":"B"}]}`))
	require.NoError(t, err)

	books, present := p.GetProperty(v, "books")
	require.True(t, present)

	elements, err := p.ToSlice(books)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	out := p.CreateArray()
	for _, elem := range elements {
		author, present := p.GetProperty(elem, "author")
		require.True(t, present)
		out = p.AppendArray(out, author)
	}

	assert.True(t, p.IsArray(out))
	n, err := p.Length(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	serialized, err := p.Serialize(out)
	require.NoError(t, err)
	assert.JSONEq(t, `["A","B"]`, string(serialized))
}

func TestGJSONProvider_CloneIsIdentity(t *testing.T) {
	p := provider.NewGJSON()
	v, err := p.Parse([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, v, p.Clone(v))
}
