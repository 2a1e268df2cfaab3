package jsonpath_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeschinkel/jsonpath"
	"github.com/mikeschinkel/jsonpath/predicate"
	"github.com/mikeschinkel/jsonpath/provider"
)

func mustParse(t *testing.T, doc string) any {
	t.Helper()
	v, err := provider.New().Parse([]byte(doc))
	require.NoError(t, err)
	return v
}

func TestRead_DollarReturnsWholeDocument(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	got, err := jsonpath.Read("$", v)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestRead_SimpleFieldAccess(t *testing.T) {
	v := mustParse(t, `{"store":{"name":"Acme"}}`)
	got, err := jsonpath.Read("$.store.name", v)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got)
}

func TestRead_BracketFieldAccess(t *testing.T) {
	v := mustParse(t, `{"a-b":{"c":42}}`)
	got, err := jsonpath.Read(`$['a-b'].c`, v)
	require.NoError(t, err)
	assert.Equal(t, jsonNumber(42), got)
}

func TestRead_MissingFieldReturnsNilByDefault(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	got, err := jsonpath.Read("$.missing", v)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRead_MissingFieldThrowsWhenConfigured(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	_, err := jsonpath.Read("$.missing", v, jsonpath.WithThrowOnMissingProperty())
	require.Error(t, err)
	assert.True(t, jsonpath.IsNotFound(err))
}

func TestRead_MultiKeyField(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":2,"c":3}`)
	got, err := jsonpath.Read(`$['a','c']`, v)
	require.NoError(t, err)
	keys, err := provider.New().Keys(got)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, keys)
}

// scenarios A-E from the array-index slice contract: a 7-element array,
// negative and positive head/tail/range slices.
func TestRead_ArraySlices(t *testing.T) {
	v := mustParse(t, `{"nums":[1,3,5,8,13,20,21]}`)

	cases := []struct {
		name string
		path string
		want []any
	}{
		{"A_tail_over_len", "$.nums[-10:]", jsonNumbers(1, 3, 5, 8, 13, 20, 21)},
		{"B_head_over_len", "$.nums[:10]", jsonNumbers(1, 3, 5, 8, 13, 20, 21)},
		{"C_head_3", "$.nums[:3]", jsonNumbers(1, 3, 5)},
		{"D_tail_3", "$.nums[-3:]", jsonNumbers(13, 20, 21)},
		{"E_range_0_3", "$.nums[0:3]", jsonNumbers(1, 3, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jsonpath.Read(tc.path, v)
			require.NoError(t, err)
			arr, err := provider.New().ToSlice(got)
			require.NoError(t, err)
			assert.Equal(t, tc.want, arr)
		})
	}
}

func TestRead_SingleIndexNegative(t *testing.T) {
	v := mustParse(t, `{"nums":[1,2,3]}`)
	got, err := jsonpath.Read("$.nums[-1]", v)
	require.NoError(t, err)
	assert.Equal(t, jsonNumber(3), got)
}

func TestRead_SingleIndexOutOfRange(t *testing.T) {
	v := mustParse(t, `{"nums":[1,2,3]}`)
	got, err := jsonpath.Read("$.nums[10]", v)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRead_WildcardOverObject(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":2}`)
	got, err := jsonpath.Read("$.*", v)
	require.NoError(t, err)
	arr, err := provider.New().ToSlice(got)
	require.NoError(t, err)
	assert.Equal(t, jsonNumbers(1, 2), arr)
}

func TestRead_ScanCollectsAllMatchingKeysInOrder(t *testing.T) {
	v := mustParse(t, `{"a":{"b":{"c":1}},"x":{"c":2}}`)
	got, err := jsonpath.Read("$..c", v)
	require.NoError(t, err)
	arr, err := provider.New().ToSlice(got)
	require.NoError(t, err)
	assert.Equal(t, jsonNumbers(1, 2), arr)
}

func TestRead_InlinePredicateArrayEval(t *testing.T) {
	v := mustParse(t, `{"books":[{"price":8},{"price":22},{"price":5}]}`)
	got, err := jsonpath.Read(`$.books[?(@.price < 10)]`, v)
	require.NoError(t, err)
	arr, err := provider.New().ToSlice(got)
	require.NoError(t, err)
	assert.Len(t, arr, 2)
}

func TestRead_HasPathPredicateNoComparator(t *testing.T) {
	v := mustParse(t, `{"books":[{"isbn":"1"},{"title":"no isbn"}]}`)
	got, err := jsonpath.Read(`$.books[?(@.isbn)]`, v)
	require.NoError(t, err)
	arr, err := provider.New().ToSlice(got)
	require.NoError(t, err)
	assert.Len(t, arr, 1)
}

func TestCompile_RejectsWrongFilterCount(t *testing.T) {
	_, err := jsonpath.Compile(`$.books[?]`)
	require.Error(t, err)
	assert.True(t, jsonpath.IsPathError(err))
}

func TestExists_SwallowsPathNotFound(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	cp, err := jsonpath.Compile("$.b.c")
	require.NoError(t, err)
	ok, err := cp.Exists(v, jsonpath.WithThrowOnMissingProperty())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRead_ArrayIndexOnNonArrayIsPathNotFound(t *testing.T) {
	v := mustParse(t, `{"a":"not an array"}`)
	cp, err := jsonpath.Compile("$.a[0]")
	require.NoError(t, err)

	got, err := cp.Read(v)
	require.Error(t, err)
	assert.True(t, jsonpath.IsNotFound(err))
	assert.Nil(t, got)

	ok, err := cp.Exists(v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRead_InlinePredicateOnNonArrayIsPathNotFound(t *testing.T) {
	v := mustParse(t, `{"books":"not an array"}`)
	cp, err := jsonpath.Compile(`$.books[?(@.price < 10)]`)
	require.NoError(t, err)

	ok, err := cp.Exists(v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRead_HasPathOnNonArrayIsPathNotFound(t *testing.T) {
	v := mustParse(t, `{"books":"not an array"}`)
	cp, err := jsonpath.Compile(`$.books[?(@.isbn)]`)
	require.NoError(t, err)

	ok, err := cp.Exists(v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRead_ArrayQueryOnNonArrayIsPathNotFound(t *testing.T) {
	v := mustParse(t, `{"books":"not an array"}`)
	filter := predicate.NewFilter(predicate.NewCriterion("@.isbn"))
	cp, err := jsonpath.Compile(`$.books[?]`, filter)
	require.NoError(t, err)

	ok, err := cp.Exists(v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRead_WildcardFanOutWithGJSONProvider(t *testing.T) {
	gp := provider.NewGJSON()
	v, err := gp.Parse([]byte(`{"store":{"book":[{"author":"A"},{"author":"B"}]}}`))
	require.NoError(t, err)

	got, err := jsonpath.Read("$.store.book[*].author", v, jsonpath.WithProvider(gp))
	require.NoError(t, err)

	arr, err := gp.ToSlice(got)
	require.NoError(t, err)
	require.Len(t, arr, 2)
	assert.Equal(t, "A", arr[0].(interface{ String() string }).String())
	assert.Equal(t, "B", arr[1].(interface{ String() string }).String())
}

func TestIsPathDefinite(t *testing.T) {
	definite, err := jsonpath.Compile("$.a.b[0]")
	require.NoError(t, err)
	assert.True(t, definite.IsPathDefinite())

	indefinite, err := jsonpath.Compile("$.a[*]")
	require.NoError(t, err)
	assert.False(t, indefinite.IsPathDefinite())
}

func TestGetRef_FieldAccess(t *testing.T) {
	v := mustParse(t, `{"a":{"b":1}}`)
	cp, err := jsonpath.Compile("$.a.b")
	require.NoError(t, err)
	ref, found, err := cp.GetRef(v)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "b", ref.Key)
}

func TestGetRef_ArrayIndex(t *testing.T) {
	v := mustParse(t, `{"nums":[1,2,3]}`)
	cp, err := jsonpath.Compile("$.nums[-1]")
	require.NoError(t, err)
	ref, found, err := cp.GetRef(v)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, ref.IsIndex)
	assert.Equal(t, 2, ref.Index)
}

func TestGetRef_RejectsIndefinitePath(t *testing.T) {
	v := mustParse(t, `{"nums":[1,2,3]}`)
	cp, err := jsonpath.Compile("$.nums[*]")
	require.NoError(t, err)
	_, _, err = cp.GetRef(v)
	assert.Error(t, err)
}

func TestMustCompile_PanicsOnInvalidPath(t *testing.T) {
	assert.Panics(t, func() {
		jsonpath.MustCompile("not-a-path")
	})
}

func TestCompiledPath_String(t *testing.T) {
	cp, err := jsonpath.Compile("$.a.b")
	require.NoError(t, err)
	assert.Equal(t, "$.a.b", cp.String())
}

func TestPackageLevelReadAndExists(t *testing.T) {
	v := mustParse(t, `{"a":1}`)

	got, err := jsonpath.Read("$.a", v)
	require.NoError(t, err)
	assert.Equal(t, jsonNumber(1), got)

	ok, err := jsonpath.Exists("$.a", v)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = jsonpath.Exists("$.missing", v)
	require.NoError(t, err)
	assert.False(t, ok)
}

// jsonNumbers builds the []any a DefaultProvider parse produces for a JSON
// array of integer literals: one json.Number per element, decimal-formatted
// exactly as encoding/json's UseNumber decoder would emit it.
func jsonNumbers(vals ...int) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = jsonNumber(v)
	}
	return out
}

func jsonNumber(n int) json.Number {
	return json.Number(strconv.Itoa(n))
}
