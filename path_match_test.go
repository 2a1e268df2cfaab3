package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeys(t *testing.T) {
	keys := []string{"name", "nickname", "age", "address"}

	assert.Equal(t, []string{"name", "nickname"}, MatchKeys(keys, "n*"))
	assert.Equal(t, []string{"age"}, MatchKeys(keys, "age"))
	assert.Nil(t, MatchKeys(keys, "zzz*"))
	assert.Equal(t, keys, MatchKeys(keys, "*"))
}
