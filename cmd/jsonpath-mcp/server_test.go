package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	value, err := readDocument(`{"store":{"name":"Acme"}}`, "$.store.name", false, false)
	require.NoError(t, err)
	assert.Equal(t, "Acme", value)
}

func TestReadDocument_ThrowOnMissing(t *testing.T) {
	_, err := readDocument(`{"a":1}`, "$.missing", true, false)
	assert.Error(t, err)
}

func TestReadDocument_InvalidPath(t *testing.T) {
	_, err := readDocument(`{"a":1}`, "not-a-path", false, false)
	assert.Error(t, err)
}

func TestExistsInDocument(t *testing.T) {
	found, err := existsInDocument(`{"a":1}`, "$.a")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = existsInDocument(`{"a":1}`, "$.b")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewServer_BuildsServerWithLogger(t *testing.T) {
	m := newServer()
	require.NotNil(t, m.srv)
	require.NotNil(t, m.logger)
}
