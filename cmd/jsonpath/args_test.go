package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Basic(t *testing.T) {
	args, err := parseArgs([]string{"-path", "$.a", "doc.json"})
	require.NoError(t, err)
	assert.Equal(t, "$.a", args.Path)
	assert.Equal(t, "doc.json", args.FilePath)
}

func TestParseArgs_AllFlags(t *testing.T) {
	args, err := parseArgs([]string{
		"-path", "$.a",
		"-criteria", "crit.yaml",
		"-throw-on-missing",
		"-truthiness",
		"-compact",
		"-gjson",
	})
	require.NoError(t, err)
	assert.Equal(t, "$.a", args.Path)
	assert.Equal(t, "crit.yaml", args.CriteriaPath)
	assert.True(t, args.ThrowOnMissing)
	assert.True(t, args.Truthiness)
	assert.True(t, args.Compact)
	assert.True(t, args.UseGJSONProvider)
}

func TestParseArgs_KeysModeDoesNotRequirePath(t *testing.T) {
	args, err := parseArgs([]string{"-keys", "n*"})
	require.NoError(t, err)
	assert.Equal(t, "n*", args.KeysPattern)
}

func TestParseArgs_MissingPathAndKeysErrors(t *testing.T) {
	_, err := parseArgs([]string{"doc.json"})
	assert.Error(t, err)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := parseArgs([]string{"-path", "$.a", "-bogus"})
	assert.Error(t, err)
}

func TestParseArgs_ExtraPositionalArgument(t *testing.T) {
	_, err := parseArgs([]string{"-path", "$.a", "one.json", "two.json"})
	assert.Error(t, err)
}

func TestParseArgs_FlagMissingValue(t *testing.T) {
	_, err := parseArgs([]string{"-path"})
	assert.Error(t, err)
}
