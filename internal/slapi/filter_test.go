package slapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEq(t *testing.T) {
	f := FilterEq("dal13", "name")
	encoded, err := f.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":{"operation":"dal13"}}`, encoded)
}

func TestFilterEq_NestedPath(t *testing.T) {
	f := FilterEq("PORTABLE_STORAGE", "type", "keyName")
	encoded, err := f.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":{"keyName":{"operation":"PORTABLE_STORAGE"}}}`, encoded)
}

func TestFilterContains(t *testing.T) {
	f := FilterContains("web", "virtualGuests", "hostname")
	encoded, err := f.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"virtualGuests":{"hostname":{"operation":"*= web"}}}`, encoded)
}

func TestFilterIn(t *testing.T) {
	f := FilterIn([]string{"dal10", "dal12"}, "datacenterName")
	encoded, err := f.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"datacenterName": {
			"operation": "in",
			"options": [{"name": "data", "value": ["dal10", "dal12"]}]
		}
	}`, encoded)
}

func TestMerge(t *testing.T) {
	f := Merge(
		FilterEq("PORTABLE_STORAGE", "type", "keyName"),
		FilterEq(1, "isActive"),
	)
	encoded, err := f.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": {"keyName": {"operation": "PORTABLE_STORAGE"}},
		"isActive": {"operation": 1}
	}`, encoded)
}

func TestNest_EmptyPath(t *testing.T) {
	f := FilterEq("x")
	encoded, err := f.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, encoded)
}
