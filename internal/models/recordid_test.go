package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIDUnmarshalMixed(t *testing.T) {
	var ids []RecordID
	require.NoError(t, json.Unmarshal([]byte(`[1, "abc", "7"]`), &ids))
	assert.Equal(t, []RecordID{"1", "abc", "7"}, ids)
}

func TestRecordIDMarshal(t *testing.T) {
	data, err := json.Marshal([]RecordID{"3", "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `[3, "abc"]`, string(data))
}

func TestRecordIDMarshalNonCanonicalNumeric(t *testing.T) {
	data, err := json.Marshal([]RecordID{"007", "+7", "-3"})
	require.NoError(t, err)
	assert.JSONEq(t, `["007", "+7", -3]`, string(data))

	var ids []RecordID
	require.NoError(t, json.Unmarshal(data, &ids))
	assert.Equal(t, []RecordID{"007", "+7", "-3"}, ids)
}

func TestRecordIDInt(t *testing.T) {
	n, ok := RecordID("42").Int()
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = RecordID("abc").Int()
	assert.False(t, ok)
}

func TestRecordIDScan(t *testing.T) {
	var id RecordID
	require.NoError(t, id.Scan(int64(9)))
	assert.Equal(t, RecordID("9"), id)

	require.NoError(t, id.Scan("slug"))
	assert.Equal(t, RecordID("slug"), id)

	require.NoError(t, id.Scan(nil))
	assert.Equal(t, RecordID(""), id)

	assert.Error(t, id.Scan(3.14))
}

func TestRecordIDValue(t *testing.T) {
	v, err := RecordID("5").Value()
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = RecordID("abc").Value()
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestNextRecordID(t *testing.T) {
	assert.Equal(t, RecordID("8"), NextRecordID([]RecordID{"1", "3", "7"}))
	assert.Equal(t, RecordID("1"), NextRecordID(nil))
	assert.Equal(t, RecordID("2"), NextRecordID([]RecordID{"1", "abc"}))
}
