package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMatchesDemoTable(t *testing.T) {
	seed := Seed()
	require.Len(t, seed, 5)
	assert.Equal(t, "PO-2024-001", seed[0].Key())
	assert.True(t, seed[1].Locked)
	assert.Equal(t, 100, seed[3].Value(ColProgress))
}

func TestSetParsesColumns(t *testing.T) {
	o := Seed()[0]
	require.NoError(t, o.Set(ColProgress, "80%"))
	require.NoError(t, o.Set(ColDueDate, "2024-04-01"))
	require.NoError(t, o.Set(ColLocked, "true"))
	assert.Equal(t, 80, o.Progress)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), o.DueDate)
	assert.True(t, o.Locked)
	assert.Equal(t, "2024-04-01", o.Text(ColDueDate))

	assert.Error(t, o.Set(ColID, "X"))
	assert.Error(t, o.Set(ColProgress, "150"))
	assert.Error(t, o.Set(ColName, " "))
	assert.Error(t, o.Set("nope", "1"))
}

func TestCopy(t *testing.T) {
	o := Seed()[1]
	dup := o.Copy("new-id")
	assert.Equal(t, "new-id", dup.ID)
	assert.Equal(t, o.Name+" (Copy)", dup.Name)
	assert.Equal(t, StatusDraft, dup.Status)
	assert.False(t, dup.Locked)
}

func TestGenerate(t *testing.T) {
	rows := Generate(1000)
	require.Len(t, rows, 1000)
	assert.Equal(t, "GEN-00001", rows[0].ID)
	assert.Equal(t, "GEN-01000", rows[999].ID)
}

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("  in progress ")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, got)

	got, err = ParseStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got)

	_, err = ParseStatus("updated")
	assert.ErrorContains(t, err, "unknown status")
}
