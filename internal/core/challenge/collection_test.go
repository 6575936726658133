package challenge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_FindByDate(t *testing.T) {
	jan2 := NewDate(2026, time.January, 2)
	first := New(jan2, "first")
	second := New(jan2, "second")
	coll := Collection{New(NewDate(2026, time.January, 1), "other"), first, second}

	got, ok := coll.FindByDate(jan2)
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = coll.FindByDate(NewDate(2026, time.January, 3))
	assert.False(t, ok)

	_, ok = Collection(nil).FindByDate(jan2)
	assert.False(t, ok)
}

func TestCollection_AddOrReuse_Inserts(t *testing.T) {
	var coll Collection
	jan2 := NewDate(2026, time.January, 2)

	ch, created := coll.AddOrReuse("write tests", jan2, false)

	require.True(t, created)
	require.Len(t, coll, 1)
	assert.Same(t, ch, coll[0])
	assert.Equal(t, StatusPending, ch.Status())
	assert.Equal(t, "write tests", ch.Description())
}

func TestCollection_AddOrReuse_MarkComplete(t *testing.T) {
	var coll Collection

	ch, created := coll.AddOrReuse("done already", NewDate(2026, time.January, 2), true)

	require.True(t, created)
	assert.Equal(t, StatusCompleted, ch.Status())
}

func TestCollection_AddOrReuse_Deduplicates(t *testing.T) {
	jan2 := NewDate(2026, time.January, 2)
	existing := New(jan2, "original")
	coll := Collection{existing}

	ch, created := coll.AddOrReuse("candidate", jan2, true)

	assert.False(t, created)
	assert.Same(t, existing, ch)
	assert.Len(t, coll, 1)
	assert.Equal(t, "original", ch.Description())
	assert.Equal(t, StatusPending, ch.Status())
}

func TestCollection_AddOrReuse_AppendsInInsertionOrder(t *testing.T) {
	var coll Collection
	coll.AddOrReuse("later", NewDate(2026, time.March, 1), false)
	coll.AddOrReuse("earlier", NewDate(2026, time.January, 1), false)

	require.Len(t, coll, 2)
	assert.Equal(t, "later", coll[0].Description())
	assert.Equal(t, "earlier", coll[1].Description())
}

func TestCollection_MarkCompletedByDate(t *testing.T) {
	jan2 := NewDate(2026, time.January, 2)
	coll := Collection{New(jan2, "x")}

	ch, ok := coll.MarkCompletedByDate(jan2)
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, ch.Status())
	assert.Equal(t, StatusCompleted, coll[0].Status())

	_, ok = coll.MarkCompletedByDate(NewDate(2026, time.January, 3))
	assert.False(t, ok)
}
