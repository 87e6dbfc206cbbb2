package bstree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/scottcagno/bstmap/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func collectKeys[K any, V any](m *Map[K, V]) []K {
	var keys []K
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func TestMap_AllOrdered(t *testing.T) {
	m := newFixture(t)
	var want []int
	for k := range testutil.Final {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, collectKeys(m))
	for k, v := range m.All() {
		assert.Equal(t, testutil.Final[k], v)
	}
}

func TestMap_AllEmpty(t *testing.T) {
	m := New[int, string]()
	for range m.All() {
		t.Fatal("empty map yielded an entry")
	}
}

func TestMap_AllEarlyStop(t *testing.T) {
	m := newFixture(t)
	var got []int
	for k := range m.All() {
		if k > 4 {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []int{-1, 0, 1, 4}, got)
}

func TestMap_AllRestartable(t *testing.T) {
	m := newFixture(t)
	seq := m.All()
	var first, second int
	for range seq {
		first++
	}
	m.Insert(100, "Alfred")
	for range seq {
		second++
	}
	assert.Equal(t, len(testutil.Final), first)
	assert.Equal(t, first+1, second)
}

// signature: Scan(fn Iterator[K, V])
func TestMap_Scan(t *testing.T) {
	m := newFixture(t)
	var got []Entry[int, string]
	m.Scan(func(e Entry[int, string]) bool {
		got = append(got, e)
		return len(got) < 3
	})
	assert.Equal(t, []Entry[int, string]{
		{Key: -1, Value: "Edward"},
		{Key: 0, Value: "Harold"},
		{Key: 1, Value: "William"},
	}, got)
}

func TestMap_OrderAfterRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := New[int, int]()
	for i := 0; i < 4*thousand; i++ {
		k := r.Intn(500)
		if r.Intn(3) == 0 {
			m.Remove(k)
		} else {
			m.Insert(k, i)
		}
		if i%250 == 0 {
			keys := collectKeys(m)
			assert.True(t, sort.IntsAreSorted(keys))
			assert.Len(t, keys, m.Len())
		}
	}
	checkTree(t, m)
}
