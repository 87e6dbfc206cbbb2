// Package testutil holds fixtures and assertions shared by the
// package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/scottcagno/bstmap/internal/demo"
	"github.com/stretchr/testify/assert"
)

// Final is the content of a map after loading the demo data set.
var Final = demo.Final

// Absent are keys the fixture never inserts.
var Absent = []int{2, 3, -4, 56, 30, 6}

// Getter is satisfied by anything the fixture can be checked against.
type Getter interface {
	Get(key int) (string, bool)
}

// Load applies the demo insert sequence to m in order.
func Load(m demo.Inserter) {
	demo.Load(m)
}

// AssertPresent checks that key maps to value in m.
func AssertPresent(t testing.TB, m Getter, key int, value string) bool {
	t.Helper()
	got, ok := m.Get(key)
	if !assert.True(t, ok, "%d is missing", key) {
		return false
	}
	return assert.Equal(t, value, got, "%d should be %s, but found %s", key, value, got)
}

// AssertAbsent checks that key is not present in m.
func AssertAbsent(t testing.TB, m Getter, key int) bool {
	t.Helper()
	_, ok := m.Get(key)
	return assert.False(t, ok, "%d should be absent, but is present", key)
}

// AssertFinal checks that every key of Final except the ones listed
// in skip is present in m with its final value.
func AssertFinal(t testing.TB, m Getter, skip ...int) {
	t.Helper()
	skipped := make(map[int]bool, len(skip))
	for _, k := range skip {
		skipped[k] = true
	}
	for k, v := range Final {
		if skipped[k] {
			continue
		}
		AssertPresent(t, m, k, v)
	}
}

// AssertNone checks that no key of Final except the ones listed in
// keep is present in m.
func AssertNone(t testing.TB, m Getter, keep ...int) {
	t.Helper()
	kept := make(map[int]bool, len(keep))
	for _, k := range keep {
		kept[k] = true
	}
	for k := range Final {
		if kept[k] {
			continue
		}
		AssertAbsent(t, m, k)
	}
}

// MakeKey returns a zero padded string key for i.
func MakeKey(i int) string {
	return fmt.Sprintf("key-%.6d", i)
}

// MakeVal returns a string value for i.
func MakeVal(i int) string {
	return fmt.Sprintf("value-%.16d", i*3)
}
