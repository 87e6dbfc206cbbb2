// Package demo holds the sample data set loaded by `bstmap demo`
// and reused by the package tests.
package demo

// Record is a single key value pair of the data set.
type Record struct {
	Key   int
	Value string
}

// Inserts is the insert sequence. Keys 22, 4 and 26 are inserted
// twice so the later value overwrites the earlier one.
var Inserts = []Record{
	{9, "Edward"},
	{22, "Jane"},
	{22, "Mary"},
	{0, "Harold"},
	{37, "Victoria"},
	{4, "Matilda"},
	{26, "Oliver"},
	{42, "Elizabeth"},
	{19, "Henry"},
	{4, "Stephen"},
	{24, "James"},
	{-1, "Edward"},
	{31, "Anne"},
	{23, "Elizabeth"},
	{1, "William"},
	{26, "Charles"},
}

// Final is the content of a map after applying Inserts.
var Final = map[int]string{
	22: "Mary",
	4:  "Stephen",
	9:  "Edward",
	1:  "William",
	0:  "Harold",
	24: "James",
	26: "Charles",
	19: "Henry",
	31: "Anne",
	23: "Elizabeth",
	37: "Victoria",
	42: "Elizabeth",
	-1: "Edward",
}

// Inserter is satisfied by anything the data set can be loaded into.
type Inserter interface {
	Insert(key int, value string)
}

// Load applies Inserts to m in order.
func Load(m Inserter) {
	for _, r := range Inserts {
		m.Insert(r.Key, r.Value)
	}
}
