package script

import (
	"fmt"
	"io"
	"sort"

	"github.com/ansel1/merry"
	"github.com/scottcagno/bstmap/pkg/bstree"
	"github.com/sirupsen/logrus"
)

// Result summarises a finished run.
type Result struct {
	Steps int            // steps executed
	Lens  map[string]int // final entry count per map
}

// Runner executes scripts against a set of named maps. Maps are
// created empty the first time a step names them and persist across
// runs of the same Runner.
type Runner struct {
	maps map[string]*bstree.Map[int, string]
	out  io.Writer
	log  *logrus.Entry
}

// NewRunner returns a Runner writing entries and tree output to out.
// A nil log disables logging.
func NewRunner(out io.Writer, log *logrus.Entry) *Runner {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Runner{
		maps: make(map[string]*bstree.Map[int, string]),
		out:  out,
		log:  log,
	}
}

// Map returns the map called name, creating it if needed.
func (r *Runner) Map(name string) *bstree.Map[int, string] {
	m, ok := r.maps[name]
	if !ok {
		m = bstree.New[int, string](bstree.WithLogger(r.log.WithField("map", name)))
		r.maps[name] = m
	}
	return m
}

// Names returns the names of all maps in sorted order.
func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes every step of s in order and stops at the first
// failing step.
func (r *Runner) Run(s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	res := &Result{Lens: make(map[string]int)}
	for i := range s.Steps {
		st := &s.Steps[i]
		r.log.WithFields(logrus.Fields{"step": i, "op": st.Op, "map": st.Map}).Debug("step")
		if err := r.exec(st); err != nil {
			return res, stepError(err, i, string(st.Op))
		}
		res.Steps++
	}
	for name, m := range r.maps {
		res.Lens[name] = m.Len()
	}
	r.log.WithField("steps", res.Steps).Info("script finished")
	return res, nil
}

func (r *Runner) exec(st *Step) error {
	m := r.Map(st.Map)
	switch st.Op {
	case OpInsert:
		m.Insert(*st.Key, *st.Value)
	case OpRemove:
		m.Remove(*st.Key)
	case OpLookup:
		got := m.Lookup(*st.Key)
		if st.Absent {
			if got != nil {
				return merry.WithMessagef(ErrExpectation,
					"script: %s[%d]: want absent, got %q", st.Map, *st.Key, *got)
			}
			return nil
		}
		if got == nil {
			return merry.WithMessagef(ErrExpectation,
				"script: %s[%d]: want %q, got absent", st.Map, *st.Key, *st.Expect)
		}
		if *got != *st.Expect {
			return merry.WithMessagef(ErrExpectation,
				"script: %s[%d]: want %q, got %q", st.Map, *st.Key, *st.Expect, *got)
		}
	case OpLen:
		if m.Len() != *st.Count {
			return merry.WithMessagef(ErrExpectation,
				"script: %s: want %d entries, got %d", st.Map, *st.Count, m.Len())
		}
	case OpCopy:
		m.CopyFrom(r.Map(st.From))
	case OpMove:
		m.MoveFrom(r.Map(st.From))
	case OpEntries:
		if _, err := fmt.Fprintf(r.out, "# %s entries\n", st.Map); err != nil {
			return merry.Wrap(err)
		}
		if err := m.WriteEntries(r.out); err != nil {
			return merry.Wrap(err)
		}
	case OpTree:
		if _, err := fmt.Fprintf(r.out, "# %s tree\n", st.Map); err != nil {
			return merry.Wrap(err)
		}
		if err := m.WriteTree(r.out); err != nil {
			return merry.Wrap(err)
		}
	case OpClose:
		m.Close()
	}
	return nil
}

// Close releases every map held by the runner.
func (r *Runner) Close() {
	for name, m := range r.maps {
		m.Close()
		delete(r.maps, name)
	}
}
