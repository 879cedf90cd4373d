// Package rangetable keeps named, labelled range sets and combines the sets
// selected by a label selector.
package rangetable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-logr/logr"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

type Table[T rangeset.Number] interface {
	Get(name string) (Entry[T], error)
	Add(name string, l labels.Set, ranges ...rangeset.Range[T]) error
	Update(name string, l labels.Set, ranges ...rangeset.Range[T]) error
	Delete(name string) error

	Count() int
	Has(name string) bool

	GetAll() Entries[T]
	GetByLabel(selector labels.Selector) Entries[T]
	UnionByLabel(selector labels.Selector) *rangeset.Set[T]
	IntersectByLabel(selector labels.Selector) *rangeset.Set[T]
}

// ValidationFn is called before an entry is added or updated.
type ValidationFn[T rangeset.Number] func(e Entry[T]) error

type Option[T rangeset.Number] func(*table[T])

func WithLogger[T rangeset.Number](l logr.Logger) Option[T] {
	return func(r *table[T]) { r.log = l }
}

func WithValidation[T rangeset.Number](v ValidationFn[T]) Option[T] {
	return func(r *table[T]) { r.validateFn = v }
}

// WithEntries preloads the table. Initial entries skip the validation
// function.
func WithEntries[T rangeset.Number](entries ...Entry[T]) Option[T] {
	return func(r *table[T]) { r.initEntries = append(r.initEntries, entries...) }
}

func New[T rangeset.Number](opts ...Option[T]) (Table[T], error) {
	r := &table[T]{
		m:     new(sync.RWMutex),
		table: map[string]Entry[T]{},
		log:   logr.Discard(),
	}
	for _, o := range opts {
		o(r)
	}

	var errm error
	for _, e := range r.initEntries {
		if e == nil {
			continue
		}
		if err := r.add(e, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	r.initEntries = nil

	return r, errm
}

type table[T rangeset.Number] struct {
	m           *sync.RWMutex
	table       map[string]Entry[T]
	log         logr.Logger
	validateFn  ValidationFn[T]
	initEntries []Entry[T]
}

func (r *table[T]) Get(name string) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.table[name]
	if !ok {
		return nil, fmt.Errorf("entry %s not found", name)
	}
	return e, nil
}

func (r *table[T]) Add(name string, l labels.Set, ranges ...rangeset.Range[T]) error {
	e, err := NewEntry(name, l, ranges...)
	if err != nil {
		return err
	}

	r.m.Lock()
	defer r.m.Unlock()

	return r.add(e, false)
}

func (r *table[T]) Update(name string, l labels.Set, ranges ...rangeset.Range[T]) error {
	e, err := NewEntry(name, l, ranges...)
	if err != nil {
		return err
	}

	r.m.Lock()
	defer r.m.Unlock()

	return r.update(e)
}

func (r *table[T]) Delete(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.table[name]; !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	delete(r.table, name)
	r.log.V(1).Info("deleted entry", "name", name)
	return nil
}

func (r *table[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table[T]) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[name]
	return ok
}

// GetAll returns all entries sorted by name.
func (r *table[T]) GetAll() Entries[T] {
	return r.GetByLabel(labels.Everything())
}

// GetByLabel returns the entries matching selector sorted by name.
func (r *table[T]) GetByLabel(selector labels.Selector) Entries[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.getByLabel(selector)
}

// UnionByLabel returns every range held by an entry matching selector.
func (r *table[T]) UnionByLabel(selector labels.Selector) *rangeset.Set[T] {
	var b rangeset.Builder[T]
	for _, e := range r.GetByLabel(selector) {
		b.AddSet(e.Set())
	}
	// the sets are valid, so the builder has nothing to report
	set, _ := b.Set()
	return set
}

// IntersectByLabel returns the ranges shared by all entries matching
// selector. It returns an empty set if nothing matches.
func (r *table[T]) IntersectByLabel(selector labels.Selector) *rangeset.Set[T] {
	entries := r.GetByLabel(selector)
	if len(entries) == 0 {
		return &rangeset.Set[T]{}
	}
	set := entries[0].Set()
	for _, e := range entries[1:] {
		set = set.Intersect(e.Set())
	}
	return set
}

func (r *table[T]) getByLabel(selector labels.Selector) Entries[T] {
	entries := make(Entries[T], 0, len(r.table))
	for _, e := range r.table {
		if selector.Matches(e.Labels()) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries
}

func (r *table[T]) validate(e Entry[T], init bool) error {
	if r.validateFn != nil && !init {
		if err := r.validateFn(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *table[T]) add(e Entry[T], init bool) error {
	if err := r.validate(e, init); err != nil {
		return err
	}
	if _, ok := r.table[e.Name()]; ok {
		return fmt.Errorf("entry %s already exists", e.Name())
	}
	r.table[e.Name()] = e
	r.log.V(1).Info("added entry", "name", e.Name(), "ranges", e.Set().String(), "init", init)
	return nil
}

func (r *table[T]) update(e Entry[T]) error {
	if err := r.validate(e, false); err != nil {
		return err
	}
	if _, ok := r.table[e.Name()]; !ok {
		return fmt.Errorf("entry %s not found", e.Name())
	}
	r.table[e.Name()] = e
	r.log.V(1).Info("updated entry", "name", e.Name(), "ranges", e.Set().String())
	return nil
}
