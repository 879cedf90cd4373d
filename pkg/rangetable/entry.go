package rangetable

import (
	"fmt"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry[T rangeset.Number] interface {
	Name() string
	Labels() labels.Set
	Set() *rangeset.Set[T]
	String() string
}

type entry[T rangeset.Number] struct {
	name   string
	labels labels.Set
	set    *rangeset.Set[T]
}

type Entries[T rangeset.Number] []Entry[T]

func (r entry[T]) Name() string          { return r.name }
func (r entry[T]) Labels() labels.Set    { return r.labels }
func (r entry[T]) Set() *rangeset.Set[T] { return r.set }
func (r entry[T]) String() string {
	return fmt.Sprintf("name: %s, ranges: %s, labels: %s", r.name, r.set.String(), r.labels.String())
}

// NewEntry normalizes ranges into an entry. The labels are copied.
func NewEntry[T rangeset.Number](name string, l labels.Set, ranges ...rangeset.Range[T]) (Entry[T], error) {
	var b rangeset.Builder[T]
	for _, r := range ranges {
		b.AddRange(r)
	}
	set, err := b.Set()
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", name, err)
	}
	return entry[T]{
		name:   name,
		labels: labels.Merge(labels.Set{}, l),
		set:    set,
	}, nil
}
