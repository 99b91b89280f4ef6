package storage

import (
	"fmt"
	"sync"

	"github.com/google/btree"
	"github.com/pkg/errors"

	"github.com/cube2222/octovalue/value"
)

const BTreeDefaultDegree = 8

var ErrIncomparable = errors.New("values aren't comparable")

// SortedSet is a multiset of values kept in value.Compare order.
// Values that compare equal share one entry, floats within value.Epsilon included.
type SortedSet struct {
	sync.Mutex
	tree *btree.BTree
	kind value.AttrType
}

type valueCount struct {
	value value.Value
	count int
}

func (key *valueCount) Less(than btree.Item) bool {
	thanTyped, ok := than.(*valueCount)
	if !ok {
		panic(fmt.Sprintf("invalid key comparison: %T", than))
	}

	return key.value.Compare(thanTyped.value) < 0
}

func NewSortedSet() *SortedSet {
	return &SortedSet{
		tree: btree.New(BTreeDefaultDegree),
		kind: value.AttrUndefined,
	}
}

// orderable reports whether two non-null kinds have a defined ordering.
func orderable(left, right value.AttrType) bool {
	if left == right {
		return left != value.AttrUndefined
	}
	numeric := func(t value.AttrType) bool { return t == value.AttrInts || t == value.AttrFloats }
	return numeric(left) && numeric(right)
}

func (set *SortedSet) check(v value.Value) error {
	t := v.AttrType()
	if t == value.AttrNull {
		return nil
	}
	if t == value.AttrUndefined {
		return errors.Wrap(ErrIncomparable, "undefined value")
	}
	if set.kind != value.AttrUndefined && !orderable(set.kind, t) {
		return errors.Wrapf(ErrIncomparable, "can't mix %s with %s", set.kind, t)
	}
	return nil
}

func (set *SortedSet) Insert(v value.Value) error {
	set.Lock()
	defer set.Unlock()

	if err := set.check(v); err != nil {
		return err
	}
	if set.kind == value.AttrUndefined && !v.IsNull() {
		set.kind = v.AttrType()
	}

	out := set.tree.Get(&valueCount{value: v})
	if out == nil {
		var stored value.Value
		stored.SetValue(v)
		out = &valueCount{
			value: stored,
			count: 0,
		}
	}
	out.(*valueCount).count++

	set.tree.ReplaceOrInsert(out)

	return nil
}

// Erase removes one occurrence of v. Erasing a missing value is a no-op.
func (set *SortedSet) Erase(v value.Value) error {
	set.Lock()
	defer set.Unlock()

	if err := set.check(v); err != nil {
		return err
	}

	out := set.tree.Get(&valueCount{value: v})
	if out == nil {
		return nil
	}

	item := out.(*valueCount)
	item.count--
	if item.count == 0 {
		set.tree.Delete(item)
	}

	return nil
}

func (set *SortedSet) GetCount(v value.Value) (int, error) {
	set.Lock()
	defer set.Unlock()

	if err := set.check(v); err != nil {
		return 0, err
	}

	out := set.tree.Get(&valueCount{value: v})
	if out == nil {
		return 0, nil
	}

	return out.(*valueCount).count, nil
}

// Len returns the number of distinct values.
func (set *SortedSet) Len() int {
	set.Lock()
	defer set.Unlock()

	return set.tree.Len()
}

func (set *SortedSet) Clear() {
	set.Lock()
	defer set.Unlock()

	set.tree = btree.New(BTreeDefaultDegree)
	set.kind = value.AttrUndefined
}

// Ascend calls fn for every distinct value in order, with its count, until fn returns false.
func (set *SortedSet) Ascend(fn func(v value.Value, count int) bool) {
	set.Lock()
	defer set.Unlock()

	set.tree.Ascend(func(item btree.Item) bool {
		typed := item.(*valueCount)
		return fn(typed.value, typed.count)
	})
}

// ReadAll returns every value in order, repeated as many times as it was inserted.
func (set *SortedSet) ReadAll() []value.Value {
	var items []value.Value
	set.Ascend(func(v value.Value, count int) bool {
		for i := 0; i < count; i++ {
			items = append(items, v)
		}
		return true
	})

	return items
}

func (set *SortedSet) Min() (value.Value, bool) {
	set.Lock()
	defer set.Unlock()

	out := set.tree.Min()
	if out == nil {
		return value.Value{}, false
	}
	return out.(*valueCount).value, true
}

func (set *SortedSet) Max() (value.Value, bool) {
	set.Lock()
	defer set.Unlock()

	out := set.tree.Max()
	if out == nil {
		return value.Value{}, false
	}
	return out.(*valueCount).value, true
}
