package npz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robert-malhotra/go-npy/npy"
)

// Ext is the extension every member name carries inside the archive.
const Ext = ".npy"

// Archive is a set of named arrays. It is immutable after construction.
type Archive struct {
	arrays map[string]*npy.Array // keyed by name with Ext
}

// Item is one named member.
type Item struct {
	Name  string
	Array *npy.Array
}

func memberName(name string) string {
	if strings.HasSuffix(name, Ext) {
		return name
	}
	return name + Ext
}

// New builds an archive from arrays. Names may be given with or without
// the extension but must stay unique once it is applied.
func New(arrays map[string]*npy.Array) (*Archive, error) {
	a := &Archive{arrays: make(map[string]*npy.Array, len(arrays))}
	for name, arr := range arrays {
		if arr == nil {
			return nil, fmt.Errorf("member %q: nil array", name)
		}
		if err := a.add(name, arr); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Archive) add(name string, arr *npy.Array) error {
	key := memberName(name)
	if _, dup := a.arrays[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateMember, key)
	}
	a.arrays[key] = arr
	return nil
}

// Len returns the number of members.
func (a *Archive) Len() int {
	return len(a.arrays)
}

// Keys returns member names without the extension, in no particular order.
func (a *Archive) Keys() []string {
	keys := make([]string, 0, len(a.arrays))
	for key := range a.arrays {
		keys = append(keys, strings.TrimSuffix(key, Ext))
	}
	return keys
}

// Get returns the named member. The name may include the extension.
func (a *Archive) Get(name string) (*npy.Array, bool) {
	arr, ok := a.arrays[memberName(name)]
	return arr, ok
}

// Items returns every member sorted by name, without the extension.
func (a *Archive) Items() []Item {
	items := make([]Item, 0, len(a.arrays))
	for key, arr := range a.arrays {
		items = append(items, Item{Name: strings.TrimSuffix(key, Ext), Array: arr})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
