// Package source provides record collections a dategroup.Mutator can
// follow: Store, backed by on-disk persistence, and Memory.
//
// Sources are not safe for concurrent use. Observers are called
// synchronously, one callback at a time, on the goroutine that changed the
// source.
package source

import (
	"slices"
	"strings"

	"tableflip.dev/daylist/pkg/dategroup"
	"tableflip.dev/daylist/pkg/item"
)

type observers struct {
	list []dategroup.Observer
}

func (o *observers) AddObserver(obs dategroup.Observer) {
	if slices.Contains(o.list, obs) {
		return
	}
	o.list = append(o.list, obs)
}

func (o *observers) RemoveObserver(obs dategroup.Observer) {
	if i := slices.Index(o.list, obs); i >= 0 {
		o.list = slices.Delete(o.list, i, i+1)
	}
}

// each iterates a copy so observers may unsubscribe while notified.
func (o *observers) each(fn func(dategroup.Observer)) {
	for _, obs := range slices.Clone(o.list) {
		fn(obs)
	}
}

func (o *observers) added(items []item.Item) {
	if len(items) == 0 {
		return
	}
	o.each(func(obs dategroup.Observer) { obs.OnItemsAdded(items) })
}

func (o *observers) removed(items []item.Item) {
	if len(items) == 0 {
		return
	}
	o.each(func(obs dategroup.Observer) { obs.OnItemsRemoved(items) })
}

func (o *observers) updated(old, updated item.Item) {
	o.each(func(obs dategroup.Observer) { obs.OnItemUpdated(old, updated) })
}

func snapshot(items map[string]item.Item) []item.Item {
	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	sortByID(out)
	return out
}

func sortByID(items []item.Item) {
	slices.SortFunc(items, func(a, b item.Item) int {
		return strings.Compare(a.ID, b.ID)
	})
}
