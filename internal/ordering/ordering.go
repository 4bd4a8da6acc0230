// Package ordering holds the deterministic read orders shared by the managers.
// Every order ends with the record id so that ties fall back to insertion order
// rather than to whatever order the storage engine returned.
package ordering

import (
	"cmp"
	"slices"

	"github.com/kingrain94/dashboard-config-api/internal/domain"
)

// Key compares two items on a single attribute.
type Key[T any] func(a, b T) int

// By builds a Key from an ordered attribute.
func By[T any, V cmp.Ordered](attr func(T) V) Key[T] {
	return func(a, b T) int {
		return cmp.Compare(attr(a), attr(b))
	}
}

// Stable sorts items in place by the key tuple, ascending.
func Stable[T any](items []T, keys ...Key[T]) []T {
	slices.SortStableFunc(items, func(a, b T) int {
		for _, key := range keys {
			if c := key(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return items
}

var dashboardKeys = []Key[domain.Dashboard]{
	func(a, b domain.Dashboard) int { return a.CreatedAt.Compare(b.CreatedAt) },
	By(func(d domain.Dashboard) uint { return d.ID }),
}

var componentKeys = []Key[domain.DashboardComponent]{
	By(func(c domain.DashboardComponent) int { return c.PositionY }),
	By(func(c domain.DashboardComponent) int { return c.PositionX }),
	By(func(c domain.DashboardComponent) uint { return c.ID }),
}

// Dashboards orders by creation time, oldest first.
func Dashboards(dashboards []domain.Dashboard) []domain.Dashboard {
	return Stable(dashboards, dashboardKeys...)
}

// Components orders in grid reading order: top to bottom, then left to right.
func Components(components []domain.DashboardComponent) []domain.DashboardComponent {
	return Stable(components, componentKeys...)
}
