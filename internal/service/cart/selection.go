package cart

import (
	"github.com/shopspring/decimal"

	"walk4you-storefront/internal/domain"
)

// Selection tracks which store groups the user ticked on the cart screen
// and derives the totals the checkout hand-off needs. It is not safe for
// concurrent use; each cart screen session owns one.
type Selection struct {
	groups []domain.StoreGroup
}

// NewSelection groups the given cart lines with nothing selected.
func NewSelection(lines []domain.CartLine) *Selection {
	return &Selection{groups: GroupByStore(lines)}
}

// Reload rebuilds the grouping from a fresh line list. Any previously set
// selections are dropped: a cart refresh triggered by, say, a quantity edit
// resets every tick box. That mirrors the original screen's behavior and is
// kept deliberately even though it can surprise the user.
func (s *Selection) Reload(lines []domain.CartLine) {
	s.groups = GroupByStore(lines)
}

// Groups returns the current groups in display order.
func (s *Selection) Groups() []domain.StoreGroup {
	out := make([]domain.StoreGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

// SetStore sets one group's selected flag. Unknown store ids are ignored.
func (s *Selection) SetStore(storeID string, selected bool) {
	for i := range s.groups {
		if s.groups[i].StoreID == storeID {
			s.groups[i].Selected = selected
			return
		}
	}
}

// SetAll sets every group's selected flag to the same value.
func (s *Selection) SetAll(selected bool) {
	for i := range s.groups {
		s.groups[i].Selected = selected
	}
}

// AllSelected reports whether the "select all" box should show as checked:
// true only when there is at least one group and every group is selected.
func (s *Selection) AllSelected() bool {
	if len(s.groups) == 0 {
		return false
	}
	for _, g := range s.groups {
		if !g.Selected {
			return false
		}
	}
	return true
}

// SelectedGroups returns the selected groups in display order.
func (s *Selection) SelectedGroups() []domain.StoreGroup {
	var out []domain.StoreGroup
	for _, g := range s.groups {
		if g.Selected {
			out = append(out, g)
		}
	}
	return out
}

// SelectedTotal sums the totals of the selected groups.
func (s *Selection) SelectedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, g := range s.groups {
		if g.Selected {
			total = total.Add(g.TotalAmount)
		}
	}
	return total
}

// SelectedItemCount counts the cart lines in the selected groups. Each line
// counts once regardless of its quantity.
func (s *Selection) SelectedItemCount() int {
	count := 0
	for _, g := range s.groups {
		if g.Selected {
			count += len(g.Items)
		}
	}
	return count
}
