package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"walk4you-storefront/internal/domain"
)

func line(id, store, storeName string, price float64, qty int) domain.CartLine {
	unit := decimal.NewFromFloat(price)
	return domain.CartLine{
		ID:           id,
		ProductID:    "p-" + id,
		ProductName:  "product " + id,
		ProductPrice: unit,
		Quantity:     qty,
		TotalPrice:   unit.Mul(decimal.NewFromInt(int64(qty))),
		StoreID:      store,
		StoreName:    storeName,
	}
}

func TestGroupByStorePartition(t *testing.T) {
	lines := []domain.CartLine{
		line("a", "s1", "Store One", 100, 2),
		line("b", "s2", "Store Two", 50, 1),
		line("c", "s1", "Store One", 25, 4),
	}

	groups := GroupByStore(lines)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Every line lands in exactly one group, and each group is homogeneous.
	seen := map[string]int{}
	for _, g := range groups {
		for _, l := range g.Items {
			seen[l.ID]++
			if l.StoreID != g.StoreID {
				t.Fatalf("line %s in group %s has store %s", l.ID, g.StoreID, l.StoreID)
			}
		}
	}
	if len(seen) != len(lines) {
		t.Fatalf("expected %d distinct lines across groups, got %d", len(lines), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("line %s appears %d times", id, n)
		}
	}

	// The grouping is lossless: group totals sum to the line totals.
	lineSum := decimal.Zero
	for _, l := range lines {
		lineSum = lineSum.Add(l.TotalPrice)
	}
	groupSum := decimal.Zero
	for _, g := range groups {
		groupSum = groupSum.Add(g.TotalAmount)
	}
	if !groupSum.Equal(lineSum) {
		t.Fatalf("group totals %s != line totals %s", groupSum, lineSum)
	}
}

func TestGroupByStoreFirstSeenOrder(t *testing.T) {
	lines := []domain.CartLine{
		line("a", "s2", "Store Two", 10, 1),
		line("b", "s1", "Store One", 20, 1),
		line("c", "s2", "Store Two", 30, 1),
	}

	groups := GroupByStore(lines)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].StoreID != "s2" || groups[1].StoreID != "s1" {
		t.Fatalf("expected first-seen order s2,s1; got %s,%s", groups[0].StoreID, groups[1].StoreID)
	}
	if groups[0].StoreName != "Store Two" {
		t.Fatalf("unexpected store name %q", groups[0].StoreName)
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected s2 group to hold 2 lines, got %d", len(groups[0].Items))
	}
}

func TestGroupByStoreFreshGroupsUnselected(t *testing.T) {
	groups := GroupByStore([]domain.CartLine{line("a", "s1", "Store One", 10, 1)})
	if groups[0].Selected {
		t.Fatalf("fresh group must not be selected")
	}
}

func TestGroupByStoreEmpty(t *testing.T) {
	if groups := GroupByStore(nil); len(groups) != 0 {
		t.Fatalf("expected no groups for no lines, got %d", len(groups))
	}
}
