package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"walk4you-storefront/internal/domain"
)

func twoStoreLines() []domain.CartLine {
	return []domain.CartLine{
		line("a", "s1", "Store One", 100, 2), // total 200
		line("b", "s2", "Store Two", 50, 1),  // total 50
	}
}

func TestSelectionTwoStoreScenario(t *testing.T) {
	sel := NewSelection(twoStoreLines())

	groups := sel.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if !groups[0].TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("s1 total = %s, want 200", groups[0].TotalAmount)
	}
	if !groups[1].TotalAmount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("s2 total = %s, want 50", groups[1].TotalAmount)
	}

	sel.SetStore("s1", true)

	if got := sel.SelectedTotal(); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("selected total = %s, want 200", got)
	}
	if got := sel.SelectedItemCount(); got != 1 {
		t.Fatalf("selected item count = %d, want 1", got)
	}
	if sel.AllSelected() {
		t.Fatalf("select-all must not show checked with one of two groups selected")
	}
}

func TestSelectionNoneSelected(t *testing.T) {
	sel := NewSelection(twoStoreLines())

	if got := sel.SelectedTotal(); !got.IsZero() {
		t.Fatalf("selected total = %s, want 0", got)
	}
	if got := sel.SelectedItemCount(); got != 0 {
		t.Fatalf("selected item count = %d, want 0", got)
	}
	if got := sel.SelectedGroups(); len(got) != 0 {
		t.Fatalf("expected no selected groups, got %d", len(got))
	}
}

func TestSelectionSelectAllMatchesCartTotal(t *testing.T) {
	lines := []domain.CartLine{
		line("a", "s1", "Store One", 100, 2),
		line("b", "s2", "Store Two", 50, 1),
		line("c", "s3", "Store Three", 19.99, 3),
	}
	cartTotal := decimal.Zero
	for _, l := range lines {
		cartTotal = cartTotal.Add(l.TotalPrice)
	}

	sel := NewSelection(lines)
	sel.SetAll(true)

	if !sel.AllSelected() {
		t.Fatalf("expected select-all checked")
	}
	if got := sel.SelectedTotal(); !got.Equal(cartTotal) {
		t.Fatalf("selected total %s != cart total %s", got, cartTotal)
	}
	if got := sel.SelectedItemCount(); got != len(lines) {
		t.Fatalf("selected item count = %d, want %d", got, len(lines))
	}
}

func TestSelectionLastGroupTickChecksSelectAll(t *testing.T) {
	sel := NewSelection(twoStoreLines())

	sel.SetStore("s1", true)
	if sel.AllSelected() {
		t.Fatalf("select-all checked too early")
	}
	sel.SetStore("s2", true)
	if !sel.AllSelected() {
		t.Fatalf("select-all must show checked once every group is selected")
	}
	sel.SetStore("s1", false)
	if sel.AllSelected() {
		t.Fatalf("select-all must uncheck when a group is deselected")
	}
}

func TestSelectionAllSelectedEmpty(t *testing.T) {
	sel := NewSelection(nil)
	if sel.AllSelected() {
		t.Fatalf("select-all must not show checked with zero groups")
	}
}

func TestSelectionReloadResetsSelection(t *testing.T) {
	sel := NewSelection(twoStoreLines())
	sel.SetAll(true)

	// A refresh after, say, a quantity edit rebuilds the groups and drops
	// the ticks.
	sel.Reload(twoStoreLines())

	if got := sel.SelectedItemCount(); got != 0 {
		t.Fatalf("selection survived reload: %d items still selected", got)
	}
	if sel.AllSelected() {
		t.Fatalf("select-all survived reload")
	}
}

func TestSelectionUnknownStoreIgnored(t *testing.T) {
	sel := NewSelection(twoStoreLines())
	sel.SetStore("nope", true)
	if got := sel.SelectedItemCount(); got != 0 {
		t.Fatalf("unknown store selection must be ignored, got %d items", got)
	}
}
