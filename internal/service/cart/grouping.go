package cart

import "walk4you-storefront/internal/domain"

// GroupByStore partitions cart lines into per-store groups, preserving the
// order the server returned the lines in: a group appears at the position of
// its first member line. Each group's total is the sum of its lines' totals,
// so summing every group total reproduces the cart total exactly. Selected
// is always false on a fresh grouping.
func GroupByStore(lines []domain.CartLine) []domain.StoreGroup {
	var groups []domain.StoreGroup
	index := make(map[string]int, len(lines))

	for _, line := range lines {
		if i, ok := index[line.StoreID]; ok {
			groups[i].Items = append(groups[i].Items, line)
			groups[i].TotalAmount = groups[i].TotalAmount.Add(line.TotalPrice)
			continue
		}
		index[line.StoreID] = len(groups)
		groups = append(groups, domain.StoreGroup{
			StoreID:     line.StoreID,
			StoreName:   line.StoreName,
			Items:       []domain.CartLine{line},
			TotalAmount: line.TotalPrice,
		})
	}

	return groups
}
