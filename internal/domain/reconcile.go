package domain

import "math"

// reconcileTolerance absorbs rounding noise in extracted amounts.
const reconcileTolerance = 0.01

// ReconcileLineItem resolves a disagreement between an item's stated total
// and the product of quantity and price. The stated total wins; the product
// is only used to fill a missing total. Trusting the extracted total over
// the derived product is a business-rule choice carried over from the
// review flow, not a derived invariant.
func ReconcileLineItem(item LineItem) LineItem {
	if item.Total != 0 {
		return item
	}
	if item.Price != nil {
		item.Total = round2(item.Quantity * *item.Price)
	}
	return item
}

// ReconcileRecordData reconciles every line item and fills a missing record
// total with the sum of the item totals. A stated record total is kept even
// when the items sum to something else.
func ReconcileRecordData(data RecordData) RecordData {
	var sum float64
	for i := range data.Items {
		data.Items[i] = ReconcileLineItem(data.Items[i])
		sum += data.Items[i].Total
	}
	if math.Abs(data.Total) < reconcileTolerance {
		data.Total = round2(sum)
	}
	return data
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
