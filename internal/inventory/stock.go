package inventory

// CalculateTargetStock derives a restock target from the product's storage
// bounds. A missing bound contributes 0, so both sides must be set for a
// positive target.
func CalculateTargetStock(maxStorageQty, minStorageQty *int) int {
	halfMax := 0
	if maxStorageQty != nil {
		halfMax = *maxStorageQty / 2
	}
	tripleMin := 0
	if minStorageQty != nil {
		tripleMin = *minStorageQty * 3
	}
	if halfMax < tripleMin {
		return halfMax
	}
	return tripleMin
}

// DecrementStock subtracts qty from current, never going below zero.
func DecrementStock(current, qty int) int {
	next := current - qty
	if next < 0 {
		return 0
	}
	return next
}
