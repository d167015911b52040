package services

import (
	"backoffice/internal/core/domain/model/order"
)

// PartitionByStatus splits a collection of reviewed orders into the
// in-progress and completed buckets: Delivered goes to completed, every other
// post-Pending status to inProgress. Relative ordering within each bucket is
// preserved.
//
// The selector keeps the partitioner usable for both domain orders and query
// read models. Pending orders are not expected here; a Pending item is filed
// under inProgress rather than dropped, so nothing silently disappears from a
// board.
func PartitionByStatus[T any](items []T, statusOf func(T) order.Status) (inProgress, completed []T) {
	for _, item := range items {
		if statusOf(item).IsTerminal() {
			completed = append(completed, item)
		} else {
			inProgress = append(inProgress, item)
		}
	}
	return inProgress, completed
}
