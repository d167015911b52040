// Package services contains domain services for order management that
// operate across aggregate boundaries.
//
// EditSession implements the back-office editing workflow for Pending orders:
// a working copy of the order's content that absorbs free-form field writes
// and enforces validation only at commit. PartitionByStatus files reviewed
// orders into the in-progress and completed buckets used by the status
// boards.
package services
