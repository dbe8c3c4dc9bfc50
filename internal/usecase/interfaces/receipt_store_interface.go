package interfaces

import "context"

// IReceiptStore abstracts external blob storage for deposit receipts
// (e.g. S3). Upload must return a publicly dereferenceable URL; the
// submission gate persists that URL on the booking record.
type IReceiptStore interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (url string, err error)
}
