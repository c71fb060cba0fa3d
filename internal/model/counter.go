package model

// Counter is a named monotonic sequence (invoice, purchase, barcode).
// Increment-and-read happens in a single atomic upsert; two concurrent
// callers never observe the same post-increment value for the same name.
type Counter struct {
	Name     string `gorm:"primaryKey"`
	Sequence int64  `gorm:"not null;default:0"`
}
