package entity

// Base holds the store-assigned identity shared by persisted records.
type Base struct {
	ID int64 `json:"id" db:"id"`
}

// IsNew reports whether the record has not been persisted yet.
func (b Base) IsNew() bool {
	return b.ID == 0
}
