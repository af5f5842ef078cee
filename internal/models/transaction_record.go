package models

// TransactionRecord is the database row backing a Transaction when the store
// persists to SQLite or PostgreSQL. Position keeps the collection's insertion
// order across a full rewrite.
type TransactionRecord struct {
	Position    int     `gorm:"primaryKey;autoIncrement:false"`
	ID          string  `gorm:"column:transaction_id;not null;uniqueIndex"`
	Type        string  `gorm:"not null"`
	Amount      float64 `gorm:"not null"`
	Sender      string  `gorm:"not null"`
	Receiver    string  `gorm:"not null"`
	Timestamp   string
	Status      string
	Reference   string
	Category    *string
	Description *string
}

// TableName pins the table name shared with the SQL migrations.
func (TransactionRecord) TableName() string {
	return "transactions"
}

// NewTransactionRecord converts a transaction into its row at the given position.
func NewTransactionRecord(position int, t Transaction) TransactionRecord {
	return TransactionRecord{
		Position:    position,
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Sender:      t.Sender,
		Receiver:    t.Receiver,
		Timestamp:   t.Timestamp,
		Status:      t.Status,
		Reference:   t.Reference,
		Category:    t.Category,
		Description: t.Description,
	}
}

// Transaction converts the row back into the domain value.
func (r TransactionRecord) Transaction() Transaction {
	return Transaction{
		ID:          r.ID,
		Type:        TransactionType(r.Type),
		Amount:      r.Amount,
		Sender:      r.Sender,
		Receiver:    r.Receiver,
		Timestamp:   r.Timestamp,
		Status:      r.Status,
		Reference:   r.Reference,
		Category:    r.Category,
		Description: r.Description,
	}
}
