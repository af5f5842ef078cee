package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"momoapi/internal/models"
)

// ErrSourceMissing is returned by a Persister when there is nothing to load yet.
var ErrSourceMissing = errors.New("persisted collection not found")

// Persister reads and rewrites the whole transaction collection.
type Persister interface {
	Load() ([]models.Transaction, error)
	Save(records []models.Transaction) error
	Describe() string
}

// JSONFilePersister stores the collection as an indented JSON array. When the
// primary file is absent it falls back to SeedPath (an ETL output file) for
// reading; writes always go to Path.
type JSONFilePersister struct {
	Path     string
	SeedPath string
}

// NewJSONFilePersister creates a persister for path with an optional seed file.
func NewJSONFilePersister(path, seedPath string) *JSONFilePersister {
	return &JSONFilePersister{Path: path, SeedPath: seedPath}
}

// Describe returns the file the collection is written to.
func (p *JSONFilePersister) Describe() string { return "file:" + p.Path }

// Load reads the primary file, or the seed file when the primary is missing.
func (p *JSONFilePersister) Load() ([]models.Transaction, error) {
	for _, path := range []string{p.Path, p.SeedPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records, err := DecodeCollection(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return records, nil
	}
	return nil, ErrSourceMissing
}

// Save writes records to a temporary file next to Path and renames it over
// Path, so a crash mid-write leaves the previous file intact.
func (p *JSONFilePersister) Save(records []models.Transaction) error {
	data, err := EncodeCollection(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".transactions-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, p.Path); err != nil {
		return fmt.Errorf("replace %s: %w", p.Path, err)
	}
	return nil
}

// DecodeCollection accepts either a bare JSON array of transactions or an
// object wrapping the array under "transactions".
func DecodeCollection(data []byte) ([]models.Transaction, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}

	switch trimmed[0] {
	case '[':
		var records []models.Transaction
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		var wrapper struct {
			Transactions *[]models.Transaction `json:"transactions"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, err
		}
		if wrapper.Transactions == nil {
			return nil, errors.New(`object has no "transactions" array`)
		}
		return *wrapper.Transactions, nil
	default:
		return nil, errors.New("expected a JSON array or object")
	}
}

// EncodeCollection renders records as an indented JSON array. A nil slice is
// written as [].
func EncodeCollection(records []models.Transaction) ([]byte, error) {
	if records == nil {
		records = []models.Transaction{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode transactions: %w", err)
	}
	return append(data, '\n'), nil
}

// GormPersister stores the collection in the transactions table, rewriting it
// inside a single database transaction on every save.
type GormPersister struct {
	db *gorm.DB
}

// NewGormPersister creates a persister over an already migrated database.
func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

// Describe names the backing database dialect.
func (p *GormPersister) Describe() string { return "db:" + p.db.Dialector.Name() }

// Load reads all rows in position order.
func (p *GormPersister) Load() ([]models.Transaction, error) {
	var rows []models.TransactionRecord
	if err := p.db.Order("position").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	records := make([]models.Transaction, len(rows))
	for i, row := range rows {
		records[i] = row.Transaction()
	}
	return records, nil
}

// Save replaces every row with the given collection.
func (p *GormPersister) Save(records []models.Transaction) error {
	return p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.TransactionRecord{}).Error; err != nil {
			return fmt.Errorf("clear transactions: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		rows := make([]models.TransactionRecord, len(records))
		for i, t := range records {
			rows[i] = models.NewTransactionRecord(i+1, t)
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("insert transactions: %w", err)
		}
		return nil
	})
}
