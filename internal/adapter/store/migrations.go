package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// SchemaInfo stores the schema version of a packed corpus.
type SchemaInfo struct {
	Version int `json:"version"`
}

// GetSchemaInfo retrieves the current schema info from the database.
func (c *BoltCorpus) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)
		if b == nil {
			return nil
		}
		if data := b.Get(keySchemaVersion); data != nil {
			return json.Unmarshal(data, &info.Version)
		}
		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (c *BoltCorpus) SetSchemaInfo(info *SchemaInfo) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keySchemaVersion, data)
	})
}

// CheckSchema verifies that the file is a corpus this version can read.
// A read-only corpus cannot be migrated; it must be packed again.
func (c *BoltCorpus) CheckSchema() error {
	var missing []string
	err := c.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketBlobs, bucketStats} {
			if tx.Bucket(b) == nil {
				missing = append(missing, string(b))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("not a corpus database: missing buckets %v", missing)
	}

	info, err := c.GetSchemaInfo()
	if err != nil {
		return fmt.Errorf("failed to get schema info: %w", err)
	}
	switch {
	case info.Version == 0:
		return fmt.Errorf("corpus database has no schema version; pack it again")
	case info.Version > CurrentSchemaVersion:
		return fmt.Errorf("corpus created by newer version (v%d > v%d)", info.Version, CurrentSchemaVersion)
	case info.Version < CurrentSchemaVersion:
		return fmt.Errorf("corpus schema v%d is outdated (want v%d); pack it again", info.Version, CurrentSchemaVersion)
	}
	return nil
}
