package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"nlpwalk/internal/domain"
	"nlpwalk/internal/port"
)

var (
	bucketDocs  = []byte("docs")
	bucketBlobs = []byte("blobs")
	bucketStats = []byte("stats")
)

// BoltCorpus is a corpus collection packed into a single bbolt file.
// Opened with OpenBoltCorpus it is read-only.
type BoltCorpus struct {
	db       *bbolt.DB
	readOnly bool
}

// CreateBoltCorpus creates (or truncates) a writable corpus at path.
func CreateBoltCorpus(path string) (*BoltCorpus, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketBlobs, bucketStats} {
			if tx.Bucket(b) != nil {
				if err := tx.DeleteBucket(b); err != nil {
					return fmt.Errorf("failed to reset bucket %s: %w", b, err)
				}
			}
			if _, err := tx.CreateBucket(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	c := &BoltCorpus{db: db}
	if err := c.SetSchemaInfo(&SchemaInfo{Version: CurrentSchemaVersion}); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// OpenBoltCorpus opens an existing corpus read-only.
func OpenBoltCorpus(path string) (*BoltCorpus, error) {
	db, err := bbolt.Open(path, 0400, &bbolt.Options{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}
	c := &BoltCorpus{db: db, readOnly: true}
	if err := c.CheckSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *BoltCorpus) PutDoc(doc domain.Document, text string) error {
	if c.readOnly {
		return fmt.Errorf("corpus is read-only")
	}
	doc.Size = int64(len(text))
	doc.Hash = ContentHash(text)
	return c.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketDocs).Put([]byte(doc.Name), data); err != nil {
			return err
		}
		return tx.Bucket(bucketBlobs).Put([]byte(doc.Name), []byte(text))
	})
}

func (c *BoltCorpus) GetDoc(name string) (domain.Document, error) {
	var doc domain.Document
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %s", port.ErrDocumentNotFound, name)
		}
		return json.Unmarshal(data, &doc)
	})
	return doc, err
}

func (c *BoltCorpus) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var doc domain.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("document %s: %w", k, err)
			}
			docs = append(docs, doc)
			return nil
		})
	})
	return docs, err
}

// Raw returns the stored text of the named document.
func (c *BoltCorpus) Raw(name string) (string, error) {
	var text string
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketBlobs).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %s", port.ErrDocumentNotFound, name)
		}
		text = string(data)
		return nil
	})
	return text, err
}

func (c *BoltCorpus) Names() ([]string, error) {
	var names []string
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBlobs).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	sort.Strings(names)
	return names, err
}

func (c *BoltCorpus) Close() error {
	return c.db.Close()
}

// ContentHash returns a short hex digest of text.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:8])
}
