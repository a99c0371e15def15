// Package cache stores analysis results in a bolt database, so the
// same request is only analyzed once.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/feliixx/goseqan/seqan"
)

// log is the global logging variable.
var log = logging.MustGetLogger("cache")

// RESULTS is the name of the bucket holding the results
var RESULTS = []byte("results")

// Cache memoizes seqan.Analyze.
type Cache struct {
	db *bolt.DB
}

// Open opens (or creates) the cache stored in file path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("fail to open cache %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key returns the key of a request. Two requests with the same
// normalized sequence and parameters share the same key.
func Key(req seqan.Request) []byte {
	t := req.Type
	if t != seqan.RNA {
		t = seqan.DNA
	}
	n := req.Notation
	if n != seqan.One {
		n = seqan.Three
	}
	w := req.Window
	if w == 0 {
		w = seqan.DefaultWindow
	}
	return []byte(fmt.Sprintf("%s:%d:%s:%d:%s", t, req.Frame, n, w, seqan.Normalize(req.Sequence)))
}

// Get returns the cached result of req, or nil if there is none.
func (c *Cache) Get(req seqan.Request) (*seqan.Result, error) {

	b, err := LoadData(c.db, Key(req))
	if err != nil || b == nil {
		return nil, err
	}

	var result *seqan.Result
	err = json.Unmarshal(b, &result)
	if err != nil {
		return nil, fmt.Errorf("fail to decode cached result: %w", err)
	}
	log.Debugf("found cached result for %d bases sequence", len(result.Sequence))
	return result, nil
}

// Put stores the result of req.
func (c *Cache) Put(req seqan.Request, result *seqan.Result) error {
	b, err := json.Marshal(result)
	if err != nil {
		log.Error("Error serializing result", err)
		return err
	}
	err = SaveData(c.db, Key(req), b)
	if err != nil {
		log.Error("Error saving result", err)
	}
	return err
}

// Analyze returns the cached result of req, and runs and stores
// the analysis when there is none.
func (c *Cache) Analyze(req seqan.Request) (*seqan.Result, error) {

	result, err := c.Get(req)
	if err != nil {
		log.Warningf("ignoring unreadable cache entry: %v", err)
	}
	if result != nil {
		return result, nil
	}

	result = seqan.Analyze(req)
	return result, c.Put(req, result)
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(RESULTS)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RESULTS)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			// v is only valid during the transaction
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
