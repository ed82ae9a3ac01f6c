// Package store persists computed index tables in a bolt database so
// expensive runs can be reused and compared.
package store

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// Float is a float64 which serializes NaN as JSON null, so undefined
// metrics survive a save/load round trip.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Float(math.NaN())
		return nil
	}
	var v float64
	err := json.Unmarshal(b, &v)
	*f = Float(v)
	return err
}

// ResultSet stores the per-gene values of one computed index together
// with run metadata.
type ResultSet struct {
	Index    string           `json:"index"`
	GCodeID  int              `json:"gcode"`
	Values   map[string]Float `json:"values"`
	SavedAt  time.Time        `json:"savedAt"`
	Sequence string           `json:"sequenceFile,omitempty"`
}

// NewResultSet wraps per-gene values for storage.
func NewResultSet(index string, gcodeID int, values map[string]float64) *ResultSet {
	rs := &ResultSet{
		Index:   index,
		GCodeID: gcodeID,
		Values:  make(map[string]Float, len(values)),
		SavedAt: time.Now(),
	}
	for k, v := range values {
		rs.Values[k] = Float(v)
	}
	return rs
}

// Store wraps a bolt database with one bucket per run.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) a result store.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save stores a result set under run/index.
func (s *Store) Save(run string, rs *ResultSet) error {
	if s == nil || s.db == nil {
		return nil
	}
	data, err := json.Marshal(rs)
	if err != nil {
		log.Error("Error serializing results", err)
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(run))
		if err != nil {
			return err
		}
		return b.Put([]byte(rs.Index), data)
	})
	if err != nil {
		log.Error("Error saving results", err)
	}
	return err
}

// Load fetches a result set saved under run/index; nil is returned
// when nothing was stored.
func (s *Store) Load(run, index string) (*ResultSet, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(run))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(index))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}
	rs := &ResultSet{}
	if err := json.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("corrupt result set %s/%s: %w", run, index, err)
	}
	return rs, nil
}

// Runs lists run names present in the store.
func (s *Store) Runs() ([]string, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var runs []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			runs = append(runs, string(name))
			return nil
		})
	})
	return runs, err
}
