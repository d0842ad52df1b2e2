package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bosgame-linux/fanctl/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketFans = "fans"
)

// Persistence stores the measured RPM-per-level data of each fan, so
// a measurement run survives restarts.
type Persistence interface {
	Init() error

	LoadFanRpmData(fanId string) (map[int]float64, error)
	SaveFanRpmData(fanId string, levelRpmMap map[int]float64) error
	DeleteFanRpmData(fanId string) error
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (p persistence) SaveFanRpmData(fanId string, levelRpmMap map[int]float64) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(levelRpmMap)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketFans))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		return b.Put([]byte(fanId), data)
	})
}

func (p persistence) LoadFanRpmData(fanId string) (map[int]float64, error) {
	db, err := p.openPersistence()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	levelRpmMap := map[int]float64{}
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketFans))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(fanId))
		if v == nil {
			return os.ErrNotExist
		}
		return json.Unmarshal(v, &levelRpmMap)
	})
	if err != nil {
		return nil, err
	}

	return levelRpmMap, nil
}

func (p persistence) DeleteFanRpmData(fanId string) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketFans))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(fanId))
	})
}
