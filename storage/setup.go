// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Kitties        *PoolHandle `prefix:"K"`
	KittyOwner     *PoolHandle `prefix:"O"`
	AllPositions   *PoolHandle `prefix:"A"`
	AllIndex       *PoolHandle `prefix:"I"`
	OwnedPositions *PoolHandle `prefix:"L"`
	OwnedIndex     *PoolHandle `prefix:"D"`
	Counts         *PoolHandle `prefix:"N"`
	Balances       *PoolHandle `prefix:"C"`
	Values         *PoolHandle `prefix:"V"`
	Sequences      *PoolHandle `prefix:"Q"`
	TestData       *PoolHandle `prefix:"Z"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open LevelDB with its pools and single write transaction
type Database struct {
	sync.RWMutex
	db   *leveldb.DB
	trx  *transaction
	log  *logger.L
	Pool Pools
}

// Open - open up the database file
func Open(name string, readOnly bool) (*Database, error) {
	log := logger.New("storage")

	db, version, err := getDB(name, readOnly)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentVersion)
		db.Close()
		return nil, fault.DatabaseIsNewer
	}

	if 0 == version && !readOnly {

		// database was empty so tag as current version
		err = putVersion(db, currentVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened: %q  version: 0x%x  read only: %t", name, currentVersion, readOnly)
	return newDatabase(db, log)
}

// OpenMemory - a database held entirely in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	err = putVersion(db, currentVersion)
	if nil != err {
		db.Close()
		return nil, err
	}
	return newDatabase(db, logger.New("storage"))
}

func newDatabase(db *leveldb.DB, log *logger.L) (*Database, error) {
	d := &Database{
		db:  db,
		log: log,
	}
	d.trx = &transaction{
		database: d,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}

	err := d.setupPools()
	if nil != err {
		db.Close()
		return nil, err
	}
	return d, nil
}

// fill in each pool handle from its struct tag
func (d *Database) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s has same prefix as: %s", fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: d,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// Begin - start the write transaction
//
// only one transaction can be open at a time
func (d *Database) Begin() (Transaction, error) {
	err := d.trx.begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

// committed reads
var _ Reader = (*Database)(nil)

// Get - committed value, see PoolHandle.Get
func (d *Database) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// GetN - committed value, see PoolHandle.GetN
func (d *Database) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

// Has - committed value, see PoolHandle.Has
func (d *Database) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, uint32(version))

	return db.Put(versionKey, v, nil)
}
