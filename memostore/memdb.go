package memostore

import (
	"fmt"
	"math/big"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/splaymemo/pure"
)

const (
	memoTable = "memo"
	memoIndex = "id"
)

var _ pure.Table[*big.Int] = MemDB{}

type memoRecord struct {
	N     int
	Value *big.Int
}

func memoSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memoTable: {
				Name: memoTable,
				Indexes: map[string]*memdb.IndexSchema{
					memoIndex: {
						Name:    memoIndex,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "N"},
					},
				},
			},
		},
	}
}

// MemDB keeps the memo in an immutable radix tree behind go-memdb transactions.
// It never evicts.
type MemDB struct {
	db *memdb.MemDB
}

func NewMemDB() (MemDB, error) {
	db, err := memdb.NewMemDB(memoSchema())
	if err != nil {
		return MemDB{}, err
	}
	return MemDB{db: db}, nil
}

func (m MemDB) Find(key int) (*big.Int, bool) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memoTable, memoIndex, key)
	if err != nil || raw == nil {
		return nil, false
	}
	return raw.(*memoRecord).Value, true
}

// Insert upserts key. The schema is fixed, so a failed write is a bug.
func (m MemDB) Insert(key int, value *big.Int) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(memoTable, &memoRecord{N: key, Value: value}); err != nil {
		panic(fmt.Sprintf("memdb insert %d: %v", key, err))
	}
	txn.Commit()
}

func (m MemDB) Len() int {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(memoTable, memoIndex)
	if err != nil {
		return 0
	}
	n := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n
}
