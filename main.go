package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/cmap/collections"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "number-registry"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel
	registry := collections.NewTreeBimap(
		collections.Entry[int, string]{Key: 1, Value: "ONE"},
		collections.Entry[int, string]{Key: 2, Value: "TWO"},
		collections.Entry[int, string]{Key: 3, Value: "THREE"},
	)
	logger.Info("registry built, size=", registry.Size())
	if v, err := registry.GetValue(2); err == nil {
		logger.Info("value of 2 is ", v)
	}
	if k, err := registry.GetKey("THREE"); err == nil {
		logger.Info("key of THREE is ", k)
	}
	if _, err := registry.GetValue(99); err != nil {
		logger.Info("lookup of 99 failed: ", err)
	}
	registry.Insert(4, "FOUR")
	logger.Info("inserted 4=FOUR, size=", registry.Size())
	removed := registry.Insert(2, "DEUX")
	logger.Info("re-inserted key 2 as DEUX, evicted ", removed)
	it := registry.Iterator()
	for it.First(); it.Valid(); it.Next() {
		logger.Info("ascending ", it.Key(), "=", it.Value())
	}
	for it.Last(); it.Valid(); it.Prev() {
		logger.Info("descending ", it.Key(), "=", it.Value())
	}
	registry.Erase(1)
	logger.Info("erased key 1, size=", registry.Size())
	registry.Clear()
	logger.Info("cleared, empty=", registry.IsEmpty())
}
