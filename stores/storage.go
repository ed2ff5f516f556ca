// Package stores selects the solution-history backend.
package stores

import (
	"os"

	"github.com/sirupsen/logrus"

	"mathpad/core"
	"mathpad/stores/memory"
	"mathpad/stores/sqlite"
)

// GetStore picks the backend from the STORAGE_TYPE environment
// variable. Unset or unknown values fall back to in-memory storage.
func GetStore() core.SolutionStore {
	storageType := os.Getenv("STORAGE_TYPE")
	var store core.SolutionStore

	storageField := logrus.Fields{
		"storageType": storageType,
	}

	switch storageType {
	case "sqlite":
		dataSourceName := os.Getenv("DATA_SOURCE_NAME")
		if dataSourceName == "" {
			dataSourceName = "mathpad.db"
		}
		storageField["dataSourceName"] = dataSourceName
		store = sqlite.NewStore(dataSourceName)
	default:
		store = memory.NewStore()
		storageField["storageType"] = "in-memory"
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store
}
