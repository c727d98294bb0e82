// Package storage provides size helpers for the run database.
package storage

import "os"

// DatabaseSizeBytes returns the on-disk size of the run database,
// including the WAL sidecar files. Missing files contribute 0.
func DatabaseSizeBytes(dbPath string) (int64, error) {
	var total int64
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return 0, err
		}
		if !info.IsDir() {
			total += info.Size()
		}
	}
	return total, nil
}
