package storage

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at application startup.
func Connect() {
	defaultDisk = config.Get("STORAGE_DISK", "local")

	disks["local"] = newLocalDisk()

	// S3 disk comes up only when a bucket is configured.
	if config.Get("S3_BUCKET", "") != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation, used by tests.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// Default-disk helpers (STORAGE_DISK env var, default "local").

func defaultD() Disk { return Use(defaultDisk) }

func Put(path string, content []byte) error            { return defaultD().Put(path, content) }
func PutStream(path string, r io.Reader) error         { return defaultD().PutStream(path, r) }
func Get(path string) ([]byte, error)                  { return defaultD().Get(path) }
func GetStream(path string) (io.ReadCloser, error)     { return defaultD().GetStream(path) }
func Exists(path string) bool                          { return defaultD().Exists(path) }
func Size(path string) (int64, error)                  { return defaultD().Size(path) }
func LastModified(path string) (time.Time, error)      { return defaultD().LastModified(path) }
func URL(path string) string                           { return defaultD().URL(path) }
func Delete(path string) error                         { return defaultD().Delete(path) }
