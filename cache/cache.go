// Package cache keeps the names of discovered devices in a JSON file, so
// that results arriving without a name can still be labelled.
package cache

import (
	"fmt"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/rigado/bluehci"
)

// Entry is one cached device.
type Entry struct {
	Name    string    `json:"name"`
	Updated time.Time `json:"updated"`
}

type nameCache struct {
	filename string
	lock     sync.RWMutex
}

// New returns a cache backed by filename. The file is created on the first Store.
func New(filename string) bluehci.DeviceCache {
	return &nameCache{
		filename: filename,
	}
}

func (nc *nameCache) Store(a bluehci.Address, name string) error {
	if !a.IsValid() {
		return fmt.Errorf("invalid address")
	}

	nc.lock.Lock()
	defer nc.lock.Unlock()

	cache, err := nc.loadExisting()
	if err != nil {
		return err
	}

	if e, ok := cache[a.String()]; ok && e.Name == name {
		return nil
	}
	cache[a.String()] = Entry{Name: name, Updated: time.Now().UTC()}

	return nc.storeCache(cache)
}

func (nc *nameCache) Load(a bluehci.Address) (string, error) {
	nc.lock.RLock()
	defer nc.lock.RUnlock()

	cache, err := nc.loadExisting()
	if err != nil {
		return "", err
	}

	e, ok := cache[a.String()]
	if !ok {
		return "", fmt.Errorf("name of %s not found in cache", a)
	}

	return e.Name, nil
}

func (nc *nameCache) Clear() error {
	nc.lock.Lock()
	defer nc.lock.Unlock()

	err := os.Remove(nc.filename)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Entries returns a snapshot of the cache file.
func Entries(filename string) (map[string]Entry, error) {
	nc := nameCache{filename: filename}
	return nc.loadExisting()
}

func (nc *nameCache) loadExisting() (map[string]Entry, error) {
	_, err := os.Stat(nc.filename)
	if os.IsNotExist(err) {
		return map[string]Entry{}, nil
	}

	in, err := os.ReadFile(nc.filename)
	if err != nil {
		return nil, err
	}

	cache := map[string]Entry{}
	err = jsoniter.Unmarshal(in, &cache)
	if err != nil {
		return nil, err
	}

	return cache, nil
}

func (nc *nameCache) storeCache(cache map[string]Entry) error {
	out, err := jsoniter.Marshal(cache)
	if err != nil {
		return err
	}

	return os.WriteFile(nc.filename, out, 0644)
}
