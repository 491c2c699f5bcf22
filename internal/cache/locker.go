package cache

import (
	"context"
	"sync"
)

// LocalLocker serializes captures of the same transaction inside one process.
// A key is forgotten once nobody holds or waits for it.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	lock := l.getLock(key)
	release := func() {
		lock.Unlock()
		l.putLock(key, lock)
	}

	acquired := make(chan struct{})
	go func() {
		lock.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
		return release, nil
	case <-ctx.Done():
		// release the lock as soon as the pending goroutine gets it
		go func() {
			<-acquired
			release()
		}()
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) getLock(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &keyLock{}
		l.locks[key] = lock
	}
	lock.refs++
	return lock
}

func (l *LocalLocker) putLock(key string, lock *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, key)
	}
}
