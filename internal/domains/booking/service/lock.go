package service

import "sync"

// roomLocker serializes booking writes per room within this process. The
// availability check and the insert must happen under the same lock,
// otherwise two overlapping requests can both pass the check and both
// write.
type roomLocker struct {
	locks sync.Map
}

func (l *roomLocker) Lock(roomID string) func() {
	val, _ := l.locks.LoadOrStore(roomID, &sync.Mutex{})

	mutex, _ := val.(*sync.Mutex)
	mutex.Lock()

	return mutex.Unlock
}
