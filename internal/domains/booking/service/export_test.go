package service

// WaitAsync blocks until every background cache and event goroutine spawned
// by s has drained, so tests can assert on their effects deterministically.
func WaitAsync(s Booking) {
	s.(*serviceImpl).async.Wait()
}
