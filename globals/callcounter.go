package globals

import (
	"sync"
)

// Counter tracks the calls this instance has placed and the call
// records currently held in memory.
type Counter struct {
	lock          sync.Mutex
	noOfCalls     int32
	noOfCallsLive int32
}

var counters *Counter

func InitCounter() {
	counters = new(Counter)
}

func GetNoOfCalls() int32 {
	counters.lock.Lock()
	defer counters.lock.Unlock()
	return counters.noOfCalls
}

func IncrementNoOfCalls() {
	counters.lock.Lock()
	defer counters.lock.Unlock()
	counters.noOfCalls++
}

func GetNoOfLiveCalls() int32 {
	counters.lock.Lock()
	defer counters.lock.Unlock()
	return counters.noOfCallsLive
}

func IncrementNoOfLiveCalls() {
	counters.lock.Lock()
	defer counters.lock.Unlock()
	counters.noOfCallsLive++
}

func DecrementNoOfLiveCalls() {
	counters.lock.Lock()
	defer counters.lock.Unlock()
	counters.noOfCallsLive--
}
