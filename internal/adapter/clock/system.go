package clock

import (
	"sync"
	"time"
)

// System implements port.Clock with the host's wall clock in unix seconds.
// It never goes backwards even if the wall clock does.
type System struct {
	mu   sync.Mutex
	last uint64
	now  func() time.Time
}

func NewSystem() *System {
	return &System{now: time.Now}
}

func (c *System) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t := c.now().Unix(); t > 0 && uint64(t) > c.last {
		c.last = uint64(t)
	}
	return c.last
}
