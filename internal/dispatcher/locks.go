package dispatcher

import "sync"

// chatLocks serializes processing per conversation so that concurrent
// messages from the same user cannot interleave stage and question
// reads/writes. Different conversations proceed in parallel.
type chatLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newChatLocks() *chatLocks {
	return &chatLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock acquires the mutex for the conversation, creating it on first use
func (c *chatLocks) lock(chatID int64) *sync.Mutex {
	c.mu.Lock()
	l, exists := c.locks[chatID]
	if !exists {
		l = &sync.Mutex{}
		c.locks[chatID] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l
}
