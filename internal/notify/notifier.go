package notify

import (
	"sync"
	"time"
)

// DefaultCapacity сколько последних уведомлений хранится
const DefaultCapacity = 50

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification user-visible transient message
type Notification struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier bounded queue of notifications. Oldest are dropped on overflow.
type Notifier struct {
	mu       sync.Mutex
	items    []Notification
	capacity int
	now      func() time.Time
}

func NewNotifier(capacity int) *Notifier {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Notifier{capacity: capacity, now: time.Now}
}

func (n *Notifier) Success(msg string) {
	n.push(LevelSuccess, msg)
}

func (n *Notifier) Error(msg string) {
	n.push(LevelError, msg)
}

// Drain returns queued notifications in arrival order and empties the queue
func (n *Notifier) Drain() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.items
	n.items = nil
	if out == nil {
		return []Notification{}
	}
	return out
}

// Len number of queued notifications
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.items)
}

func (n *Notifier) push(level Level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.items = append(n.items, Notification{Level: level, Message: msg, CreatedAt: n.now()})
	if over := len(n.items) - n.capacity; over > 0 {
		n.items = append([]Notification(nil), n.items[over:]...)
	}
}
