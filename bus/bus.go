// bus.go
package bus

import (
	"sync"
)

// Topic is a path of plain string segments, e.g. {"touch", "event", "report_dropped"}.
type Topic []string

// T builds a Topic in place.
func T(segs ...string) Topic { return Topic(segs) }

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection // owning connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// -----------------------------------------------------------------------------
// Trie node
// -----------------------------------------------------------------------------

type node struct {
	children map[string]*node
	subs     []*Subscription
	retained *Message
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

// Bus is an in-process pub/sub tree with retained messages. Publish never
// blocks: a full subscriber queue drops its oldest entry.
type Bus struct {
	mu   sync.RWMutex
	root *node
	qLen int
}

// NewBus creates a new bus with the given subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8 // safe default
	}
	return &Bus{
		root: &node{},
		qLen: queueLen,
	}
}

// addSubscription inserts a subscription into the trie.
func (b *Bus) addSubscription(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, seg := range topic {
		if n.children == nil {
			n.children = make(map[string]*node)
		}
		child, ok := n.children[seg]
		if !ok {
			child = &node{}
			n.children[seg] = child
		}
		n = child
	}

	n.subs = append(n.subs, sub)

	// Deliver retained message if present.
	if n.retained != nil {
		select {
		case sub.ch <- n.retained:
		default:
		}
	}
}

// Publish delivers a message to all subscribers of its topic.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, seg := range msg.Topic {
		if n.children == nil {
			if !msg.Retained {
				return
			}
			n.children = make(map[string]*node)
		}
		child, exists := n.children[seg]
		if !exists {
			if !msg.Retained {
				return
			}
			child = &node{}
			n.children[seg] = child
		}
		n = child
	}

	// Deliver to all subscribers at the final node.
	for _, sub := range n.subs {
		select {
		case sub.ch <- msg:
		default:
			// drop oldest if queue full
			<-sub.ch
			sub.ch <- msg
		}
	}

	// Store or clear retained message.
	if msg.Retained {
		if msg.Payload == nil {
			n.retained = nil
		} else {
			n.retained = msg
		}
	}
}

// unsubscribe removes a subscription from the trie.
func (b *Bus) unsubscribe(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	var stack []*node
	for _, seg := range topic {
		if n.children == nil {
			return
		}
		child, ok := n.children[seg]
		if !ok {
			return
		}
		stack = append(stack, n)
		n = child
	}

	// Remove subscription.
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}

	// Prune empty nodes.
	for i := len(topic) - 1; i >= 0; i-- {
		parent := stack[i]
		key := topic[i]
		child := parent.children[key]
		if len(child.subs) == 0 && len(child.children) == 0 && child.retained == nil {
			delete(parent.children, key)
		} else {
			break
		}
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

type Connection struct {
	bus  *Bus
	subs []*Subscription
	mu   sync.Mutex
	id   string // placeholder for future identity/auth
}

// NewConnection creates a new connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{
		bus: b,
		id:  id,
	}
}

// NewMessage builds a message originating from this connection.
func (c *Connection) NewMessage(topic Topic, payload any, retained bool) *Message {
	return &Message{Topic: topic, Payload: payload, Retained: retained}
}

// Publish sends a message via the bus.
func (c *Connection) Publish(msg *Message) {
	c.bus.Publish(msg)
}

// Subscribe registers a subscription owned by this connection.
func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.bus.addSubscription(topic, sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscription owned by this connection.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub.topic, sub)
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	close(sub.ch)
}

// Disconnect closes all subscriptions and clears them.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		c.bus.unsubscribe(sub.topic, sub)
		close(sub.ch)
	}
}
