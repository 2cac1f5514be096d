package feed

import "sync"

// publisher fans each display projection out to all subscribers. Publishing
// never blocks the reducer: when a subscriber's buffer is full, the oldest
// pending projection is dropped in favour of the newest, so every consumer
// eventually observes the latest snapshot. A subscriber arriving after the
// first publication is seeded with the current view, so the seed snapshot is
// observable regardless of subscription timing.
type publisher struct {
	mu     sync.Mutex
	subs   map[int]chan []DisplayItem
	nextID int
	buffer int
	last   []DisplayItem
	seen   bool
	closed bool
}

func newPublisher(buffer int) *publisher {
	return &publisher{
		subs:   make(map[int]chan []DisplayItem),
		buffer: buffer,
	}
}

func (p *publisher) subscribe() (<-chan []DisplayItem, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		ch := make(chan []DisplayItem)
		close(ch)
		return ch, func() {}
	}

	id := p.nextID
	p.nextID++

	ch := make(chan []DisplayItem, p.buffer)
	if p.seen {
		ch <- p.last
	}
	p.subs[id] = ch

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if sub, ok := p.subs[id]; ok {
			delete(p.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (p *publisher) publish(items []DisplayItem) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.last = items
	p.seen = true

	for _, ch := range p.subs {
		for {
			select {
			case ch <- items:
			default:
				// Full buffer: evict the oldest pending view and retry.
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

func (p *publisher) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
}
