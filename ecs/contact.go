package ecs

// ContactKind distinguishes the start and end of an overlap.
type ContactKind uint8

const (
	ContactBegin ContactKind = iota + 1
	ContactEnd
)

func (k ContactKind) String() string {
	switch k {
	case ContactBegin:
		return "begin"
	case ContactEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ContactEvent reports that two bodies started or stopped touching.
type ContactEvent struct {
	Kind    ContactKind
	Subject Entity
	Other   Entity
}

// Involves reports whether e is either side of the contact and returns the
// opposite side.
func (c ContactEvent) Involves(e Entity) (Entity, bool) {
	switch e {
	case c.Subject:
		return c.Other, true
	case c.Other:
		return c.Subject, true
	}
	return 0, false
}

// ContactQueue is an ordered contact bus. Producers push during a step and
// the combat resolver drains everything once per step.
type ContactQueue struct {
	items []ContactEvent
}

func (q *ContactQueue) Push(evt ContactEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *ContactQueue) Begin(a, b Entity) {
	q.Push(ContactEvent{Kind: ContactBegin, Subject: a, Other: b})
}

func (q *ContactQueue) End(a, b Entity) {
	q.Push(ContactEvent{Kind: ContactEnd, Subject: a, Other: b})
}

// Drain returns the queued events in push order and empties the queue.
func (q *ContactQueue) Drain() []ContactEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Discard drops queued events that reference e.
func (q *ContactQueue) Discard(e Entity) {
	if q == nil {
		return
	}
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Subject == e || evt.Other == e {
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
}

func (q *ContactQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
