package ecs

// Event is a typed payload queued during a tick and consumed by systems that
// run after the producer.
type Event struct {
	Type string
	Data any
}

const EventTypeCollision = "collision"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventCollect   CollisionEventKind = "collect"
	CollisionEventHitHazard CollisionEventKind = "hazard"
)

// CollisionEvent records an overlap reported by the physics step. Entity is
// the player side of the contact, Other the star or bomb it touched.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
	Kind   CollisionEventKind
}

// EventQueue is a FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// PushCollision is shorthand for queuing a CollisionEvent.
func (q *EventQueue) PushCollision(evt CollisionEvent) {
	q.Push(Event{Type: EventTypeCollision, Data: evt})
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Collisions returns the queued collision events of kind without consuming
// them, so several systems can observe the same step.
func (q *EventQueue) Collisions(kind CollisionEventKind) []CollisionEvent {
	if q == nil {
		return nil
	}
	var out []CollisionEvent
	for _, evt := range q.items {
		if evt.Type != EventTypeCollision {
			continue
		}
		if c, ok := evt.Data.(CollisionEvent); ok && c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Flush drops every pending event. Called once at the end of a tick.
func (q *EventQueue) Flush() {
	if q == nil {
		return
	}
	q.items = nil
}
