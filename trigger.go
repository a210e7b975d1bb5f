package feather2d

import (
	"unsafe"

	"github.com/akmonengine/feather2d/actor"
)

const (
	TRIGGER_ENTER EventType = iota
	OVERLAP_ENTER
	TRIGGER_STAY
	OVERLAP_STAY
	TRIGGER_EXIT
	OVERLAP_EXIT
)

type pairKey struct {
	bodyA *actor.Body
	bodyB *actor.Body
}

// makePairKey orders the bodies by address so (A,B) and (B,A) share a key
func makePairKey(bodyA, bodyB *actor.Body) pairKey {
	ptrA := uintptr(unsafe.Pointer(bodyA))
	ptrB := uintptr(unsafe.Pointer(bodyB))

	if ptrB < ptrA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

func (p pairKey) isTrigger() bool {
	return p.bodyA.IsTrigger || p.bodyB.IsTrigger
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Trigger events
type TriggerEnterEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerEnterEvent) Type() EventType { return TRIGGER_ENTER }

type TriggerStayEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerStayEvent) Type() EventType { return TRIGGER_STAY }

type TriggerExitEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e TriggerExitEvent) Type() EventType { return TRIGGER_EXIT }

// Overlap events
type OverlapEnterEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e OverlapEnterEvent) Type() EventType { return OVERLAP_ENTER }

type OverlapStayEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e OverlapStayEvent) Type() EventType { return OVERLAP_STAY }

type OverlapExitEvent struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

func (e OverlapExitEvent) Type() EventType { return OVERLAP_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Overlap tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		*e = NewEvents()
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordOverlaps marks the pairs overlapping during the current step
func (e *Events) recordOverlaps(pairs []Pair) {
	for _, p := range pairs {
		e.currentActivePairs[makePairKey(p.BodyA, p.BodyB)] = true
	}
}

// forget drops every tracked pair involving body
func (e *Events) forget(body *actor.Body) {
	for pair := range e.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.currentActivePairs, pair)
		}
	}
}

// processOverlapEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processOverlapEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			if pair.isTrigger() {
				e.buffer = append(e.buffer, TriggerStayEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
			} else {
				e.buffer = append(e.buffer, OverlapStayEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
			}
		} else {
			if pair.isTrigger() {
				e.buffer = append(e.buffer, TriggerEnterEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
			} else {
				e.buffer = append(e.buffer, OverlapEnterEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
			}
		}
	}

	for pair := range e.previousActivePairs {
		if e.currentActivePairs[pair] {
			continue
		}

		if pair.isTrigger() {
			e.buffer = append(e.buffer, TriggerExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		} else {
			e.buffer = append(e.buffer, OverlapExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processOverlapEvents()

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
