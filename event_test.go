package feather2d

import (
	"testing"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl32"
)

// createTestBody creates a minimal Body for event testing
func createTestBody(id any, isTrigger bool) *actor.Body {
	body := actor.NewBody(actor.NewTransform(), actor.Rectangle(mgl32.Vec2{1, 1}), actor.BodyTypeDynamic)
	body.Id = id
	body.IsTrigger = isTrigger
	return body
}

type eventCapture struct {
	events []Event
}

func (ec *eventCapture) capture(event Event) {
	ec.events = append(ec.events, event)
}

func (ec *eventCapture) reset() {
	ec.events = ec.events[:0]
}

func (ec *eventCapture) count() int {
	return len(ec.events)
}

func (ec *eventCapture) hasEventType(eventType EventType) bool {
	for _, e := range ec.events {
		if e.Type() == eventType {
			return true
		}
	}
	return false
}

func subscribeAll(events *Events, capture *eventCapture) {
	for _, eventType := range []EventType{TRIGGER_ENTER, OVERLAP_ENTER, TRIGGER_STAY, OVERLAP_STAY, TRIGGER_EXIT, OVERLAP_EXIT} {
		events.Subscribe(eventType, capture.capture)
	}
}

// step records the overlapping pairs of a frame and dispatches its events
func step(events *Events, pairs ...Pair) {
	events.recordOverlaps(pairs)
	events.flush()
}

// =============================================================================
// Subscribe and Listeners Tests
// =============================================================================

func TestEvents_Subscribe(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}

	events.Subscribe(OVERLAP_ENTER, capture.capture)

	if len(events.listeners[OVERLAP_ENTER]) != 1 {
		t.Errorf("Expected 1 listener for OVERLAP_ENTER, got %d", len(events.listeners[OVERLAP_ENTER]))
	}
}

func TestEvents_SubscribeZeroValue(t *testing.T) {
	var events Events
	capture := &eventCapture{}

	events.Subscribe(OVERLAP_ENTER, capture.capture)
	step(&events, Pair{BodyA: createTestBody(1, false), BodyB: createTestBody(2, false)})

	if capture.count() != 1 {
		t.Errorf("Expected 1 event, got %d", capture.count())
	}
}

func TestEvents_MultipleListeners(t *testing.T) {
	events := NewEvents()
	first := &eventCapture{}
	second := &eventCapture{}

	events.Subscribe(OVERLAP_ENTER, first.capture)
	events.Subscribe(OVERLAP_ENTER, second.capture)

	step(&events, Pair{BodyA: createTestBody(1, false), BodyB: createTestBody(2, false)})

	if first.count() != 1 || second.count() != 1 {
		t.Errorf("Expected both listeners to receive 1 event, got %d and %d", first.count(), second.count())
	}
}

func TestEvents_NoListeners(t *testing.T) {
	events := NewEvents()

	step(&events, Pair{BodyA: createTestBody(1, false), BodyB: createTestBody(2, false)})

	if len(events.buffer) != 0 {
		t.Errorf("Expected empty buffer after flush, got %d", len(events.buffer))
	}
}

// =============================================================================
// Pair Key Tests
// =============================================================================

func TestMakePairKey(t *testing.T) {
	bodyA := createTestBody(1, false)
	bodyB := createTestBody(2, false)
	bodyC := createTestBody(3, false)

	if makePairKey(bodyA, bodyB) != makePairKey(bodyB, bodyA) {
		t.Error("Expected the same key regardless of order")
	}
	if makePairKey(bodyA, bodyB) == makePairKey(bodyA, bodyC) {
		t.Error("Expected different keys for different pairs")
	}
}

// =============================================================================
// Enter / Stay / Exit Tests
// =============================================================================

func TestEvents_Overlap(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	bodyA := createTestBody(1, false)
	bodyB := createTestBody(2, false)

	step(&events, Pair{BodyA: bodyA, BodyB: bodyB})
	if capture.count() != 1 || !capture.hasEventType(OVERLAP_ENTER) {
		t.Fatalf("Expected a single OVERLAP_ENTER, got %v", capture.events)
	}
	enter := capture.events[0].(OverlapEnterEvent)
	if !((enter.BodyA == bodyA && enter.BodyB == bodyB) || (enter.BodyA == bodyB && enter.BodyB == bodyA)) {
		t.Error("Expected the enter event to carry both bodies")
	}

	capture.reset()
	// reversed order is the same pair
	step(&events, Pair{BodyA: bodyB, BodyB: bodyA})
	if capture.count() != 1 || !capture.hasEventType(OVERLAP_STAY) {
		t.Fatalf("Expected a single OVERLAP_STAY, got %v", capture.events)
	}

	capture.reset()
	step(&events)
	if capture.count() != 1 || !capture.hasEventType(OVERLAP_EXIT) {
		t.Fatalf("Expected a single OVERLAP_EXIT, got %v", capture.events)
	}

	capture.reset()
	step(&events)
	if capture.count() != 0 {
		t.Errorf("Expected no event once separated, got %v", capture.events)
	}
}

func TestEvents_Trigger(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	trigger := createTestBody("zone", true)
	body := createTestBody("player", false)

	expected := []EventType{TRIGGER_ENTER, TRIGGER_STAY, TRIGGER_EXIT}
	frames := [][]Pair{
		{{BodyA: trigger, BodyB: body}},
		{{BodyA: trigger, BodyB: body}},
		nil,
	}

	for i, pairs := range frames {
		capture.reset()
		step(&events, pairs...)

		if capture.count() != 1 || capture.events[0].Type() != expected[i] {
			t.Errorf("frame %d: expected event %d, got %v", i, expected[i], capture.events)
		}
	}
}

func TestEvents_MixedTriggerAndOverlap(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	trigger := createTestBody("zone", true)
	bodyA := createTestBody(1, false)
	bodyB := createTestBody(2, false)

	step(&events, Pair{BodyA: trigger, BodyB: bodyA}, Pair{BodyA: bodyA, BodyB: bodyB})

	if capture.count() != 2 {
		t.Fatalf("Expected 2 events, got %d", capture.count())
	}
	if !capture.hasEventType(TRIGGER_ENTER) || !capture.hasEventType(OVERLAP_ENTER) {
		t.Errorf("Expected TRIGGER_ENTER and OVERLAP_ENTER, got %v", capture.events)
	}
}

func TestEvents_MultipleFrames_EnterExitEnter(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	pair := Pair{BodyA: createTestBody(1, false), BodyB: createTestBody(2, false)}

	expected := []EventType{OVERLAP_ENTER, OVERLAP_EXIT, OVERLAP_ENTER}
	frames := [][]Pair{{pair}, nil, {pair}}

	for i, pairs := range frames {
		capture.reset()
		step(&events, pairs...)

		if capture.count() != 1 || capture.events[0].Type() != expected[i] {
			t.Errorf("frame %d: expected event %d, got %v", i, expected[i], capture.events)
		}
	}
}

func TestEvents_Forget(t *testing.T) {
	events := NewEvents()
	capture := &eventCapture{}
	subscribeAll(&events, capture)

	bodyA := createTestBody(1, false)
	bodyB := createTestBody(2, false)
	bodyC := createTestBody(3, false)

	step(&events, Pair{BodyA: bodyA, BodyB: bodyB}, Pair{BodyA: bodyB, BodyB: bodyC})
	events.forget(bodyA)

	capture.reset()
	step(&events)

	if capture.count() != 1 {
		t.Fatalf("Expected only the remaining pair to exit, got %v", capture.events)
	}
	exit := capture.events[0].(OverlapExitEvent)
	if exit.BodyA == bodyA || exit.BodyB == bodyA {
		t.Error("Expected no event for a forgotten body")
	}
}
