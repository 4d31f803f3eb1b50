package store

import "testing"

func TestSetNotifiesSubscriber(t *testing.T) {
	s := New()
	var got any
	s.Subscribe(PathCurrentFrame, func(path string, value any) {
		got = value
	})
	s.Set(PathCurrentFrame, 42)
	if got != 42 {
		t.Fatalf("got %v, want 42", got)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New()
	calls := 0
	unsubscribe := s.Subscribe(PathCurrentFrame, func(path string, value any) {
		calls++
	})
	s.Set(PathCurrentFrame, 1)
	unsubscribe()
	s.Set(PathCurrentFrame, 2)
	if calls != 1 {
		t.Fatalf("got %d calls, want 1", calls)
	}
}

func TestReadProjectSettings(t *testing.T) {
	s := New()
	s.Set(PathCanvas, Canvas{Width: 1920, Height: 1080})
	s.Set(PathFrameRate, 29.97)
	s.Set(PathWorkingSpace, "rec709")
	s.Set(PathOutputSpace, "display-p3")
	s.Set(PathLinearCompositing, true)
	s.Set(PathColorAwareEffects, true)
	s.Set(PathColorPreset, "direct-709")
	s.Set(PathCurrentFrame, 10)

	got := ReadProjectSettings(s)
	want := ProjectSettings{
		CanvasWidth:       1920,
		CanvasHeight:      1080,
		FrameRate:         29.97,
		WorkingSpace:      "rec709",
		OutputSpace:       "display-p3",
		LinearCompositing: true,
		ColorAwareEffects: true,
		ColorPreset:       "direct-709",
		CurrentFrame:      10,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEventBusPublishDeliversToSubscribedTopic(t *testing.T) {
	bus := NewEventBus()
	var received []Event
	bus.Subscribe(TopicTimelineUpdated, func(e Event) {
		received = append(received, e)
	})
	bus.Subscribe(TopicSelectionUpdated, func(e Event) {
		t.Errorf("unexpected delivery to selection topic")
	})
	bus.PublishTimelineUpdated("clip-1")

	if len(received) != 1 || received[0].Payload != "clip-1" {
		t.Fatalf("got %+v", received)
	}
}
