package job

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStartSucceeds(t *testing.T) {
	m := NewManager()
	j := m.Start(context.Background(), "j1", "roto-matte", func(j *Job) (any, error) {
		return 42, nil
	})
	<-j.Done()
	status, result, err := j.Result()
	if status != StatusSucceeded || result != 42 || err != nil {
		t.Fatalf("got status=%v result=%v err=%v", status, result, err)
	}
}

func TestStartFails(t *testing.T) {
	m := NewManager()
	wantErr := errors.New("boom")
	j := m.Start(context.Background(), "j2", "roto-matte", func(j *Job) (any, error) {
		return nil, wantErr
	})
	<-j.Done()
	status, _, err := j.Result()
	if status != StatusFailed || err != wantErr {
		t.Fatalf("got status=%v err=%v", status, err)
	}
}

func TestCancelStopsCooperativeWork(t *testing.T) {
	m := NewManager()
	started := make(chan struct{})
	j := m.Start(context.Background(), "j3", "mask-tracking", func(j *Job) (any, error) {
		close(started)
		for !j.Cancelled() {
			time.Sleep(time.Millisecond)
		}
		return nil, nil
	})
	<-started
	m.Cancel("j3")
	<-j.Done()
	status, result, err := j.Result()
	if status != StatusCancelled || result != nil || err != nil {
		t.Fatalf("got status=%v result=%v err=%v", status, result, err)
	}
}

func TestManagerGetAndForget(t *testing.T) {
	m := NewManager()
	j := m.Start(context.Background(), "j4", "scene-detect", func(j *Job) (any, error) {
		return nil, nil
	})
	<-j.Done()
	if _, ok := m.Get("j4"); !ok {
		t.Fatal("expected job to be registered")
	}
	m.Forget("j4")
	if _, ok := m.Get("j4"); ok {
		t.Fatal("expected job to be forgotten")
	}
}

func TestTrackerFeedRejectsReentrantCall(t *testing.T) {
	release := make(chan struct{})
	tracker := NewTracker(func(req TrackRequest) TrackResponse {
		<-release
		return TrackResponse{Frame: req.Frame}
	})

	done := make(chan TrackResponse)
	go func() {
		resp, _ := tracker.Feed(TrackRequest{Frame: 1})
		done <- resp
	}()

	time.Sleep(10 * time.Millisecond)
	_, ok := tracker.Feed(TrackRequest{Frame: 2})
	if ok {
		t.Fatal("expected reentrant feed to be rejected while one is in flight")
	}

	close(release)
	resp := <-done
	if resp.Frame != 1 {
		t.Fatalf("got frame %d, want 1", resp.Frame)
	}
}

func TestFeedSequenceAppliesInOrder(t *testing.T) {
	j := newJob(context.Background(), "seq", "mask-tracking")
	var seen []int
	responses := FeedSequence(j, []TrackRequest{{Frame: 0}, {Frame: 1}, {Frame: 2}}, func(req TrackRequest) TrackResponse {
		seen = append(seen, req.Frame)
		return TrackResponse{Frame: req.Frame}
	})
	if len(responses) != 3 {
		t.Fatalf("got %d responses, want 3", len(responses))
	}
	for i, r := range responses {
		if r.Frame != i {
			t.Fatalf("response %d has frame %d", i, r.Frame)
		}
	}
}

func TestFeedSequenceStopsOnError(t *testing.T) {
	j := newJob(context.Background(), "seq2", "mask-tracking")
	calls := 0
	responses := FeedSequence(j, []TrackRequest{{Frame: 0}, {Frame: 1}, {Frame: 2}}, func(req TrackRequest) TrackResponse {
		calls++
		if req.Frame == 1 {
			return TrackResponse{Frame: req.Frame, Err: errors.New("tracking failure")}
		}
		return TrackResponse{Frame: req.Frame}
	})
	if calls != 2 {
		t.Fatalf("got %d calls, want 2 (stop after frame 1 fails)", calls)
	}
	if len(responses) != 2 {
		t.Fatalf("got %d responses, want 2", len(responses))
	}
}
