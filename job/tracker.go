package job

import "sync"

// TrackRequest is one frame handed to the mask-tracking worker.
type TrackRequest struct {
	Frame  int
	Bitmap any
}

// TrackResponse is the worker's reply for a single tracked frame.
type TrackResponse struct {
	Frame     int
	Keyframes any
	Err       error
}

// Tracker feeds frames to a mask-tracking worker strictly sequentially:
// exactly one frame is in flight at a time, and the next frame is sent only
// after the worker replies to the current one (spec §5). feeding guards the
// async decode-then-send step against re-entrant calls, named after the
// spec's own "_feeding" re-entrancy guard.
type Tracker struct {
	mu      sync.Mutex
	feeding bool
	send    func(TrackRequest) TrackResponse
}

// NewTracker wraps send, the worker round-trip function, with sequential
// feed discipline.
func NewTracker(send func(TrackRequest) TrackResponse) *Tracker {
	return &Tracker{send: send}
}

// Feed sends req to the worker and returns its response. If a feed is
// already in flight, it returns false and does not send req, mirroring the
// spec's re-entrancy guard around the async decode-then-send step.
func (t *Tracker) Feed(req TrackRequest) (TrackResponse, bool) {
	t.mu.Lock()
	if t.feeding {
		t.mu.Unlock()
		return TrackResponse{}, false
	}
	t.feeding = true
	t.mu.Unlock()

	resp := t.send(req)

	t.mu.Lock()
	t.feeding = false
	t.mu.Unlock()

	return resp, true
}

// FeedSequence feeds each request in order, stopping early if cancel
// reports done or a response carries an error. Keyframe writes this
// produces are applied in frame order, matching spec §5's ordering
// guarantee for tracking jobs.
func FeedSequence(j *Job, reqs []TrackRequest, send func(TrackRequest) TrackResponse) []TrackResponse {
	tracker := NewTracker(send)
	responses := make([]TrackResponse, 0, len(reqs))
	for _, req := range reqs {
		if j.Cancelled() {
			break
		}
		resp, ok := tracker.Feed(req)
		if !ok {
			continue
		}
		responses = append(responses, resp)
		if resp.Err != nil {
			break
		}
	}
	return responses
}
