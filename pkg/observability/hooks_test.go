package observability

import "testing"

type countingRenderHooks struct {
	starts, completes int
}

func (h *countingRenderHooks) OnRenderStart(int, int, int) { h.starts++ }
func (h *countingRenderHooks) OnRenderComplete(int, error) { h.completes++ }

func TestHookRegistration(t *testing.T) {
	defer Reset()

	h := &countingRenderHooks{}
	SetRenderHooks(h)

	Render().OnRenderStart(800, 400, 10)
	Render().OnRenderComplete(10, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("hooks not invoked: starts=%d completes=%d", h.starts, h.completes)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	h := &countingRenderHooks{}
	SetRenderHooks(h)
	SetRenderHooks(nil)

	Render().OnRenderStart(0, 0, 0)
	if h.starts != 1 {
		t.Error("nil registration should keep the previous hooks")
	}
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	// Must not panic.
	Ingest().OnMessage("general", "alice", 3)
	Render().OnRenderComplete(0, nil)
	Cache().OnCacheMiss("file")
}
