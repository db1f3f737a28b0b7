package worker

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"

	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/region"
)

func validRequest(id int) Request {
	return Request{
		ID:        id,
		Reference: colour.New(1, 0, 0, 1),
		Hue:       140,
		Axes:      AxisConfig{LightnessSteps: 16, ChromaSteps: 8},
		Options:   TraceOptions{Threshold: 4.5},
	}
}

func TestTracerEchoesIDsInOrder(t *testing.T) {
	tr := NewTracer()
	defer tr.Close()

	ids := []int{7, 11, 13}
	for _, id := range ids {
		if err := tr.Submit(validRequest(id)); err != nil {
			t.Fatalf("Submit(%d): %v", id, err)
		}
	}

	for _, want := range ids {
		resp := <-tr.Responses()
		if resp.ID != want {
			t.Errorf("response id = %d, want %d", resp.ID, want)
		}
		if resp.Error != "" {
			t.Errorf("response %d carries error %q", resp.ID, resp.Error)
		}
		if resp.Paths == nil {
			t.Errorf("response %d has nil paths", resp.ID)
		}
	}
}

func TestTracerDeterministic(t *testing.T) {
	tr := NewTracer(WithQueueDepth(2))
	defer tr.Close()

	if err := tr.Submit(validRequest(1)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := tr.Submit(validRequest(2)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	first := <-tr.Responses()
	second := <-tr.Responses()
	if diff := cmp.Diff(first.Paths, second.Paths); diff != "" {
		t.Errorf("identical requests traced differently (-first +second):\n%s", diff)
	}
}

func TestTracerErrorResponse(t *testing.T) {
	tr := NewTracer(WithLogger(hclog.NewNullLogger()))
	defer tr.Close()

	req := validRequest(4)
	req.Axes = AxisConfig{}
	if err := tr.Submit(req); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	resp := <-tr.Responses()
	if resp.ID != 4 {
		t.Errorf("response id = %d, want 4", resp.ID)
	}
	if !strings.Contains(resp.Error, "invalid step count") {
		t.Errorf("response error = %q, want the step validation failure", resp.Error)
	}
	if resp.Paths == nil || len(resp.Paths) != 0 {
		t.Errorf("failed response paths = %v, want an empty list", resp.Paths)
	}
}

func TestTracerSubmitAfterClose(t *testing.T) {
	tr := NewTracer()
	tr.Close()

	if err := tr.Submit(validRequest(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit after Close = %v, want ErrClosed", err)
	}

	// Close is idempotent.
	tr.Close()
}

func TestTracerCloseClosesResponses(t *testing.T) {
	tr := NewTracer()

	if err := tr.Submit(validRequest(1)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resp := <-tr.Responses(); resp.ID != 1 {
		t.Fatalf("response id = %d, want 1", resp.ID)
	}

	tr.Close()
	if _, ok := <-tr.Responses(); ok {
		t.Error("Responses still open after Close")
	}
}

func TestRequestWire(t *testing.T) {
	payload := `{"id":3,"reference":{"l":1,"c":0,"h":0,"alpha":1},"hue":140,` +
		`"axes":{"lightnessSteps":16,"chromaSteps":8},"options":{"threshold":"aa"}}`

	var req Request
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if req.ID != 3 || req.Hue != 140 {
		t.Errorf("decoded id=%d hue=%v, want 3 and 140", req.ID, req.Hue)
	}
	if req.Axes.LightnessSteps != 16 || req.Axes.ChromaSteps != 8 {
		t.Errorf("decoded axes = %+v, want 16x8", req.Axes)
	}
	if req.Options.Threshold != 4.5 {
		t.Errorf("decoded threshold = %v, want 4.5 from the aa level", req.Options.Threshold)
	}

	tr := NewTracer()
	defer tr.Close()
	if err := tr.Submit(req); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	resp := <-tr.Responses()
	if resp.ID != 3 || resp.Error != "" || len(resp.Paths) != 1 {
		t.Errorf("response = id %d, %d paths, error %q; want id 3, 1 path, no error",
			resp.ID, len(resp.Paths), resp.Error)
	}
}

func TestResponseWire(t *testing.T) {
	out, err := json.Marshal(Response{ID: 9, Paths: []region.Path{}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `{"id":9,"paths":[]}`; got != want {
		t.Errorf("empty response = %s, want %s", got, want)
	}

	out, err = json.Marshal(Response{
		ID:    4,
		Paths: []region.Path{},
		Error: "invalid step count",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `{"id":4,"paths":[],"error":"invalid step count"}`; got != want {
		t.Errorf("failure response = %s, want %s", got, want)
	}

	out, err = json.Marshal(Response{
		ID:    1,
		Paths: []region.Path{{{L: 0.5, C: 0.1}}},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `{"id":1,"paths":[[{"l":0.5,"c":0.1}]]}`; got != want {
		t.Errorf("path response = %s, want %s", got, want)
	}
}
