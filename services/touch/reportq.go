// services/touch/reportq.go
package touch

import (
	"sync"
	"sync/atomic"

	"touchcore-go/errcode"
	"touchcore-go/types"
)

// Completion is the single final outcome of a read request.
type Completion struct {
	Err          error
	BytesWritten int
}

// ReadRequest is one outstanding client read. The buffer must hold exactly
// one report record; smaller buffers fail the request at delivery time.
type ReadRequest struct {
	Buffer []byte
	done   chan Completion
}

func NewReadRequest(buf []byte) *ReadRequest {
	return &ReadRequest{Buffer: buf, done: make(chan Completion, 1)}
}

// Done yields the completion. At most one value is ever sent.
func (r *ReadRequest) Done() <-chan Completion { return r.done }

func (r *ReadRequest) complete(err error, n int) {
	select {
	case r.done <- Completion{Err: err, BytesWritten: n}:
	default:
		// already completed
	}
}

// RequestQueue parks client reads in submission order until records match
// them. Submit and Deliver may run concurrently; each popped request
// completes exactly once, synchronously with its match. Records are never
// buffered: one with no waiting request is lost for good.
type RequestQueue struct {
	mu      sync.Mutex
	pending []*ReadRequest

	drops uint32 // records dropped for want of a request
}

func NewRequestQueue() *RequestQueue { return &RequestQueue{} }

// Submit parks a request. Depth is unbounded.
func (q *RequestQueue) Submit(r *ReadRequest) {
	q.mu.Lock()
	q.pending = append(q.pending, r)
	q.mu.Unlock()
}

// Len reports the parked request count.
func (q *RequestQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drops reports how many records were dropped with no request waiting.
func (q *RequestQueue) Drops() uint32 { return atomic.LoadUint32(&q.drops) }

func (q *RequestQueue) popNext() (*ReadRequest, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	r := q.pending[0]
	q.pending = q.pending[1:]
	return r, true
}

// Deliver matches a batch of records against parked requests: records in
// production order, requests in submission order. An undersized buffer
// fails that request and loses that record; the loop moves on to the next
// record without requeuing anything.
func (q *RequestQueue) Deliver(reports []types.InputReport) (delivered, dropped, rejected int) {
	for i := range reports {
		req, ok := q.popNext()
		if !ok {
			atomic.AddUint32(&q.drops, 1)
			dropped++
			continue
		}
		if len(req.Buffer) < types.ReportSize {
			req.complete(&errcode.E{C: errcode.BufferTooSmall, Op: "touch.deliver"}, 0)
			rejected++
			continue
		}
		copy(req.Buffer, reports[i][:])
		req.complete(nil, types.ReportSize)
		delivered++
	}
	return delivered, dropped, rejected
}
