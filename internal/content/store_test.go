package content

import (
	"context"
	"encoding/json"
	"sync"
)

type storeCall struct {
	Query  string
	Params map[string]any
}

// fakeStore answers every query with one JSON payload or one error.
type fakeStore struct {
	mu     sync.Mutex
	result string
	err    error
	calls  []storeCall
}

func (s *fakeStore) Query(_ context.Context, query string, params map[string]any, dest any) error {
	s.mu.Lock()
	s.calls = append(s.calls, storeCall{Query: query, Params: params})
	s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.result == "" || s.result == "null" {
		return nil
	}
	return json.Unmarshal([]byte(s.result), dest)
}

func (s *fakeStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *fakeStore) lastCall() storeCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return storeCall{}
	}
	return s.calls[len(s.calls)-1]
}
