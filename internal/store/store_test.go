package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"sanguo/internal/model"
)

func TestPutGet(t *testing.T) {
	s := NewRoomStore()
	if _, err := s.Get("NOPE22"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}

	room := &model.Room{Code: "ABC234"}
	if err := s.Put(room); err != nil {
		t.Fatalf("Put err: %v", err)
	}
	if err := s.Put(&model.Room{Code: "ABC234"}); !errors.Is(err, ErrRoomExists) {
		t.Fatalf("expected ErrRoomExists, got %v", err)
	}
	got, err := s.Get("ABC234")
	if err != nil || got != room {
		t.Fatalf("Get returned %p, %v", got, err)
	}
	if !s.Exists("ABC234") || s.Len() != 1 {
		t.Fatalf("room not tracked")
	}
	if s.Exists("NOPE22") {
		t.Fatalf("unknown code reported as existing")
	}
}

func TestConcurrentPut(t *testing.T) {
	s := NewRoomStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Put(&model.Room{Code: fmt.Sprintf("R%05d", i%25)})
		}(i)
	}
	wg.Wait()
	if s.Len() != 25 {
		t.Fatalf("Len = %d, want 25", s.Len())
	}
	for i := 0; i < 25; i++ {
		if !s.Exists(fmt.Sprintf("R%05d", i)) {
			t.Fatalf("room R%05d missing", i)
		}
	}
}
