package event

import "testing"

func TestManager_DispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		calls = append(calls, "first:"+e.Data.(BufferSavedData).FilePath)
		return false
	})
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		calls = append(calls, "second")
		return true
	})
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	m.Dispatch(TypeBufferSaved, BufferSavedData{FilePath: "a.txt"})

	if len(calls) != 2 || calls[0] != "first:a.txt" || calls[1] != "second" {
		t.Fatalf("calls=%v", calls)
	}
}

func TestManager_NoHandlers(t *testing.T) {
	m := NewManager()
	m.Dispatch(TypeAppQuit, AppQuitData{}) // must not panic
}

func TestType_String(t *testing.T) {
	if TypeCaretMoved.String() != "CaretMoved" || Type(99).String() != "Unknown" {
		t.Fatalf("unexpected names")
	}
}
