package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/docforge/docforge-backend/internal/types"
)

func TestSuggest_NilClientFallsBackPerKind(t *testing.T) {
	log := newTestLogger(t)
	callLog := &fakeAICallLogRepo{}
	svc := NewOutlineService(log, nil, callLog)

	got := svc.Suggest(context.Background(), "anything", types.KindLongForm)
	if !reflect.DeepEqual(got, longFormFallbackOutline) {
		t.Fatalf("expected long-form fallback outline, got %v", got)
	}

	got = svc.Suggest(context.Background(), "anything", types.KindSlideDeck)
	if !reflect.DeepEqual(got, slideDeckFallbackOutline) {
		t.Fatalf("expected slide-deck fallback outline, got %v", got)
	}
	if got[0] != "Title Slide" || got[len(got)-1] != "Thank You" {
		t.Fatalf("slide-deck fallback must open with Title Slide and close with Thank You: %v", got)
	}

	if len(callLog.logs) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(callLog.logs))
	}
	if callLog.logs[0].Success {
		t.Fatalf("unconfigured client should audit as failure")
	}
}

func TestSuggest_FailingClientFallsBack(t *testing.T) {
	log := newTestLogger(t)
	ai := &fakeAIClient{err: errors.New("service down")}
	svc := NewOutlineService(log, ai, &fakeAICallLogRepo{})

	got := svc.Suggest(context.Background(), "topic", types.KindLongForm)
	if !reflect.DeepEqual(got, longFormFallbackOutline) {
		t.Fatalf("expected fallback outline on client error, got %v", got)
	}
}

func TestSuggest_SplitsGeneratedLines(t *testing.T) {
	log := newTestLogger(t)
	ai := &fakeAIClient{reply: textReply("Introduction\n\n  Methods  \nResults\n")}
	callLog := &fakeAICallLogRepo{}
	svc := NewOutlineService(log, ai, callLog)

	got := svc.Suggest(context.Background(), "topic", types.KindLongForm)
	want := []string{"Introduction", "Methods", "Results"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(ai.prompts) != 1 {
		t.Fatalf("expected exactly one generation call, got %d", len(ai.prompts))
	}
	if len(callLog.logs) != 1 || !callLog.logs[0].Success {
		t.Fatalf("expected one successful audit row, got %+v", callLog.logs)
	}
}

func TestSuggest_FallbackOutlinesAreCopies(t *testing.T) {
	log := newTestLogger(t)
	svc := NewOutlineService(log, nil, &fakeAICallLogRepo{})

	got := svc.Suggest(context.Background(), "t", types.KindLongForm)
	got[0] = "mutated"
	again := svc.Suggest(context.Background(), "t", types.KindLongForm)
	if again[0] != "Introduction" {
		t.Fatalf("fallback outline leaked shared state: %v", again)
	}
}
