package pipeline

import (
	"testing"
	"time"

	"recipeclip/internal/recipe"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	h1 := ContentHashHex([]byte("aaa"))
	h2 := ContentHashHex([]byte("bbb"))
	if h1 == h2 {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewJob_InitialState(t *testing.T) {
	job := NewJob("recipe.html", []byte("<html></html>"))
	if len(job.ID) != 26 {
		t.Errorf("expected a 26-character job ID, got %q", job.ID)
	}
	if job.Status != StatusQueued {
		t.Errorf("expected status %q, got %q", StatusQueued, job.Status)
	}
	if job.ContentHash == "" {
		t.Error("expected content hash to be set")
	}
	if string(job.FileData()) != "<html></html>" {
		t.Error("expected file data retained until processing")
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("recipe.html", nil)

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusConverting, "converting"},
		{StatusExtracting, "extracting"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_SnapshotCarriesResultAndErrors(t *testing.T) {
	job := NewJob("recipe.html", nil)
	job.AddError("first problem")
	job.SetResult(&recipe.Recipe{Title: "Soup", Ingredients: []string{"1 onion", "2 cups broth"}})
	job.SetStatus(StatusCompleted, "done")

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Errorf("expected completed status, got %q", snap.Status)
	}
	if snap.Recipe == nil || snap.Recipe.Title != "Soup" {
		t.Errorf("expected recipe in snapshot, got %+v", snap.Recipe)
	}
	if len(snap.Errors) != 1 || snap.Errors[0] != "first problem" {
		t.Errorf("expected recorded error, got %v", snap.Errors)
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	// Snapshot should always return a non-nil errors slice.
	job := NewJob("recipe.html", nil)
	snap := job.Snapshot()
	if snap.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	if len(snap.Errors) != 0 {
		t.Errorf("expected empty errors, got %d", len(snap.Errors))
	}
}

func TestJob_ReleaseFileData(t *testing.T) {
	job := NewJob("recipe.html", []byte("bytes"))
	job.ReleaseFileData()
	if job.FileData() != nil {
		t.Error("expected file data released")
	}
}

func TestJobStore_PutGetCleanup(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	job := NewJob("a.html", nil)
	store.Put(job)

	if got := store.Get(job.ID); got != job {
		t.Fatal("expected stored job back")
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown ID, got %+v", got)
	}

	time.Sleep(20 * time.Millisecond)
	store.Cleanup()
	if got := store.Get(job.ID); got != nil {
		t.Error("expected expired job evicted")
	}
}

func TestGenerateULID_UniqueAndFixedLength(t *testing.T) {
	a := generateULID()
	b := generateULID()
	if a == b {
		t.Error("expected distinct IDs")
	}
	if len(a) != 26 || len(b) != 26 {
		t.Errorf("expected 26-character IDs, got %d and %d", len(a), len(b))
	}
}
