package service

import (
	"testing"
	"time"

	"github.com/matt94856/excel-financial-processor/model"
)

func newTestStore(maxJobs int) *JobStore {
	return &JobStore{
		jobs:    make(map[string]*model.Job),
		maxJobs: maxJobs,
	}
}

func TestJobStoreSaveAndGet(t *testing.T) {
	store := newTestStore(100)

	job := &model.Job{
		ID:        "test-id-1",
		Filename:  "test.xlsx",
		Tenant:    "tenant1",
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	}

	store.Save(job)

	retrieved := store.Get("test-id-1")
	if retrieved == nil {
		t.Fatal("Expected to retrieve job")
	}
	if retrieved.Filename != "test.xlsx" {
		t.Errorf("Expected filename test.xlsx, got %s", retrieved.Filename)
	}

	if store.Get("non-existent") != nil {
		t.Error("Expected nil for non-existent job")
	}
}

func TestJobStoreGetByTenant(t *testing.T) {
	store := newTestStore(100)

	store.Save(&model.Job{ID: "a", Tenant: "tenant1", CreatedAt: time.Now()})
	store.Save(&model.Job{ID: "b", Tenant: "tenant1", CreatedAt: time.Now()})
	store.Save(&model.Job{ID: "c", Tenant: "tenant2", CreatedAt: time.Now()})

	jobs := store.GetByTenant("tenant1")
	if len(jobs) != 2 {
		t.Errorf("Expected 2 jobs for tenant1, got %d", len(jobs))
	}
	if len(store.GetByTenant("tenant3")) != 0 {
		t.Error("Expected no jobs for unknown tenant")
	}
}

func TestJobStoreUpdateStatus(t *testing.T) {
	store := newTestStore(100)
	store.Save(&model.Job{ID: "j1", Status: model.StatusPending, CreatedAt: time.Now()})

	store.UpdateStatus("j1", model.StatusFailed, "boom")

	job := store.Get("j1")
	if job.Status != model.StatusFailed {
		t.Errorf("Expected status failed, got %s", job.Status)
	}
	if job.ErrorMsg != "boom" {
		t.Errorf("Expected error message 'boom', got %q", job.ErrorMsg)
	}
}

func TestJobStoreComplete(t *testing.T) {
	store := newTestStore(100)
	store.Save(&model.Job{ID: "j1", Status: model.StatusProcessing, CreatedAt: time.Now()})

	doc := &model.ProcessedDocument{FileName: "input.xlsx"}
	store.Complete("j1", doc, "t/j1/processed.xlsx", "t/j1/processed.pdf",
		"http://example.com/x.xlsx", "http://example.com/x.pdf")

	job := store.Get("j1")
	if job.Status != model.StatusCompleted {
		t.Errorf("Expected status completed, got %s", job.Status)
	}
	if job.Document == nil || job.Document.FileName != "input.xlsx" {
		t.Error("Expected document to be recorded")
	}
	if job.ExcelURL == "" || job.PDFURL == "" {
		t.Error("Expected download URLs to be recorded")
	}
}

func TestJobStoreDelete(t *testing.T) {
	store := newTestStore(100)
	store.Save(&model.Job{ID: "j1", CreatedAt: time.Now()})

	store.Delete("j1")

	if store.Get("j1") != nil {
		t.Error("Expected job to be deleted")
	}
}

func TestJobStoreEvictsOldestWhenFull(t *testing.T) {
	store := newTestStore(2)

	base := time.Now()
	store.Save(&model.Job{ID: "oldest", CreatedAt: base.Add(-2 * time.Hour)})
	store.Save(&model.Job{ID: "middle", CreatedAt: base.Add(-1 * time.Hour)})
	store.Save(&model.Job{ID: "newest", CreatedAt: base})

	if store.Count() != 2 {
		t.Fatalf("Expected store capped at 2 jobs, got %d", store.Count())
	}
	if store.Get("oldest") != nil {
		t.Error("Expected oldest job to be evicted")
	}
	if store.Get("newest") == nil {
		t.Error("Expected newest job to be kept")
	}
}

func TestJobStoreUnlimited(t *testing.T) {
	store := newTestStore(0)

	for i := 0; i < 150; i++ {
		store.Save(&model.Job{ID: string(rune('a' + i)), CreatedAt: time.Now()})
	}

	if store.Count() != 150 {
		t.Errorf("Expected 150 jobs with unlimited store, got %d", store.Count())
	}
}
