package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"recipeclip/internal/extract"
	"recipeclip/internal/source"
)

// Worker processes a single import job: convert the file to markup,
// then run the extraction chain over it.
type Worker struct {
	log         *slog.Logger
	pdfFallback bool
}

func NewWorker(log *slog.Logger) *Worker {
	return &Worker{log: log, pdfFallback: true}
}

// SetPDFFallback controls whether PDF conversion may shell out to
// pdftotext when the library path fails.
func (w *Worker) SetPDFFallback(on bool) {
	w.pdfFallback = on
}

// Process runs the full import pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	defer job.ReleaseFileData()

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: Convert to markup.
	job.SetStatus(StatusConverting, "converting")
	conv, err := source.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "converting")
		return
	}
	if p, ok := conv.(*source.PDFConverter); ok {
		p.FallbackPdftotext = w.pdfFallback
	}

	markup, err := conv.Convert(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("conversion failed", "error", err)
		job.AddError(fmt.Sprintf("convert: %s", err))
		job.SetStatus(StatusFailed, "converting")
		return
	}

	// Phase 2: Extract. The chain itself never fails; the only
	// outcomes are a recipe or nothing recognizable.
	job.SetStatus(StatusExtracting, "extracting")
	rec := extract.FromHTML(markup, "")
	if rec == nil {
		log.Info("no recipe found")
		job.SetStatus(StatusNoRecipe, "done")
		return
	}
	if rec.Title == "" {
		base := filepath.Base(job.Filename)
		rec.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	job.SetResult(rec)
	job.SetStatus(StatusCompleted, "done")
	log.Info("import complete", "title", rec.Title,
		"ingredients", len(rec.Ingredients), "instructions", len(rec.Instructions))
}
