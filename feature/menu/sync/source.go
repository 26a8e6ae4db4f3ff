package sync

import (
	"context"
	"fmt"

	"menu-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

// Source yields the raw worksheet grid for one reconciliation pass. A read
// error here aborts the whole pass; nothing may be mutated against a sheet
// that could not be read completely.
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
}

// WorkbookSource reads the menu workbook from object storage.
type WorkbookSource struct {
	client storage.Client
	bucket string
	object string
	sheet  string
}

// NewWorkbookSource creates a source reading the given workbook object.
func NewWorkbookSource(client storage.Client, bucket, object, sheet string) *WorkbookSource {
	return &WorkbookSource{client: client, bucket: bucket, object: object, sheet: sheet}
}

// Rows downloads the workbook and returns the configured worksheet's cells.
func (w *WorkbookSource) Rows(ctx context.Context) ([][]string, error) {
	obj, err := w.client.GetObject(ctx, w.bucket, w.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workbook %s/%s: %w", w.bucket, w.object, err)
	}
	defer obj.Close()

	book, err := excelize.OpenReader(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", w.object, err)
	}
	defer book.Close()

	rows, err := book.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", w.sheet, err)
	}
	return rows, nil
}
