package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

const importBatchSize = 100

// ImportResult holds the outcome of a batch import operation.
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Imported   int              `json:"imported"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
	RolledBack bool             `json:"rolled_back"`
}

// ImportRowError represents a failure to insert a specific row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CommitSchoolImport batch-inserts parsed school rows into PocketBase.
// Rows are processed in chunks of importBatchSize; if any insert in a
// chunk fails the whole chunk is rolled back and the import continues
// with the next chunk.
func CommitSchoolImport(
	app *pocketbase.PocketBase,
	parsedRows []map[string]string,
) (*ImportResult, error) {
	col, err := app.FindCollectionByNameOrId("schools")
	if err != nil {
		return nil, fmt.Errorf("schools collection not found: %w", err)
	}

	result := &ImportResult{
		TotalRows: len(parsedRows),
	}

	for chunkStart := 0; chunkStart < len(parsedRows); chunkStart += importBatchSize {
		chunkEnd := chunkStart + importBatchSize
		if chunkEnd > len(parsedRows) {
			chunkEnd = len(parsedRows)
		}
		chunk := parsedRows[chunkStart:chunkEnd]

		chunkErrors := insertSchoolChunk(app, col, chunk, chunkStart)
		if len(chunkErrors) > 0 {
			result.Errors = append(result.Errors, chunkErrors...)
			result.Failed += len(chunk) // entire chunk failed
			result.RolledBack = true
		} else {
			result.Imported += len(chunk)
		}
	}

	return result, nil
}

// insertSchoolChunk inserts a batch of rows within a RunInTransaction block.
// If any row fails, the entire chunk is rolled back and errors are returned.
func insertSchoolChunk(
	app *pocketbase.PocketBase,
	col *core.Collection,
	rows []map[string]string,
	startOffset int,
) []ImportRowError {
	var chunkErrors []ImportRowError

	err := app.RunInTransaction(func(txApp core.App) error {
		for i, rowData := range rows {
			rowNum := startOffset + i + 2 // 1-indexed + header row

			record := core.NewRecord(col)
			for _, key := range importSchoolFieldKeys() {
				if val, ok := rowData[key]; ok && val != "" {
					record.Set(key, val)
				}
			}

			if err := txApp.Save(record); err != nil {
				chunkErrors = append(chunkErrors, ImportRowError{
					Row:     rowNum,
					Message: fmt.Sprintf("Failed to save: %s", err.Error()),
				})
				return fmt.Errorf("save failed at row %d: %w", rowNum, err)
			}
		}
		return nil
	})

	if err != nil {
		log.Printf("school_import: chunk insert rolled back: %v", err)
		if len(chunkErrors) == 0 {
			chunkErrors = append(chunkErrors, ImportRowError{
				Row:     startOffset + 2,
				Message: fmt.Sprintf("Transaction failed: %s", err.Error()),
			})
		}
	}

	return chunkErrors
}
