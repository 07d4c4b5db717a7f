package stores

import (
	"bytes"
	"context"
	"fmt"

	"traffic-analyzer/internal/shared/filestorages"
)

// ReportStore publishes rendered reports. A report replaces any previous file
// with the same name in one step, so a reader sees either the old report or the
// new one, never a partial write.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, name string, body []byte) error
}

type reportStore struct {
	fileStorage filestorages.FileStorage
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage}
}

func (s *reportStore) Put(ctx context.Context, name string, body []byte) error {
	_, err := s.fileStorage.Put(ctx, name, bytes.NewReader(body), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put report %q: %w", name, err)
	}
	return nil
}
