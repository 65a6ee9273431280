package store

import "github.com/amishk599/prepmap/internal/model"

// NopStore is used when history.path is empty. It records nothing and
// always reports an empty history.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Record(entry model.HistoryEntry) error        { return nil }
func (s *NopStore) Latest() (model.HistoryEntry, bool, error)    { return model.HistoryEntry{}, false, nil }
func (s *NopStore) List(limit int) ([]model.HistoryEntry, error) { return nil, nil }
func (s *NopStore) Close() error                                 { return nil }
