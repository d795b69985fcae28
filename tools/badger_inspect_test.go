package main

import (
	"pressure-lab/mocks"
	"pressure-lab/services"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReadHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should report an absent key as an empty history", func(t *testing.T) {
		req := require.New(t)
		store := mocks.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(services.HistoryStorageKey).Return(nil, nil)

		raw, entries, dropped, err := readHistory(store, services.HistoryStorageKey)

		req.NoError(err)
		req.Empty(raw)
		req.Empty(entries)
		req.Zero(dropped)
	})

	t.Run("should count the entries it drops", func(t *testing.T) {
		req := require.New(t)
		store := mocks.NewMockIKeyValueStore(ctrl)
		store.EXPECT().Get(services.HistoryStorageKey).Return([]byte(`[
			{"timestamp":"2024-01-01T00:00:00Z","value":1,"from":"atm","to":"psi","result":14.695949},
			{"timestamp":"","value":1,"from":"atm","to":"psi","result":14.695949}
		]`), nil)

		_, entries, dropped, err := readHistory(store, services.HistoryStorageKey)

		req.NoError(err)
		req.Len(entries, 1)
		req.Equal(1, dropped)
	})
}
