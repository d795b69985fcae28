package ui

import (
	"bytes"
	"fmt"
	"pressure-lab/domain"
	"pressure-lab/errors"
	"pressure-lab/mocks"
	"pressure-lab/services"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTerminal(t *testing.T, input string) (*Terminal, *mocks.MockIConverterService, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIConverterService(ctrl)
	out := &bytes.Buffer{}
	return NewTerminal(service, strings.NewReader(input), out), service, out
}

func TestTerminal_Convert(t *testing.T) {
	t.Run("should print the summary and record the conversion", func(t *testing.T) {
		req := require.New(t)
		terminal, service, out := newTerminal(t, "")
		atm, _ := domain.PressureUnits.Lookup("atm")
		psi, _ := domain.PressureUnits.Lookup("psi")

		service.EXPECT().DefaultSelection().Return("kPa", "psi")
		service.EXPECT().Convert("1", "atm", "psi").Return(services.Conversion{
			Input: 1, Result: 14.695948775514218, From: atm, To: psi,
			FormattedInput: "1", FormattedOutput: "14.695949",
		}, nil)
		service.EXPECT().RecordConversion(1.0, "atm", "psi", 14.695948775514218).Times(1)

		code := terminal.Run([]string{"convert", "-from", "atm", "1"})

		req.Equal(ExitOK, code)
		req.Contains(out.String(), "1 atm = 14.695949 psi")
	})

	t.Run("should use the default selection and accept negative values after --", func(t *testing.T) {
		req := require.New(t)
		terminal, service, _ := newTerminal(t, "")
		kpa, _ := domain.PressureUnits.Lookup("kPa")
		psi, _ := domain.PressureUnits.Lookup("psi")

		service.EXPECT().DefaultSelection().Return("kPa", "psi")
		service.EXPECT().Convert("-5", "kPa", "psi").Return(services.Conversion{Input: -5, Result: -0.72, From: kpa, To: psi}, nil)
		service.EXPECT().RecordConversion(-5.0, "kPa", "psi", -0.72)

		req.Equal(ExitOK, terminal.Run([]string{"convert", "--", "-5"}))
	})

	t.Run("should show the error and the placeholder without recording", func(t *testing.T) {
		req := require.New(t)
		terminal, service, out := newTerminal(t, "")

		service.EXPECT().DefaultSelection().Return("kPa", "psi")
		service.EXPECT().Convert("abc", "kPa", "psi").Return(services.Conversion{}, fmt.Errorf("%w: %q", errors.ErrInvalidNumber, "abc"))
		service.EXPECT().RecordConversion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		code := terminal.Run([]string{"convert", "abc"})

		req.Equal(ExitError, code)
		req.Contains(out.String(), errors.UserMessage(errors.ErrInvalidNumber))
		req.Contains(out.String(), errors.Placeholder)
	})
}

func TestTerminal_Clear(t *testing.T) {
	entries := []domain.HistoryEntry{domain.NewHistoryEntry(time.Now(), 1, "atm", "psi", 14.7)}

	t.Run("should not prompt nor clear an empty history", func(t *testing.T) {
		req := require.New(t)
		terminal, service, out := newTerminal(t, "y\n")
		service.EXPECT().GetHistorySnapshot().Return(nil)
		service.EXPECT().ClearHistory().Times(0)

		req.Equal(ExitOK, terminal.Run([]string{"clear"}))
		req.Empty(out.String())
	})

	t.Run("should clear after confirmation", func(t *testing.T) {
		req := require.New(t)
		terminal, service, out := newTerminal(t, "y\n")
		service.EXPECT().GetHistorySnapshot().Return(entries)
		service.EXPECT().ClearHistory().Times(1)

		req.Equal(ExitOK, terminal.Run([]string{"clear"}))
		req.Contains(out.String(), "[y/N]")
	})

	t.Run("should keep the history when the user declines", func(t *testing.T) {
		req := require.New(t)
		terminal, service, _ := newTerminal(t, "n\n")
		service.EXPECT().GetHistorySnapshot().Return(entries)
		service.EXPECT().ClearHistory().Times(0)

		req.Equal(ExitOK, terminal.Run([]string{"clear"}))
	})

	t.Run("should keep the history when input ends", func(t *testing.T) {
		req := require.New(t)
		terminal, service, _ := newTerminal(t, "")
		service.EXPECT().GetHistorySnapshot().Return(entries)
		service.EXPECT().ClearHistory().Times(0)

		req.Equal(ExitOK, terminal.Run([]string{"clear"}))
	})

	t.Run("should skip the prompt with -yes", func(t *testing.T) {
		req := require.New(t)
		terminal, service, out := newTerminal(t, "")
		service.EXPECT().GetHistorySnapshot().Return(entries)
		service.EXPECT().ClearHistory().Times(1)

		req.Equal(ExitOK, terminal.Run([]string{"clear", "-yes"}))
		req.NotContains(out.String(), "[y/N]")
	})
}

func TestTerminal_History(t *testing.T) {
	req := require.New(t)
	terminal, service, out := newTerminal(t, "")
	service.EXPECT().GetHistorySnapshot().Return([]domain.HistoryEntry{
		{Timestamp: "bad timestamp", Value: 1000, From: "kPa", To: "Pa", Result: 1e6},
	})
	service.EXPECT().Lookup(gomock.Any()).DoAndReturn(domain.PressureUnits.Lookup).AnyTimes()
	service.EXPECT().IsPersistenceAvailable().Return(false)

	req.Equal(ExitOK, terminal.Run([]string{"history"}))
	req.Contains(out.String(), "bad timestamp")
	req.Contains(out.String(), "1,000 kPa")
	req.Contains(out.String(), "1e6 Pa")
	req.Contains(out.String(), "紀錄僅保存在本次執行期間")
}

func TestTerminal_Units(t *testing.T) {
	req := require.New(t)
	terminal, service, out := newTerminal(t, "")
	service.EXPECT().Units().Return(domain.PressureUnits.Units())

	req.Equal(ExitOK, terminal.Run([]string{"units"}))
	req.Contains(out.String(), "mmHg")
	req.Contains(out.String(), "6894.757293168")
}

func TestTerminal_Unknown_Command(t *testing.T) {
	req := require.New(t)
	terminal, service, out := newTerminal(t, "")
	service.EXPECT().DefaultSelection().Return("kPa", "psi").Times(2)

	req.Equal(ExitUsage, terminal.Run(nil))
	req.Equal(ExitUsage, terminal.Run([]string{"reset"}))
	req.Contains(out.String(), "pressure convert [-from kPa] [-to psi]")
}

func TestHistoryRows_Falls_Back_To_Raw_Ids(t *testing.T) {
	req := require.New(t)

	rows := historyRows([]domain.HistoryEntry{
		{Timestamp: "x", Value: 1, From: "atm", To: "gone", Result: 2},
	}, domain.PressureUnits.Lookup)

	req.Equal([][]string{{"x", "1 atm", "標準大氣壓 → gone", "2 gone"}}, rows)
}
