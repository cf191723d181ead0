package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	return &buf
}

func TestSubscriberImporter_ParseSubscribers(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"Contract", "Surname", "City", "District", "Street", "House", "Latitude", "Longitude", "Status"},
		{"1001", "Иванов", "Ангарск", "", "Кулибина", "22", "52,5447", "103.886", ""},
		{"", "", "", "", "", "", "", "", ""},
		{"1002", "Петров", "Иркутск", "", "", "5", "", "", ""},
		{"1003", "Сидоров", "Иркутск", "Октябрьский", "", "7", "abc", "", ""},
		{"1004", "Орлов", "Иркутск", "", "Ленина", "1", "", "", "Inactive"},
		{"1005", "Лосев", "Иркутск", "", "Ленина", "", "", "", ""},
		{"1006", "Ершов", "Иркутск", "", "Ленина", "2", "", "", "closed"},
	})

	subscribers, rejected, err := NewSubscriberImporter().ParseSubscribers(buf)
	require.NoError(t, err)

	require.Len(t, subscribers, 2)
	assert.Equal(t, "1001", subscribers[0].ContractNumber)
	assert.InDelta(t, 52.5447, subscribers[0].Latitude, 1e-9)
	assert.InDelta(t, 103.886, subscribers[0].Longitude, 1e-9)
	assert.Equal(t, entity.SubscriberActive, subscribers[0].Status)
	assert.Equal(t, "1004", subscribers[1].ContractNumber)
	assert.Equal(t, entity.SubscriberInactive, subscribers[1].Status)

	assert.Equal(t, []service.ImportRowError{
		{Row: 4, Reason: "district or street is required"},
		{Row: 5, Reason: "invalid latitude"},
		{Row: 7, Reason: "house is empty"},
		{Row: 8, Reason: `unknown status "closed"`},
	}, rejected)
}

func TestSubscriberImporter_MissingColumn(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"contract", "city"},
		{"1001", "Ангарск"},
	})

	_, _, err := NewSubscriberImporter().ParseSubscribers(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"house"`)
}

func TestSubscriberImporter_NotASpreadsheet(t *testing.T) {
	t.Parallel()

	_, _, err := NewSubscriberImporter().ParseSubscribers(strings.NewReader("not xlsx"))
	assert.Error(t, err)
}

func TestSubscriberImporter_RepeatedContractKeepsLastRow(t *testing.T) {
	t.Parallel()

	buf := buildWorkbook(t, [][]any{
		{"contract_number", "city", "street", "house"},
		{"2001", "Казань", "Баумана", "1-3"},
		{"2002", "Казань", "Баумана", "5"},
		{"2001", "Казань", "Баумана", "13"},
		{"2003", "Казань", "", "7"},
		{"2001", "Казань", "Баумана", "15"},
	})

	subscribers, rejected, err := NewSubscriberImporter().ParseSubscribers(buf)
	require.NoError(t, err)

	require.Len(t, subscribers, 2)
	assert.Equal(t, "2001", subscribers[0].ContractNumber)
	assert.Equal(t, "15", subscribers[0].House)
	assert.Equal(t, "2002", subscribers[1].ContractNumber)

	assert.Equal(t, []service.ImportRowError{
		{Row: 2, Reason: "contract 2001 repeated in row 4"},
		{Row: 4, Reason: "contract 2001 repeated in row 6"},
		{Row: 5, Reason: "district or street is required"},
	}, rejected)
}
