package sync

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"menu-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes the given rows into an in-memory xlsx file.
func buildWorkbook(t *testing.T, sheet string, rows [][]string) []byte {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	index, err := book.NewSheet(sheet)
	require.NoError(t, err)
	book.SetActiveSheet(index)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, book.Write(&buf))
	return buf.Bytes()
}

func TestWorkbookSource_Rows(t *testing.T) {
	data := buildWorkbook(t, "Menu", [][]string{
		{menuID, "Drinks", "Hot and cold drinks"},
		{"", submenuID, "Coffee", "Espresso based"},
	})

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "sheets", "Menu.xlsx", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	source := NewWorkbookSource(client, "sheets", "Menu.xlsx", "Menu")
	rows, err := source.Rows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, menuID, rows[0][0])
	assert.Equal(t, "Coffee", rows[1][2])
	client.AssertExpectations(t)
}

func TestWorkbookSource_FetchError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "sheets", "Menu.xlsx", mock.Anything).
		Return(nil, errors.New("object not found"))

	source := NewWorkbookSource(client, "sheets", "Menu.xlsx", "Menu")
	_, err := source.Rows(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "object not found")
}

func TestWorkbookSource_NotAWorkbook(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "sheets", "Menu.xlsx", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("plain text"))), nil)

	source := NewWorkbookSource(client, "sheets", "Menu.xlsx", "Menu")
	_, err := source.Rows(context.Background())

	assert.Error(t, err)
}

func TestWorkbookSource_MissingWorksheet(t *testing.T) {
	data := buildWorkbook(t, "Menu", [][]string{{menuID, "Drinks", "Desc"}})

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "sheets", "Menu.xlsx", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	source := NewWorkbookSource(client, "sheets", "Menu.xlsx", "NoSuchSheet")
	_, err := source.Rows(context.Background())

	assert.Error(t, err)
}
