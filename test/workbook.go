package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

// Tab is one spreadsheet tab of a test workbook.
type Tab struct {
	Name string
	Rows [][]any
}

// WorkbookBytes builds an xlsx workbook from the tabs.
func WorkbookBytes(t *testing.T, tabs ...Tab) *bytes.Buffer {
	f := excelize.NewFile()

	for i, tab := range tabs {
		if i == 0 {
			err := f.SetSheetName("Sheet1", tab.Name)
			if err != nil {
				assert.FailNow(t, err.Error())
			}
		} else {
			_, err := f.NewSheet(tab.Name)
			if err != nil {
				assert.FailNow(t, err.Error())
			}
		}

		for r := range tab.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				assert.FailNow(t, err.Error())
			}

			if err := f.SetSheetRow(tab.Name, cell, &tab.Rows[r]); err != nil {
				assert.FailNow(t, err.Error())
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		assert.FailNow(t, err.Error())
	}

	return buffer
}

// WorkbookUpload builds an xlsx workbook from the tabs and wraps it in a
// multipart form.
//
// File contents are returned as a buffer and a map for the HTTP request headers.
func WorkbookUpload(t *testing.T, tabs ...Tab) (*bytes.Buffer, map[string]string) {
	file := WorkbookBytes(t, tabs...)

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", "import.xlsx")
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := w.Write(file.Bytes()); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
