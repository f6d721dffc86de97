package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "companyatlas/pkg/domain-errors"
)

func TestAddDocumentRequestValidate(t *testing.T) {
	id := uuid.New()
	valid := func() AddDocumentRequest {
		return AddDocumentRequest{
			CompanyRef:   CompanyRef{CompanyName: " Tour Eiffel "},
			RecordFields: RecordFields{Country: "france", Title: " Kbis ", Date: "2024-02-01"},
			DocumentType: " kbis ",
			URL:          "https://example.org/kbis.pdf",
		}
	}

	tests := []struct {
		name   string
		mutate func(r *AddDocumentRequest)
		errMsg string
	}{
		{name: "valid", mutate: func(*AddDocumentRequest) {}},
		{name: "company by id", mutate: func(r *AddDocumentRequest) { r.CompanyName, r.CompanyID = "", &id }},
		{name: "undated", mutate: func(r *AddDocumentRequest) { r.Date = "" }},
		{name: "no company", mutate: func(r *AddDocumentRequest) { r.CompanyName = "  " }, errMsg: "company_id or company_name is required"},
		{name: "no type", mutate: func(r *AddDocumentRequest) { r.DocumentType = "" }, errMsg: "document_type is required"},
		{name: "no title", mutate: func(r *AddDocumentRequest) { r.Title = " " }, errMsg: "title is required"},
		{name: "bad date", mutate: func(r *AddDocumentRequest) { r.Date = "01/02/2024" }, errMsg: "date must be formatted as YYYY-MM-DD"},
		{name: "relative url", mutate: func(r *AddDocumentRequest) { r.URL = "/kbis.pdf" }, errMsg: "url must be an absolute http(s) URL"},
		{name: "ftp url", mutate: func(r *AddDocumentRequest) { r.URL = "ftp://example.org/kbis.pdf" }, errMsg: "url must be an absolute http(s) URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			req.Normalize()
			err := req.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAddDocumentRequestNormalize(t *testing.T) {
	req := AddDocumentRequest{
		CompanyRef:   CompanyRef{CompanyName: " Tour Eiffel "},
		RecordFields: RecordFields{Country: "france", Source: " infogreffe ", Title: " Kbis "},
		DocumentType: " kbis ",
	}
	req.Normalize()

	assert.Equal(t, "Tour Eiffel", req.CompanyName)
	assert.Equal(t, "FR", req.Country)
	assert.Equal(t, "infogreffe", req.Source)
	assert.Equal(t, "Kbis", req.Title)
	assert.Equal(t, "kbis", req.DocumentType)
	assert.NotNil(t, req.Metadata)
}

func TestAddEventRequestValidate(t *testing.T) {
	req := AddEventRequest{
		CompanyRef:   CompanyRef{CompanyName: "Tour Eiffel"},
		RecordFields: RecordFields{Title: "Capital increase", Date: "2024-02-30"},
		EventType:    "capital_change",
	}
	req.Normalize()
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date must be formatted as YYYY-MM-DD")

	req.Date = "2024-02-29"
	require.NoError(t, req.Validate())

	req.EventType = " "
	req.Normalize()
	assert.ErrorContains(t, req.Validate(), "event_type is required")
}

func TestRecordFields(t *testing.T) {
	doc := &Document{ID: uuid.New(), DocumentType: "kbis", Title: "Kbis", Source: "infogreffe"}
	v, ok := doc.Field("type")
	assert.True(t, ok)
	assert.Equal(t, "kbis", v)
	v, ok = doc.Field("pk")
	assert.True(t, ok)
	assert.Equal(t, doc.Key(), v)
	_, ok = doc.Field("description")
	assert.False(t, ok)

	event := &Event{EventType: "status_change", Description: "closed"}
	v, ok = event.Field("event_type")
	assert.True(t, ok)
	assert.Equal(t, "status_change", v)
	_, ok = event.Field("content")
	assert.False(t, ok)
}
