package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
)

// Body encodes a request payload.
type Body interface {
	Encode() (io.Reader, string, error)
}

type jsonBody struct {
	v any
}

// JSON sends v as an application/json body.
func JSON(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) Encode() (io.Reader, string, error) {
	raw, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("encode json body: %w", err)
	}
	return bytes.NewReader(raw), "application/json", nil
}

type formFile struct {
	field    string
	filename string
	content  io.Reader
}

type formField struct {
	name  string
	value string
}

// Form is a multipart/form-data payload. Parts are written in insertion order.
type Form struct {
	fields []formField
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Field(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

func (f *Form) File(field, filename string, content io.Reader) *Form {
	f.files = append(f.files, formFile{field: field, filename: filename, content: content})
	return f
}

// Empty reports whether the form has no parts at all.
func (f *Form) Empty() bool {
	return len(f.fields) == 0 && len(f.files) == 0
}

func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", fld.name, err)
		}
	}
	for _, ff := range f.files {
		part, err := w.CreateFormFile(ff.field, ff.filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file %s: %w", ff.field, err)
		}
		if _, err := io.Copy(part, ff.content); err != nil {
			return nil, "", fmt.Errorf("copy form file %s: %w", ff.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
