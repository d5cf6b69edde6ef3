package models

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// Image mirrors the fields of the backend image serializer the CLI shows.
// Timestamps are kept as strings because the server may omit the zone.
type Image struct {
	ID           int64    `json:"id"`
	Category     *int64   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	ImgURL       string   `json:"img_url,omitempty"`
	ThumbURL     string   `json:"thumb_url,omitempty"`
	FileSize     *int64   `json:"file_size,omitempty"`
	Width        *int     `json:"width,omitempty"`
	Height       *int     `json:"height,omitempty"`
	CameraModel  string   `json:"camera_model,omitempty"`
	ShootTime    string   `json:"shoot_time,omitempty"`
	Location     string   `json:"location,omitempty"`
	IsPublic     bool     `json:"is_public"`
	UploadTime   string   `json:"upload_time,omitempty"`
	UploaderName string   `json:"uploader_name,omitempty"`
}

func (i Image) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d", i.ID)
	if i.Width != nil && i.Height != nil {
		fmt.Fprintf(&b, " %dx%d", *i.Width, *i.Height)
	}
	if i.UploaderName != "" {
		fmt.Fprintf(&b, " by %s", i.UploaderName)
	}
	if len(i.Tags) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(i.Tags, ", "))
	}
	if !i.IsPublic {
		b.WriteString(" (private)")
	}
	return b.String()
}

// ImageFilter holds the list query parameters understood by GET /images/.
type ImageFilter struct {
	Query     string
	Category  int64
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Page      int    `validate:"gte=0"`
}

// Values encodes the non-zero fields as query parameters.
func (f ImageFilter) Values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.Category != 0 {
		v.Set("category", strconv.FormatInt(f.Category, 10))
	}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	return v
}

// ImageFile is the binary payload sent under the img_url form field.
type ImageFile struct {
	Name    string
	Content io.Reader
}

// ImageUpload is the multipart payload of POST /images/ and PATCH /images/{id}/.
// For updates every field is optional; nil means "leave unchanged".
type ImageUpload struct {
	File     *ImageFile
	Category *int64
	IsPublic *bool
	Location *string
}

// ImagePage is a page of the paginated list response.
type ImagePage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Image `json:"results"`
}
