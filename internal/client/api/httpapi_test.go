package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/client/httpclient"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSession struct{ credential string }

func (s *staticSession) Credential() string           { return s.credential }
func (s *staticSession) Logout(context.Context) error { s.credential = ""; return nil }

type staticNav struct{ current string }

func (n *staticNav) Current() string                        { return n.current }
func (n *staticNav) Redirect(_ context.Context, path string) { n.current = path }

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify(context.Context, httpclient.Level, string) { c.n++ }

func newTestClient(t *testing.T, r chi.Router) (*HTTPClient, *countingNotifier) {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	notifier := &countingNotifier{}
	hc, err := httpclient.New(httpclient.Config{BaseURL: srv.URL + "/api", Timeout: time.Second},
		&staticSession{credential: "tok"}, &staticNav{current: "/"}, httpclient.WithNotifier(notifier))
	require.NoError(t, err)
	return NewHTTPClient(hc), notifier
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	var got models.Credentials
	r := chi.NewRouter()
	r.Post("/api/auth/login/", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]string{"access": "A", "refresh": "R"})
	})
	c, _ := newTestClient(t, r)

	pair, err := c.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, &models.TokenPair{Access: "A", Refresh: "R"}, pair)
	assert.Equal(t, models.Credentials{Username: "alice", Password: "secret"}, got)
}

func TestRegister(t *testing.T) {
	var got map[string]string
	r := chi.NewRouter()
	r.Post("/api/auth/register/", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&got)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 9, "username": "bob"})
	})
	c, _ := newTestClient(t, r)

	p, err := c.Register(context.Background(), models.Registration{Username: "bob", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.ID)
	assert.Equal(t, map[string]string{"username": "bob", "password": "hunter22"}, got)
}

func TestMe_FailureIsQuiet(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/auth/me/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
	})
	c, notifier := newTestClient(t, r)

	_, err := c.Me(context.Background())
	var respErr *httpclient.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, 0, notifier.n)
}

func TestListImages_BothResponseShapes(t *testing.T) {
	images := []map[string]any{{"id": 1, "is_public": true}, {"id": 2, "is_public": false}}
	next := "http://x/api/images/?page=2"

	tests := []struct {
		name string
		body any
		want *models.ImagePage
	}{
		{
			name: "bare array",
			body: images,
			want: &models.ImagePage{Count: 2, Results: []models.Image{{ID: 1, IsPublic: true}, {ID: 2}}},
		},
		{
			name: "paginated",
			body: map[string]any{"count": 12, "next": next, "previous": nil, "results": images},
			want: &models.ImagePage{Count: 12, Next: &next, Results: []models.Image{{ID: 1, IsPublic: true}, {ID: 2}}},
		},
		{
			name: "empty page",
			body: map[string]any{"count": 0, "results": nil},
			want: &models.ImagePage{Results: []models.Image{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/images/", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})
			c, _ := newTestClient(t, r)

			got, err := c.ListImages(context.Background(), models.ImageFilter{})
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ListImages() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListImages_SendsFilter(t *testing.T) {
	var q string
	r := chi.NewRouter()
	r.Get("/api/images/", func(w http.ResponseWriter, req *http.Request) {
		q = req.URL.RawQuery
		writeJSON(w, http.StatusOK, []any{})
	})
	c, _ := newTestClient(t, r)

	_, err := c.ListImages(context.Background(), models.ImageFilter{Query: "sea", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, "page=2&q=sea", q)
}

func TestGetAndDeleteImage(t *testing.T) {
	var deleted string
	r := chi.NewRouter()
	r.Get("/api/images/{id}/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 42, "location": "Oslo"})
	})
	r.Delete("/api/images/{id}/", func(w http.ResponseWriter, req *http.Request) {
		deleted = chi.URLParam(req, "id")
		w.WriteHeader(http.StatusNoContent)
	})
	c, _ := newTestClient(t, r)

	img, err := c.GetImage(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Oslo", img.Location)

	require.NoError(t, c.DeleteImage(context.Background(), 42))
	assert.Equal(t, "42", deleted)
}

func TestUploadImage_MultipartFields(t *testing.T) {
	var (
		fields   map[string]string
		filename string
		content  string
	)
	r := chi.NewRouter()
	r.Post("/api/images/", func(w http.ResponseWriter, req *http.Request) {
		assert.NoError(t, req.ParseMultipartForm(1<<20))
		fields = map[string]string{}
		for k, v := range req.MultipartForm.Value {
			fields[k] = v[0]
		}
		f, hdr, err := req.FormFile(FieldImage)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		filename, content = hdr.Filename, string(b)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 5})
	})
	c, _ := newTestClient(t, r)

	category := int64(3)
	public := true
	location := "Bergen"
	img, err := c.UploadImage(context.Background(), models.ImageUpload{
		File:     &models.ImageFile{Name: "fjord.jpg", Content: strings.NewReader("JPEG")},
		Category: &category,
		IsPublic: &public,
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), img.ID)
	assert.Equal(t, map[string]string{"category": "3", "is_public": "true", "location": "Bergen"}, fields)
	assert.Equal(t, "fjord.jpg", filename)
	assert.Equal(t, "JPEG", content)
}

func TestUpdateImage_SendsOnlySetFields(t *testing.T) {
	var fields map[string][]string
	var method string
	r := chi.NewRouter()
	r.Patch("/api/images/{id}/", func(w http.ResponseWriter, req *http.Request) {
		method = req.Method
		assert.NoError(t, req.ParseMultipartForm(1<<20))
		fields = req.MultipartForm.Value
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "is_public": false})
	})
	c, _ := newTestClient(t, r)

	public := false
	_, err := c.UpdateImage(context.Background(), 7, models.ImageUpload{IsPublic: &public})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, map[string][]string{"is_public": {"false"}}, fields)
}

func TestCategories(t *testing.T) {
	var created models.NewCategory
	r := chi.NewRouter()
	r.Get("/api/categories/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "travel"}})
	})
	r.Post("/api/categories/", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&created)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 2, "name": created.Name})
	})
	c, _ := newTestClient(t, r)

	list, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: 1, Name: "travel"}}, list)

	cat, err := c.CreateCategory(context.Background(), models.NewCategory{Name: "food"})
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 2, Name: "food"}, cat)
	assert.Equal(t, "food", created.Name)
}

func TestErrorsAreReturnedUnchanged(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/images/{id}/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	})
	c, notifier := newTestClient(t, r)

	_, err := c.GetImage(context.Background(), 1)
	var respErr *httpclient.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Not found.", respErr.Message)
	assert.Equal(t, 1, notifier.n)
}
