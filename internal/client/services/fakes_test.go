package services

import (
	"context"

	"github.com/dmitrijs2005/gophgallery/internal/client/api"
	"github.com/dmitrijs2005/gophgallery/internal/client/models"
)

// ---- fake client ----

type fakeClient struct {
	LoginRet    *models.TokenPair
	LoginErr    error
	RegisterRet *models.Profile
	RegisterErr error
	MeRet       *models.Profile
	MeErr       error

	ListRet     *models.ImagePage
	ImageRet    *models.Image
	ImageErr    error
	DeleteErr   error
	Categories  []models.Category
	CategoryRet *models.Category

	LastCreds    models.Credentials
	LastReg      models.Registration
	LastFilter   models.ImageFilter
	LastID       int64
	LastUpload   models.ImageUpload
	LastCategory models.NewCategory
	Calls        int
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, c models.Credentials) (*models.TokenPair, error) {
	f.Calls++
	f.LastCreds = c
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, r models.Registration) (*models.Profile, error) {
	f.Calls++
	f.LastReg = r
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Me(context.Context) (*models.Profile, error) {
	f.Calls++
	return f.MeRet, f.MeErr
}

func (f *fakeClient) ListImages(_ context.Context, filter models.ImageFilter) (*models.ImagePage, error) {
	f.Calls++
	f.LastFilter = filter
	return f.ListRet, nil
}

func (f *fakeClient) GetImage(_ context.Context, id int64) (*models.Image, error) {
	f.Calls++
	f.LastID = id
	return f.ImageRet, f.ImageErr
}

func (f *fakeClient) UploadImage(_ context.Context, u models.ImageUpload) (*models.Image, error) {
	f.Calls++
	f.LastUpload = u
	return f.ImageRet, f.ImageErr
}

func (f *fakeClient) UpdateImage(_ context.Context, id int64, u models.ImageUpload) (*models.Image, error) {
	f.Calls++
	f.LastID = id
	f.LastUpload = u
	return f.ImageRet, f.ImageErr
}

func (f *fakeClient) DeleteImage(_ context.Context, id int64) error {
	f.Calls++
	f.LastID = id
	return f.DeleteErr
}

func (f *fakeClient) ListCategories(context.Context) ([]models.Category, error) {
	f.Calls++
	return f.Categories, nil
}

func (f *fakeClient) CreateCategory(_ context.Context, c models.NewCategory) (*models.Category, error) {
	f.Calls++
	f.LastCategory = c
	return f.CategoryRet, nil
}

// ---- fake session ----

type fakeSession struct {
	credential  string
	profile     *models.Profile
	setErr      error
	fetchErr    error
	fetchCalls  int
	logoutCalls int
}

func (s *fakeSession) HasSession() bool { return s.credential != "" }

func (s *fakeSession) SetCredential(_ context.Context, token string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.credential = token
	return nil
}

func (s *fakeSession) FetchProfile(context.Context) error {
	s.fetchCalls++
	return s.fetchErr
}

func (s *fakeSession) Profile() *models.Profile { return s.profile }

func (s *fakeSession) DisplayName() string {
	if s.profile != nil && s.profile.Username != "" {
		return s.profile.Username
	}
	return "User"
}

func (s *fakeSession) Logout(context.Context) error {
	s.logoutCalls++
	s.credential = ""
	s.profile = nil
	return nil
}
