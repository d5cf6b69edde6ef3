// Package api contains one call per gallery backend endpoint.
//
// The calls add no behavior of their own: credentials, failure notices and
// 401 handling all live in the httpclient hooks. Every call returns the
// decoded record or the error produced by the client, unchanged.
//
// Endpoints
//
//	POST   /auth/login/       Login
//	POST   /auth/register/    Register
//	GET    /auth/me/          Me
//	GET    /images/           ListImages
//	GET    /images/{id}/      GetImage
//	POST   /images/           UploadImage
//	PATCH  /images/{id}/      UpdateImage
//	DELETE /images/{id}/      DeleteImage
//	GET    /categories/       ListCategories
//	POST   /categories/       CreateCategory
package api
