package router

import (
	"strings"

	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// Route names used by the CLI to pick a screen.
const (
	RouteHome   = "home"
	RouteLogin  = "login"
	RouteDetail = "detail"
	RouteUpload = "upload"
	RouteEdit   = "edit"
)

// Route describes one navigable screen. Pattern segments starting with ':'
// capture a parameter.
type Route struct {
	Name    string
	Pattern string
	Access  Access
}

// DefaultRoutes is the gallery route table.
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteHome, Pattern: common.HomePath, Access: AccessRequiresSession},
		{Name: RouteLogin, Pattern: common.LoginPath, Access: AccessGuestOnly},
		{Name: RouteDetail, Pattern: "/detail/:id", Access: AccessRequiresSession},
		{Name: RouteUpload, Pattern: "/upload", Access: AccessRequiresSession},
		{Name: RouteEdit, Pattern: "/edit/:id", Access: AccessRequiresSession},
	}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// match returns the captured params when path fits the route pattern.
func (r Route) match(path string) (map[string]string, bool) {
	want := splitPath(r.Pattern)
	got := splitPath(path)
	if len(want) != len(got) {
		return nil, false
	}

	params := map[string]string{}
	for i, seg := range want {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if got[i] == "" {
				return nil, false
			}
			params[name] = got[i]
			continue
		}
		if seg != got[i] {
			return nil, false
		}
	}
	return params, true
}
