package myhttp

import (
	"net/http"
)

// RedirectToPage implements the GET step of post-redirect-get.
func RedirectToPage(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
