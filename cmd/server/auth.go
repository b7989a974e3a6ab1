package main

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// tokenAuth guards the API with a static bearer token. The zero value lets
// every request through.
type tokenAuth struct {
	digest []byte
}

func newTokenAuth(token string) tokenAuth {
	if token == "" {
		return tokenAuth{}
	}
	sum := sha256.Sum256([]byte(token))
	return tokenAuth{digest: sum[:]}
}

func (a tokenAuth) enabled() bool {
	return a.digest != nil
}

// verify compares digests so the comparison time does not depend on the
// token length.
func (a tokenAuth) verify(header string) bool {
	if !strings.HasPrefix(header, bearerPrefix) {
		return false
	}
	sum := sha256.Sum256([]byte(strings.TrimPrefix(header, bearerPrefix)))
	return subtle.ConstantTimeCompare(sum[:], a.digest) == 1
}

func (a tokenAuth) middleware(next http.Handler) http.Handler {
	if !a.enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.verify(r.Header.Get("Authorization")) {
			w.Header().Set("WWW-Authenticate", `Bearer realm="shopquote"`)
			respondError(w, http.StatusUnauthorized, "missing or invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}
