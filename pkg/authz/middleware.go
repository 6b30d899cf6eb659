package authz

import "net/http"

// RequestMapper translates an incoming HTTP request into an authorization
// request. Typically it reads the matched route's plugin, prefix, controller
// and action plus the authenticated user's roles.
type RequestMapper func(r *http.Request) Request

// Middleware guards downstream handlers with the given authorizer. When the
// mapper leaves Roles empty, the role set stored in the request context is
// used. A denial responds 403; a configuration error responds 500 because it
// means the deployment, not the user, is broken.
func Middleware(authorizer Authorizer, mapper RequestMapper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := mapper(r)
			if len(req.Roles) == 0 {
				if ids, ok := RolesFromContext(r.Context()); ok {
					req.Roles = ids
				}
			}

			ok, err := authorizer.Authorize(r.Context(), req)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if !ok {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
