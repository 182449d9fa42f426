package middleware

import (
	"fmt"
	"net/http"

	"formtools/oops"
	"formtools/routes/rutil"
	"formtools/util"
)

func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				err, ok := rvr.(error)
				if !ok {
					err = fmt.Errorf("%v", rvr)
				}

				status := http.StatusInternalServerError
				if httpErr, ok := err.(util.HttpError); ok {
					status = httpErr.Status
					err = httpErr.Inner
				}

				if r.Header.Get("Connection") != "Upgrade" {
					message := "internal server error"
					if status != http.StatusInternalServerError && err != nil {
						message = err.Error()
					}
					rutil.MustWriteJson(w, status, map[string]any{
						"error": message,
					})
				}

				sterr, ok := err.(*oops.Error)
				if !ok {
					sterr = oops.Wrap(err).(*oops.Error)
				}
				SetError(r, sterr)
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
