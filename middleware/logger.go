package middleware

import (
	"context"
	"net/http"
	"regexp"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"formtools/log"
	"formtools/util"
)

var formFilter *regexp.Regexp

func init() {
	formFilter = regexp.MustCompile("(passw|secret|token|_key|crypt|salt|certificate|otp|ssn)")
}

type contextKey int

const errorKey contextKey = iota

type errorWrapper struct {
	err error
}

// SetError records a handler error so the access log line can include it.
func SetError(r *http.Request, err error) {
	if wrapper, ok := r.Context().Value(errorKey).(*errorWrapper); ok {
		wrapper.err = err
	}
}

// Logger should come before Recoverer
func Logger(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		t1 := time.Now()

		path := r.URL.Path
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}

		type FormKV struct {
			Key   string
			Value any
		}

		var formErr error
		var formKVs []FormKV
		if err := r.ParseForm(); err != nil {
			formErr = err
		} else if len(r.PostForm) != 0 {
			var keys []string
			for key := range r.PostForm {
				keys = append(keys, key)
			}
			slices.Sort(keys)

			for _, key := range keys {
				values := r.PostForm[key]

				var kv FormKV
				switch {
				case formFilter.MatchString(key):
					kv = FormKV{key, "*******"}
				case len(values) == 1:
					kv = FormKV{key, values[0]}
				default:
					arr := zerolog.Arr()
					for _, value := range values {
						arr.Str(value)
					}
					kv = FormKV{key, arr}
				}
				formKVs = append(formKVs, kv)
			}
		}

		commonFields := func(event *zerolog.Event) {
			event.
				Str("method", r.Method).
				Str("path", path)
			if formErr != nil {
				event.Str("form_err", formErr.Error())
			}
			if len(formKVs) > 0 {
				formDict := zerolog.Dict()
				for _, kv := range formKVs {
					formDict.Any(kv.Key, kv.Value)
				}
				event.Dict("form", formDict)
			}
		}

		log.Info().
			Func(commonFields).
			Str("ip", util.UserIp(r)).
			Str("user-agent", r.UserAgent()).
			Msg("started")

		var wrapper errorWrapper
		r = r.WithContext(context.WithValue(r.Context(), errorKey, &wrapper))

		defer func() {
			status := ww.Status()
			if (status/100 == 4 || status/100 == 5) &&
				status != http.StatusMethodNotAllowed &&
				status != http.StatusNotFound {

				event := log.Error().Func(commonFields)
				if wrapper.err != nil {
					event.Err(wrapper.err)
				}
				event.
					Int("status", status).
					TimeDiff("duration", time.Now(), t1).
					Msg("failed")
			} else {
				log.Info().
					Func(commonFields).
					Int("status", status).
					TimeDiff("duration", time.Now(), t1).
					Msg("completed")
			}
		}()
		next.ServeHTTP(ww, r)
	}
	return http.HandlerFunc(fn)
}
