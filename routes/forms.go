package routes

import (
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"formtools/config"
	"formtools/datetime"
	"formtools/routes/rutil"
	"formtools/util"
	"formtools/validate"
)

func Dates_Parse(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value  string `json:"value"`
		Layout string `json:"layout"`
	}
	mustReadJson(r, &body)

	if body.Layout == "" {
		body.Layout = config.Cfg.DateLayout
	}

	date, err := datetime.ParseDateAt(body.Value, datetime.Now())
	if err != nil {
		rutil.MustWriteJson(w, http.StatusOK, map[string]any{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	rutil.MustWriteJson(w, http.StatusOK, map[string]any{
		"valid":     true,
		"formatted": datetime.Format(date, body.Layout),
		"year":      date.Year(),
		"month":     int(date.Month()),
		"day":       date.Day(),
		"hour":      date.Hour(),
		"minute":    date.Minute(),
		"second":    date.Second(),
	})
}

func Times_Parse(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value  string `json:"value"`
		Layout string `json:"layout"`
	}
	mustReadJson(r, &body)

	if body.Layout == "" {
		body.Layout = config.Cfg.TimeLayout
	}

	resolved, err := datetime.ResolveTime(body.Value, datetime.Now())
	if err != nil {
		rutil.MustWriteJson(w, http.StatusOK, map[string]any{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	rutil.MustWriteJson(w, http.StatusOK, map[string]any{
		"valid":     true,
		"formatted": datetime.Format(resolved, body.Layout),
		"hour":      resolved.Hour(),
		"minute":    resolved.Minute(),
		"second":    resolved.Second(),
		"meridiem":  datetime.Format(resolved, "A"),
	})
}

func Dates_Resolve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Spec      string `json:"spec"`
		Reference string `json:"reference"`
		Layout    string `json:"layout"`
	}
	mustReadJson(r, &body)

	if body.Layout == "" {
		body.Layout = config.Cfg.DateLayout
	}

	reference := datetime.Now()
	if body.Reference != "" {
		var err error
		reference, err = time.Parse(time.RFC3339, body.Reference)
		if err != nil {
			panic(util.HttpError{
				Status: http.StatusBadRequest,
				Inner:  errors.New("reference must be RFC 3339"),
			})
		}
	}

	date := datetime.ResolveRelative(body.Spec, reference, reference)
	rutil.MustWriteJson(w, http.StatusOK, map[string]any{
		"formatted": datetime.Format(date, body.Layout),
		"year":      date.Year(),
		"month":     int(date.Month()),
		"day":       date.Day(),
	})
}

func Forms_Validate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Fields []validate.Field `json:"fields"`
	}
	mustReadJson(r, &body)

	results, valid := validate.CheckFields(body.Fields, datetime.Now())
	fields := make([]map[string]any, 0, len(results))
	for _, result := range results {
		fields = append(fields, map[string]any{
			"name":    result.Name,
			"value":   result.Value,
			"message": result.Message,
		})
	}
	rutil.MustWriteJson(w, http.StatusOK, map[string]any{
		"valid":  valid,
		"fields": fields,
	})
}

func mustReadJson(r *http.Request, out any) {
	bodyStr, err := io.ReadAll(r.Body)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(bodyStr, out)
	if err != nil {
		panic(util.HttpError{
			Status: http.StatusBadRequest,
			Inner:  errors.Wrap(err, "malformed request body"),
		})
	}
}
