package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
)

const maxUploadBytes = 10 << 20

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

func (app *application) readStringParam(r *http.Request, key string) (string, error) {
	params := httprouter.ParamsFromContext(r.Context())

	value := strings.TrimSpace(params.ByName(key))
	if value == "" {
		return "", fmt.Errorf("missing %s parameter", key)
	}

	return value, nil
}

// parseForm reads a urlencoded or multipart form body.
func (app *application) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1_048_576)

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxUploadBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return errors.New("request body contains a badly-formed form")
	}

	return nil
}

// readUpload returns the file posted under field, or nil when none was chosen in this request.
// The caller closes the returned closer.
func (app *application) readUpload(r *http.Request, field string) (*apiclient.Upload, io.Closer, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	if header.Size == 0 || header.Filename == "" {
		file.Close()
		return nil, nil, nil
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &apiclient.Upload{Filename: header.Filename, ContentType: contentType, Body: file}, file, nil
}

func validationMessage(err common.ValidationError) string {
	fields := make([]string, 0, len(err.Errors))
	for field := range err.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+err.Errors[field])
	}

	return strings.Join(parts, "; ")
}
