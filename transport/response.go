package transport

import (
	"encoding/json"
	"net/http"

	"github.com/oleksandr-romashko/contacts-api/constant"
	"github.com/oleksandr-romashko/contacts-api/utils/errors"
)

type response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	if ce, ok := err.(errors.CustomError); ok {
		writeJSON(w, ce.ErrorHTTPCode(), response{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, response{
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
	})
}
