package errx

import "net/http"

// WrapClassifier maps classification-provider failures (client construction,
// request, malformed output) to the unified Error type.
func WrapClassifier(err error) *Error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, ClassifierErrorMessage)
}
