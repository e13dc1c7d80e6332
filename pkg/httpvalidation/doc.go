// Package httpvalidation runs validators against JSON request bodies and
// renders failures as JSON error responses.
//
//	r := chi.NewRouter()
//	r.Post("/orders", httpvalidation.Handler(
//		func(r *http.Request) validation.Validator[*Order] {
//			return newOrderValidator(httpvalidation.Catalog(r, bundle))
//		},
//		func(w http.ResponseWriter, r *http.Request, order *Order) {
//			// order passed validation
//		},
//	))
//
// Validation failures produce 422 responses of the form
//
//	{"error": {"code": "validation_error", "message": "validation failed",
//	           "details": {"Quantity": ["smaller than 1"]}}}
package httpvalidation
