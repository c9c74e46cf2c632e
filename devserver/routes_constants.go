package devserver

// Routes served outside the API prefix. API routes come from the configured endpoint
// table so the client and the dev server always agree.
const (
	RouteHealth  = "/health"
	RouteMetrics = "/metrics"
)

// Path variables.
const (
	varID      = "id"
	varBarcode = "barcode"
)
