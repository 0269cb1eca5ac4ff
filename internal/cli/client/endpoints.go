package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Data request endpoints
	endpointRequests                = apiV1Prefix + "/requests"                     // GET, POST
	endpointRequestByID             = apiV1Prefix + "/requests/%s"                  // GET
	endpointRequestState            = apiV1Prefix + "/requests/%s/state"            // PATCH
	endpointRequestPriority         = apiV1Prefix + "/requests/%s/priority"         // PATCH
	endpointRequestHistory          = apiV1Prefix + "/requests/%s/history"          // GET
	endpointRequestExtendedHistory  = apiV1Prefix + "/requests/%s/history/extended" // GET

	// Data sourcing endpoints
	endpointDataSourcings          = apiV1Prefix + "/data-sourcings"            // GET
	endpointDataSourcingByID       = apiV1Prefix + "/data-sourcings/%s"         // GET, PATCH
	endpointDataSourcingState      = apiV1Prefix + "/data-sourcings/%s/state"   // PATCH
	endpointDataSourcingHistory    = apiV1Prefix + "/data-sourcings/%s/history" // GET

	// Admin endpoints
	endpointAdminRebalance = apiV1Prefix + "/admin/rebalance" // POST
)
