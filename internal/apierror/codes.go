package apierror

// Problem type URIs in the urn:dailywell:error:* namespace
const (
	TypeValidation  = "urn:dailywell:error:validation"
	TypeBadRequest  = "urn:dailywell:error:bad_request"
	TypeInvalidDate = "urn:dailywell:error:invalid_date"
	TypeUnknownKind = "urn:dailywell:error:unknown_kind"
	TypeNotFound    = "urn:dailywell:error:not_found"
	TypeInternal    = "urn:dailywell:error:internal"
	TypeUnavailable = "urn:dailywell:error:unavailable"
)

const (
	TitleValidation  = "Validation Error"
	TitleBadRequest  = "Bad Request"
	TitleInvalidDate = "Invalid Date"
	TitleUnknownKind = "Unknown Entry Kind"
	TitleNotFound    = "Resource Not Found"
	TitleInternal    = "Internal Server Error"
	TitleUnavailable = "Service Unavailable"
)
