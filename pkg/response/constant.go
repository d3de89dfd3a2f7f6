package response

// Response message and code constants.
const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "something went wrong"
	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
