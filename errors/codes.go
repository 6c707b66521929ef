package errors

// ErrorCode identifies a class of application error
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
	ErrorCode_AUTH_INVALID_CREDENTIALS
	ErrorCode_AUTH_USER_NOT_FOUND
	ErrorCode_AUTH_USER_ALREADY_EXISTS
	ErrorCode_UNAUTHENTICATED

	// Meetings
	ErrorCode_MEETING_NOT_FOUND
	ErrorCode_AUDIO_MISSING
	ErrorCode_UPLOAD_INVALID_FORMAT

	// AI pipeline
	ErrorCode_TRANSCRIPT_NOT_FOUND
	ErrorCode_AI_TRANSCRIPTION_FAILED
	ErrorCode_AI_SUMMARY_FAILED
	ErrorCode_AI_RESPONSE_INVALID

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_DB_QUERY_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                    "UNKNOWN",
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:        "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:   "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_AUDIO_MISSING:              "AUDIO_MISSING",
	ErrorCode_UPLOAD_INVALID_FORMAT:      "UPLOAD_INVALID_FORMAT",
	ErrorCode_TRANSCRIPT_NOT_FOUND:       "TRANSCRIPT_NOT_FOUND",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_RESPONSE_INVALID:        "AI_RESPONSE_INVALID",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
