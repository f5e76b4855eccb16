package relay

import "time"

type HttpMethod string

type UserAgent string

const (
	HttpPost HttpMethod = "POST"

	DefaultUserAgent UserAgent = "Relay/" + Version

	HTTP_TIMEOUT             = 10
	HTTP_TIMEOUT_IN_DURATION = time.Duration(HTTP_TIMEOUT) * time.Second
)

const Version = "0.1.0"

func GetVersion() string {
	return Version
}
