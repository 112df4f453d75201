package gateway

import "strings"

// OriginAuthorized reports whether a request may use the gateway. A request
// is authorized when its Origin header exactly matches an allowed origin, or
// when its Referer starts with "<allowed>/" for any allowed origin. The
// trailing slash on the referer check is required so that
// "https://example.com.evil.com" does not pass as "https://example.com".
func OriginAuthorized(origin, referer string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if origin == allowed {
			return true
		}
	}

	for _, allowed := range allowedOrigins {
		if strings.HasPrefix(referer, allowed+"/") {
			return true
		}
	}

	return false
}

// SelectCORSOrigin picks the value for the Access-Control-Allow-Origin
// header on error responses: the request origin when it is allow-listed,
// otherwise the first allowed origin. Success redirects carry no CORS
// headers and never call this.
func SelectCORSOrigin(origin string, allowedOrigins []string) string {
	for _, allowed := range allowedOrigins {
		if origin == allowed {
			return origin
		}
	}

	if len(allowedOrigins) == 0 {
		return ""
	}
	return allowedOrigins[0]
}
