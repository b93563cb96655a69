package helper

import "strings"

// ClientIP picks the first address of an X-Forwarded-For header, falling back
// to the connection address. Either may be empty.
func ClientIP(forwardedFor, remote string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return strings.TrimSpace(remote)
}

// Paginate returns the [start:end) window of a list of total items.
// page is 1-based; limit <= 0 returns everything.
func Paginate(total, page, limit int) (start, end int) {
	if limit <= 0 {
		return 0, total
	}
	if page < 1 {
		page = 1
	}
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = min(start+limit, total)
	return start, end
}
