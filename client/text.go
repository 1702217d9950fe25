package client

import "strings"

// composeText joins a short headline with its longer body on a new line,
// dropping the body when it is blank.
func composeText(title, body string) string {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	switch {
	case body == "":
		return title
	case title == "":
		return body
	default:
		return title + "\n" + body
	}
}

func clampLimit(limit, max int) int {
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
