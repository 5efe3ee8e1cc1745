package handler

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var videoEmbedTimePattern = regexp.MustCompile(`(?i)(\d+)(h|m|s)`) // for YouTube t=1h2m3s

// BuildVideoEmbedURL maps a public video URL to an embeddable player URL.
// Gallery video rows store the page URL the editor pasted; the embed form
// is derived at read time so stored data stays portable.
func BuildVideoEmbedURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "<")
	trimmed = strings.TrimSuffix(trimmed, ">")
	trimmed = normalizeVideoURL(trimmed)

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed == nil {
		return "", false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", false
	}
	if strings.ToLower(parsed.Hostname()) == "" {
		return "", false
	}

	return parseYouTubeEmbed(parsed)
}

func normalizeVideoURL(raw string) string {
	if raw == "" {
		return raw
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	knownPrefixes := []string{
		"youtube.com/",
		"www.youtube.com/",
		"youtu.be/",
	}
	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return "https://" + raw
		}
	}
	return raw
}

func parseYouTubeEmbed(u *url.URL) (string, bool) {
	host := strings.ToLower(u.Hostname())
	var videoID string

	switch {
	case host == "youtu.be":
		videoID = strings.Trim(strings.TrimPrefix(u.Path, "/"), "/")
		if strings.Contains(videoID, "/") {
			videoID = strings.Split(videoID, "/")[0]
		}
	case isHostOrSubdomain(host, "youtube.com"):
		path := strings.Trim(u.Path, "/")
		if path == "watch" {
			videoID = u.Query().Get("v")
		} else if strings.HasPrefix(path, "shorts/") {
			videoID = strings.TrimPrefix(path, "shorts/")
		} else if strings.HasPrefix(path, "embed/") {
			videoID = strings.TrimPrefix(path, "embed/")
		} else if strings.HasPrefix(path, "live/") {
			videoID = strings.TrimPrefix(path, "live/")
		}
		if strings.Contains(videoID, "/") {
			videoID = strings.Split(videoID, "/")[0]
		}
	default:
		return "", false
	}

	if videoID == "" {
		return "", false
	}

	embedURL := fmt.Sprintf("https://www.youtube.com/embed/%s", videoID)
	embedValues := url.Values{}
	embedValues.Set("rel", "0")
	embedValues.Set("modestbranding", "1")
	embedValues.Set("playsinline", "1")
	if start := parseYouTubeStart(u); start > 0 {
		embedValues.Set("start", strconv.Itoa(start))
	}
	return embedURL + "?" + embedValues.Encode(), true
}

func parseYouTubeStart(u *url.URL) int {
	if u == nil {
		return 0
	}
	query := u.Query()
	if value := query.Get("start"); value != "" {
		return parseYouTubeTime(value)
	}
	if value := query.Get("t"); value != "" {
		return parseYouTubeTime(value)
	}
	return 0
}

func parseYouTubeTime(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	if onlyDigits(trimmed) {
		seconds, err := strconv.Atoi(trimmed)
		if err == nil && seconds > 0 {
			return seconds
		}
		return 0
	}

	matches := videoEmbedTimePattern.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		return 0
	}

	total := 0
	for _, match := range matches {
		value, err := strconv.Atoi(match[1])
		if err != nil || value <= 0 {
			continue
		}
		switch strings.ToLower(match[2]) {
		case "h":
			total += value * 3600
		case "m":
			total += value * 60
		case "s":
			total += value
		}
	}

	return total
}

func onlyDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}

func isHostOrSubdomain(host, domain string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	domain = strings.ToLower(strings.TrimSpace(domain))
	if host == "" || domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}
