package utils

import (
	"regexp"
	"strings"
)

var (
	inviteLinkRe = regexp.MustCompile(`^(?:https?://)?(?:t\.me|telegram\.me)/(\+|joinchat/)?([A-Za-z0-9_\-]{5,64})/?$`)
	folderLinkRe = regexp.MustCompile(`^(?:https?://)?(?:t\.me|telegram\.me)/addlist/([A-Za-z0-9_\-]{5,64})/?$`)
)

// NormalizeLink trims whitespace, the scheme and a trailing slash, and
// lower-cases the host, so the same invite is recognised however it is typed.
func NormalizeLink(link string) string {
	link = strings.TrimSpace(link)
	lower := strings.ToLower(link)
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, prefix) {
			link = link[len(prefix):]
			lower = lower[len(prefix):]
			break
		}
	}
	if strings.HasPrefix(lower, "telegram.me/") {
		link = "t.me/" + link[len("telegram.me/"):]
	} else if strings.HasPrefix(lower, "t.me/") {
		link = "t.me/" + link[len("t.me/"):]
	}
	return strings.TrimSuffix(link, "/")
}

// reservedPaths are t.me path words that are never a group on their own.
var reservedPaths = map[string]struct{}{
	"addlist":  {},
	"joinchat": {},
}

func IsValidInviteLink(link string) bool {
	link = strings.TrimSpace(link)
	if folderLinkRe.MatchString(link) {
		return true
	}
	m := inviteLinkRe.FindStringSubmatch(link)
	if m == nil {
		return false
	}
	if m[1] == "" {
		if _, reserved := reservedPaths[strings.ToLower(m[2])]; reserved {
			return false
		}
	}
	return true
}

func IsFolderLink(link string) bool {
	return folderLinkRe.MatchString(strings.TrimSpace(link))
}
