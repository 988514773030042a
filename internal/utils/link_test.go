package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInviteLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://t.me/+AbCdEf12345", true},
		{"t.me/joinchat/AAAAAE1234567", true},
		{"https://t.me/some_public_group", true},
		{"https://telegram.me/some_public_group/", true},
		{"https://t.me/addlist/xyzFolder1", true},
		{"  https://t.me/+AbCdEf12345  ", true},
		{"https://example.com/group", false},
		{"t.me/", false},
		{"t.me/abc", false},
		{"https://t.me/addlist", false},
		{"https://t.me/addlist/", false},
		{"t.me/joinchat", false},
		{"https://telegram.me/JoinChat/", false},
		{"https://t.me/joinchat/joinchat", true},
		{"hello world", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidInviteLink(tt.link))
		})
	}
}

func TestIsFolderLink(t *testing.T) {
	assert.True(t, IsFolderLink("https://t.me/addlist/xyzFolder1"))
	assert.False(t, IsFolderLink("https://t.me/+AbCdEf12345"))
}

func TestNormalizeLink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://t.me/+AbCdEf12345", "t.me/+AbCdEf12345"},
		{"http://t.me/+AbCdEf12345/", "t.me/+AbCdEf12345"},
		{" HTTPS://T.ME/+AbCdEf12345 ", "t.me/+AbCdEf12345"},
		{"https://telegram.me/group_name", "t.me/group_name"},
		{"t.me/group_name", "t.me/group_name"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLink(tt.in))
		})
	}
}
