package service

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// BanList is an immutable set of banned user identifiers,
// loaded once at startup
type BanList struct {
	ids map[int64]struct{}
}

// ParseBanList reads a line-oriented ban list: one numeric user id
// per line, blank lines ignored
func ParseBanList(r io.Reader) (*BanList, error) {
	ids := make(map[int64]struct{})

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ban list line %d: invalid user id %q: %w", line, text, err)
		}
		ids[id] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ban list: %w", err)
	}

	return &BanList{ids: ids}, nil
}

// IsBanned reports whether the user is on the ban list
func (b *BanList) IsBanned(userID int64) bool {
	_, ok := b.ids[userID]
	return ok
}

// Len returns the number of banned users, for startup logging
func (b *BanList) Len() int {
	return len(b.ids)
}
