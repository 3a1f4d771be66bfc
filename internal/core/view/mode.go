package view

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a sort or view mode string is not recognized.
var ErrUnknownMode = errors.New("unknown mode")

// SortMode selects the ordering of the filtered purchases.
type SortMode int

const (
	// SortRecentlyAdded orders by purchase date, most recent first.
	SortRecentlyAdded SortMode = iota + 1
	// SortLowestPrice orders by price ascending.
	SortLowestPrice
)

// ViewMode selects between the flat list and the grouped summaries.
type ViewMode int

const (
	ViewList ViewMode = iota + 1
	ViewGroup
)

const (
	DefaultSortMode = SortRecentlyAdded
	DefaultViewMode = ViewList
)

// ParseSortMode converts the query-string form of a sort mode.
// An empty string selects DefaultSortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultSortMode, nil
	case "recently_added":
		return SortRecentlyAdded, nil
	case "lowest_price":
		return SortLowestPrice, nil
	default:
		return 0, fmt.Errorf("%w: sort %q (must be recently_added or lowest_price)", ErrUnknownMode, s)
	}
}

// ParseViewMode converts the query-string form of a view mode.
// An empty string selects DefaultViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultViewMode, nil
	case "list":
		return ViewList, nil
	case "group":
		return ViewGroup, nil
	default:
		return 0, fmt.Errorf("%w: view %q (must be list or group)", ErrUnknownMode, s)
	}
}

func (m SortMode) String() string {
	switch m {
	case SortRecentlyAdded:
		return "recently_added"
	case SortLowestPrice:
		return "lowest_price"
	default:
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
}

func (m ViewMode) String() string {
	switch m {
	case ViewList:
		return "list"
	case ViewGroup:
		return "group"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}
