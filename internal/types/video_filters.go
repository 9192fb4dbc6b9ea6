package types

// VideoFilters is the closed filter structure for video listings. Optional
// fields are pointers; nil means "no filter". Kept explicit on purpose:
// handlers validate before building queries, repositories never accept
// ad hoc maps.
type VideoFilters struct {
	// Group restricts the listing to videos targeted at a page group.
	// Videos in the "all" group and legacy rows without a group always
	// match (universal sentinels).
	Group *string
}
