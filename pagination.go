package blog

import "strconv"

// PageSize is the fixed number of rows per paginated response.
const PageSize = 10

// ParsePage resolves the `page` query parameter: absent defaults to 1,
// anything that is not a positive integer is a validation failure.
func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, ErrValidation("The page field must be a positive integer.")
	}

	return page, nil
}

// PageOffset converts a 1-based page number into a row offset.
func PageOffset(page int) int {
	return (page - 1) * PageSize
}

// TotalPages is ceil(total/PageSize).
func TotalPages(total int) int {
	return (total + PageSize - 1) / PageSize
}
