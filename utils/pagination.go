package utils

import "github.com/gofiber/fiber/v2"

// Offset converts 1-based page/limit into a query offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// BuildPagination is the pagination block attached to list responses.
func BuildPagination(total int64, page, limit int) fiber.Map {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return fiber.Map{
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": totalPages,
		"has_next":    page < totalPages,
		"has_prev":    page > 1 && total > 0,
	}
}
