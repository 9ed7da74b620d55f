package handlers

import (
	"errors"
	"tag-admin-panel/app/server/constants"
)

var errInvalidPagination = errors.New("page must be >= 1 and pageSize must be between 1 and 50")

// parsePagination 解析分页参数：缺省时用默认值，越界直接判为无效输入
func (a *App) parsePagination(page *int, pageSize *int) (int, int, error) {
	parsedPage := constants.ListDefaultPage
	if page != nil {
		if *page < 1 {
			return 0, 0, errInvalidPagination
		}
		parsedPage = *page
	}

	parsedPageSize := constants.ListDefaultPageSize
	if pageSize != nil {
		if *pageSize < 1 || *pageSize > constants.ListMaxPageSize {
			return 0, 0, errInvalidPagination
		}
		parsedPageSize = *pageSize
	}

	return parsedPage, parsedPageSize, nil
}
